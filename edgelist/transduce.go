// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// maxLineBytes bounds a single input line for the scanner.
const maxLineBytes = 1 << 20

// Translate renders one classified line into its output lines.
//
//	blank   -> [""]
//	comment -> [marker*Depth + " " + Text]
//	edge    -> ["graph[L].push_back(R);", "graph[R].push_back(L);"]
//
// A comment made only of '#' renders as the marker run plus a trailing space.
func Translate(line Line, opts ...Option) []string {
	cfg := newEmitConfig(opts...)

	return cfg.translate(line)
}

func (c emitConfig) translate(line Line) []string {
	switch line.Kind {
	case KindComment:
		return []string{strings.Repeat(c.commentMarker, line.Depth) + " " + line.Text}
	case KindEdge:
		return []string{
			c.appendStmt(line.Left, line.Right),
			c.appendStmt(line.Right, line.Left),
		}
	default:
		return []string{""}
	}
}

// appendStmt formats "graph[from].push_back(to);".
func (c emitConfig) appendStmt(from, to string) string {
	return fmt.Sprintf("%s[%s].%s(%s);", c.graphName, from, c.appendMethod, to)
}

// Transduce reads edge-list lines from r and writes the generated statements
// to w, one '\n'-terminated line each, in input order.
//
// Processing stops at the first malformed edge line: the returned error is a
// *FormatError for it, nothing is written for that line, and everything
// produced before it has already been flushed to w. Reader and writer
// failures are returned wrapped.
//
// Complexity: O(total input bytes) time, O(longest line) memory.
func Transduce(r io.Reader, w io.Writer, opts ...Option) (Stats, error) {
	cfg := newEmitConfig(opts...)

	var stats Stats
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	number := 0
	for sc.Scan() {
		number++
		line, err := Classify(number, sc.Text())
		if err != nil {
			cfg.logger.Debug("malformed line", zap.Int("line", number), zap.String("raw", sc.Text()))
			if ferr := bw.Flush(); ferr != nil {
				return stats, fmt.Errorf("edgelist: flush output: %w", ferr)
			}
			return stats, err
		}

		out := cfg.translate(line)
		cfg.logger.Debug("classified line",
			zap.Int("line", number),
			zap.Stringer("kind", line.Kind),
			zap.Int("emitted", len(out)))
		for _, s := range out {
			if _, err := bw.WriteString(s); err != nil {
				return stats, fmt.Errorf("edgelist: write line %d: %w", number, err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return stats, fmt.Errorf("edgelist: write line %d: %w", number, err)
			}
		}
		stats.add(line.Kind, len(out))
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("edgelist: read line %d: %w", number+1, err)
	}
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("edgelist: flush output: %w", err)
	}

	return stats, nil
}

// TransduceFile opens path and runs Transduce over it. The file is closed
// on every return path. A missing file yields an error satisfying
// errors.Is(err, fs.ErrNotExist).
func TransduceFile(path string, w io.Writer, opts ...Option) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("edgelist: open input: %w", err)
	}
	defer f.Close()

	return Transduce(f, w, opts...)
}
