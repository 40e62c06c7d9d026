package edgelist_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gengraph/edgelist"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestTransduce_Scenario checks the mixed blank/comment/edge example end to end.
func TestTransduce_Scenario(t *testing.T) {
	var out bytes.Buffer
	stats, err := edgelist.Transduce(strings.NewReader("1 2\n# hello\n\n3 4"), &out)
	require.NoError(t, err)

	want := "graph[1].push_back(2);\n" +
		"graph[2].push_back(1);\n" +
		"// hello\n" +
		"\n" +
		"graph[3].push_back(4);\n" +
		"graph[4].push_back(3);\n"
	require.Equal(t, want, out.String())
	require.Equal(t, edgelist.Stats{Blank: 1, Comment: 1, Edge: 2, Output: 6}, stats)
	require.Equal(t, 4, stats.Lines())
}

// TestTransduce_LineCount verifies output has b + c + 2e lines.
func TestTransduce_LineCount(t *testing.T) {
	input := strings.Join([]string{
		"# Clue board",
		"## Rooms",
		"",
		"Hall Lounge",
		"Lounge DiningRoom",
		"   ",
		"#",
		"Study Hall",
	}, "\n")

	var out bytes.Buffer
	stats, err := edgelist.Transduce(strings.NewReader(input), &out)
	require.NoError(t, err)

	b, c, e := 2, 3, 3
	require.Equal(t, edgelist.Stats{Blank: b, Comment: c, Edge: e, Output: b + c + 2*e}, stats)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, b+c+2*e)
	require.Equal(t, "// ", lines[8])
}

// TestTransduce_MalformedStops ensures the run aborts on the first bad line
// and nothing is emitted for it or anything after it.
func TestTransduce_MalformedStops(t *testing.T) {
	var out bytes.Buffer
	stats, err := edgelist.Transduce(strings.NewReader("1 2\n1 2 3\n4 5\n"), &out)
	require.ErrorIs(t, err, edgelist.ErrMalformedLine)

	var fe *edgelist.FormatError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, 2, fe.Number)
	require.Equal(t, 3, fe.Tokens)

	require.Equal(t, "graph[1].push_back(2);\ngraph[2].push_back(1);\n", out.String())
	require.Equal(t, 1, stats.Edge)
}

// TestTransduce_MalformedOnly covers the single-line failure with no output.
func TestTransduce_MalformedOnly(t *testing.T) {
	var out bytes.Buffer
	_, err := edgelist.Transduce(strings.NewReader("1 2 3"), &out)
	require.ErrorIs(t, err, edgelist.ErrMalformedLine)
	require.Contains(t, err.Error(), `"1 2 3"`)
	require.Empty(t, out.String())
}

func TestTransduce_Empty(t *testing.T) {
	var out bytes.Buffer
	stats, err := edgelist.Transduce(strings.NewReader(""), &out)
	require.NoError(t, err)
	require.Zero(t, stats)
	require.Empty(t, out.String())
}

// TestTransduce_Options swaps every piece of target syntax.
func TestTransduce_Options(t *testing.T) {
	var out bytes.Buffer
	_, err := edgelist.Transduce(strings.NewReader("## map\nA B\n"), &out,
		edgelist.WithGraphName("adj"),
		edgelist.WithAppendMethod("emplace_back"),
		edgelist.WithCommentMarker("--"),
	)
	require.NoError(t, err)
	require.Equal(t, "---- map\nadj[A].emplace_back(B);\nadj[B].emplace_back(A);\n", out.String())
}

func TestTransduce_WriterError(t *testing.T) {
	_, err := edgelist.Transduce(strings.NewReader("1 2\n"), failingWriter{})
	require.ErrorIs(t, err, errSink)
}

func TestTransduce_LoggerTracesLines(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := edgelist.Transduce(strings.NewReader("# c\nA B\n"), &bytes.Buffer{},
		edgelist.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, 2, logs.FilterMessage("classified line").Len())
}

func TestTransduceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("# rooms\nHall Study\n"), 0o644))

	var out bytes.Buffer
	stats, err := edgelist.TransduceFile(path, &out)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Output)
	require.Equal(t, "// rooms\ngraph[Hall].push_back(Study);\ngraph[Study].push_back(Hall);\n", out.String())

	_, err = edgelist.TransduceFile(filepath.Join(dir, "missing.txt"), &out)
	require.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

// TestTransduceFile_Malformed verifies the file path stops at a bad line
// after flushing everything emitted before it.
func TestTransduceFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("# rooms\nHall Study\nStudy Lounge Hall\nLounge Hall\n"), 0o644))

	var out bytes.Buffer
	stats, err := edgelist.TransduceFile(path, &out)
	require.ErrorIs(t, err, edgelist.ErrMalformedLine)

	var fe *edgelist.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 3, fe.Number)
	require.Equal(t, 3, fe.Tokens)
	require.Equal(t, "Study Lounge Hall", fe.Raw)

	require.Equal(t, "// rooms\ngraph[Hall].push_back(Study);\ngraph[Study].push_back(Hall);\n", out.String())
	require.Equal(t, edgelist.Stats{Comment: 1, Edge: 1, Output: 3}, stats)
}

func TestTranslate(t *testing.T) {
	require.Equal(t, []string{""}, edgelist.Translate(edgelist.Line{Kind: edgelist.KindBlank}))
	require.Equal(t, []string{"////// deep"},
		edgelist.Translate(edgelist.Line{Kind: edgelist.KindComment, Depth: 3, Text: "deep"}))
	require.Equal(t, []string{"graph[x].push_back(y);", "graph[y].push_back(x);"},
		edgelist.Translate(edgelist.Line{Kind: edgelist.KindEdge, Left: "x", Right: "y"}))
}

func TestOptions_PanicOnEmpty(t *testing.T) {
	require.Panics(t, func() { edgelist.WithGraphName("") })
	require.Panics(t, func() { edgelist.WithAppendMethod("") })
	require.Panics(t, func() { edgelist.WithCommentMarker("") })
	require.Panics(t, func() { edgelist.WithLogger(nil) })
}

var errSink = errors.New("sink closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }
