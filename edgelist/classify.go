// SPDX-License-Identifier: MIT

package edgelist

import "strings"

const commentRune = '#'

// Classify decides the kind of a raw input line and extracts its parts.
//
// Rules, applied to the whitespace-trimmed line:
//   - empty: KindBlank.
//   - starts with '#': KindComment. Depth is the length of the leading '#'
//     run; Text is the line with all leading and trailing '#' removed and
//     surrounding whitespace trimmed (possibly empty).
//   - otherwise: KindEdge if strings.Fields yields exactly two tokens,
//     else a *FormatError wrapping ErrMalformedLine.
//
// Complexity: O(len(raw)).
func Classify(number int, raw string) (Line, error) {
	line := Line{Number: number, Raw: raw}
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		line.Kind = KindBlank
	case trimmed[0] == commentRune:
		line.Kind = KindComment
		line.Depth = len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
		line.Text = strings.TrimSpace(strings.Trim(trimmed, "#"))
	default:
		tokens := strings.Fields(trimmed)
		if len(tokens) != 2 {
			return Line{}, &FormatError{Number: number, Raw: raw, Tokens: len(tokens)}
		}
		line.Kind = KindEdge
		line.Left, line.Right = tokens[0], tokens[1]
	}

	return line, nil
}
