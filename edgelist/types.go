// SPDX-License-Identifier: MIT

package edgelist

// Kind classifies a single input line.
type Kind int

const (
	// KindBlank is a line that is empty after trimming whitespace.
	KindBlank Kind = iota
	// KindComment is a line whose first non-space character is '#'.
	KindComment
	// KindEdge is any other line; it must hold exactly two tokens.
	KindEdge
)

// String returns a lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Line is a classified input line.
type Line struct {
	Number int    // 1-based position in the input
	Raw    string // text as read, without the line terminator
	Kind   Kind

	// Depth is the length of the leading '#' run (comments only).
	Depth int
	// Text is the comment body with '#' and surrounding spaces trimmed.
	Text string

	// Left and Right are the edge endpoints (edges only).
	Left, Right string
}

// Stats counts what a Transduce run consumed and produced.
// For a successful run Output == Blank + Comment + 2*Edge.
type Stats struct {
	Blank   int
	Comment int
	Edge    int
	Output  int
}

// Lines returns the number of input lines consumed.
func (s Stats) Lines() int {
	return s.Blank + s.Comment + s.Edge
}

// add records one classified line and the number of output lines it produced.
func (s *Stats) add(k Kind, emitted int) {
	switch k {
	case KindBlank:
		s.Blank++
	case KindComment:
		s.Comment++
	case KindEdge:
		s.Edge++
	}
	s.Output += emitted
}
