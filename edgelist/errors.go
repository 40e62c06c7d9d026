// SPDX-License-Identifier: MIT
//
// errors.go: sentinel and typed errors for the edgelist package.
//
// Error policy:
//   - Callers branch with errors.Is(err, ErrMalformedLine) or
//     errors.As(err, *FormatError) to recover the offending line.
//   - I/O failures from the reader/writer are wrapped with %w and keep
//     their original identity (fs.ErrNotExist etc.).
//   - Option constructors panic on meaningless values; Transduce never does.

package edgelist

import (
	"errors"
	"fmt"
)

// ErrMalformedLine indicates an edge line that does not hold exactly two
// whitespace-separated tokens.
var ErrMalformedLine = errors.New("edgelist: malformed edge line")

// FormatError reports a malformed edge line.
type FormatError struct {
	Number int    // 1-based line number
	Raw    string // line as read
	Tokens int    // number of whitespace-separated tokens found
}

// Error implements error.
func (e *FormatError) Error() string {
	return fmt.Sprintf("edgelist: line %d: want 2 tokens, got %d: %q", e.Number, e.Tokens, e.Raw)
}

// Unwrap exposes ErrMalformedLine to errors.Is.
func (e *FormatError) Unwrap() error {
	return ErrMalformedLine
}
