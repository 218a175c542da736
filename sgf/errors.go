package sgf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is the sentinel for structural SGF malformation. Check for it
// with errors.Is().
var ErrParse = errors.New("malformed SGF")

// ParseError reports a structural failure: unbalanced delimiters, a value
// with no identifier, a property run with no enclosing node, or empty
// input. A parse that returns one never exposes a partial tree.
type ParseError struct {
	Err      error  // The underlying error, normally ErrParse
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Line > 0 {
		loc := fmt.Sprintf("line %d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(", column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ParseError wrapper.
func (e *ParseError) Unwrap() error {
	return e.Err
}
