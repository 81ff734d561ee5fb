package snbt

import (
	"errors"
	"fmt"
)

// ErrTrailingData is returned when a syntactically complete value is
// parsed but input remains afterward.
var ErrTrailingData = errors.New("snbt: trailing data found")

// ParseError reports an SNBT syntax error together with a trimmed excerpt
// of the input ending at the cursor, marked with "<--[HERE]", matching the
// Notchian parser's own error presentation.
type ParseError struct {
	Message string
	Cursor  int
	Input   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at: %s", e.Message, excerpt(e.Input, e.Cursor))
}

// excerpt returns up to 35 characters of input ending at position,
// prefixed with "..." if the excerpt does not start at the beginning of
// input, suffixed with the cursor marker "<--[HERE]".
func excerpt(input string, position int) string {
	end := position
	if end > len(input) {
		end = len(input)
	}
	start := end - 35
	if start < 0 {
		start = 0
	}
	var out string
	if end > 35 {
		out = "..."
	}
	out += input[start:end] + "<--[HERE]"
	return out
}

func parseErr(input string, cursor int, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Cursor: cursor, Input: input}
}
