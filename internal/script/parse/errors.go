package parse

import "fmt"

// ParseError reports a syntax error with the same source-location
// prefix as eval.scriptError, so parse-time and run-time errors read
// the same way to a script author.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error in %s at line %d: %s", e.File, e.Line, e.Message)
}
