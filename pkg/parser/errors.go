package parser

import "fmt"

// Error reports a parse failure at a specific source location.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("sql parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// RecursionLimitExceeded is returned when an expression or query nests
// deeper than Options.RecursionLimit allows.
type RecursionLimitExceeded struct {
	Limit int
}

func (e *RecursionLimitExceeded) Error() string {
	return fmt.Sprintf("sql parse error: exceeded recursion limit of %d", e.Limit)
}
