package parser

import "fmt"

// SyntaxError is one parse-time diagnostic. The parser accumulates these
// rather than aborting on the first one, resynchronizing to the next
// statement boundary after each.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func CreateSyntaxError(line, column int, message string) SyntaxError {
	return SyntaxError{Line: line, Column: column, Message: message}
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("💥 Monkey Syntax error:\nline:%d, column:%d - %s", e.Line, e.Column, e.Message)
}
