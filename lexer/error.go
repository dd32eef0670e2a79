package lexer

import "fmt"

// Error is a lexical error with its 1-based source position. A lexical error
// is unrecoverable for the parse attempt that hit it: the token stream is
// abandoned and the error surfaces to the caller.
type Error struct {
	Line int
	Col  int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexer error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func (l *Lexer) errorf(format string, values ...any) error {
	return &Error{
		Line: l.cursor.Line + 1,
		Col:  l.cursor.Col + 1,
		Msg:  fmt.Sprintf(format, values...),
	}
}
