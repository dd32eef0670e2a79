package parser

import (
	"fmt"

	"github.com/t14raptor/go-es1/diag"
)

// SyntaxError is a grammar error with its 1-based source position and a
// rendered context window around the offending token.
type SyntaxError struct {
	Line    int
	Col     int
	Msg     string
	Context string
}

func (e *SyntaxError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("parser error at %d:%d: %s", e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("parser error at %d:%d: %s\n%s", e.Line, e.Col, e.Msg, e.Context)
}

// errorf builds a SyntaxError at the current token. The context window comes
// from the source text when the parser has it, from the token stream
// otherwise.
func (p *parser) errorf(format string, values ...any) error {
	tok := p.current()

	var context string
	if p.str != "" {
		context = diag.Source(p.str, tok.Line, tok.Col)
	} else {
		contents := make([]string, len(p.tokens))
		for i, t := range p.tokens {
			contents[i] = t.Content
		}
		context = diag.Tokens(contents, p.pos)
	}

	return &SyntaxError{
		Line:    tok.Line + 1,
		Col:     tok.Col + 1,
		Msg:     fmt.Sprintf(format, values...),
		Context: context,
	}
}

func (p *parser) errorUnexpectedToken() error {
	return p.errorf("unexpected token '%s' in expression", p.current().Content)
}
