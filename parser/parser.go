// Package parser builds a syntax tree for the ES1 subset out of the token
// stream produced by the lexer. Expression parsing is a Pratt loop over a
// binding-power table for the binary tiers, recursive descent everywhere
// else. Every parse function returns an error instead of recovering; the
// first error aborts the whole parse and no partial tree escapes.
package parser

import (
	"github.com/t14raptor/go-es1/ast"
	"github.com/t14raptor/go-es1/lexer"
	"github.com/t14raptor/go-es1/token"
)

// maxParseDepth bounds statement/expression nesting so adversarial input
// cannot blow the goroutine stack.
const maxParseDepth = 512

type parser struct {
	str    string
	tokens []lexer.Token
	pos    int

	// allowIn suppresses the `in` relational operator while a for-loop head
	// is being scanned.
	allowIn bool

	depth int
}

func newParser(src string, tokens []lexer.Token) *parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.Eof {
		tokens = append(tokens, lexer.Token{Kind: token.Eof, Content: "EOF"})
	}
	return &parser{
		str:     src,
		tokens:  tokens,
		allowIn: true,
	}
}

// Parse parses the source code of a single script and returns the
// corresponding ast.Program node.
func Parse(src string) (*ast.Program, error) {
	tokens, err := lexer.New(src).Walk()
	if err != nil {
		return nil, err
	}
	return newParser(src, tokens).parseProgram()
}

// ParseTokens parses an already-lexed token stream. With no source text at
// hand, errors render a token window instead of a source window.
func ParseTokens(tokens []lexer.Token) (*ast.Program, error) {
	return newParser("", tokens).parseProgram()
}

func (p *parser) parseProgram() (*ast.Program, error) {
	program := &ast.Program{}
	for p.current().Kind != token.Eof {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, stmt)
	}
	return program, nil
}

func (p *parser) current() lexer.Token {
	return p.tokens[p.pos]
}

// peek looks offset tokens ahead, clamped to the trailing EOF token.
func (p *parser) peek(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		idx = len(p.tokens) - 1
	}
	return p.tokens[idx]
}

// next consumes the current token. The final EOF token is never consumed.
func (p *parser) next() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) at(kind token.Kind) bool {
	return p.current().Kind == kind
}

func (p *parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(kind token.Kind) error {
	if !p.at(kind) {
		return p.errorf("unexpected token '%s', expected '%s'", p.current().Content, kind)
	}
	p.next()
	return nil
}

// canInsertSemicolon reports whether the current position satisfies a
// statement terminator without an explicit `;`: the next token is `}`, EOF,
// or sits on a new line.
func (p *parser) canInsertSemicolon() bool {
	kind := p.current().Kind
	return kind == token.Semicolon || kind == token.RightBrace ||
		kind == token.Eof || p.current().LineTerminatorBefore
}

// semicolon terminates a statement, consuming an explicit `;` when present.
func (p *parser) semicolon() error {
	if !p.canInsertSemicolon() {
		return p.errorf("expected ';' but found '%s'", p.current().Content)
	}
	p.eat(token.Semicolon)
	return nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxParseDepth {
		return p.errorf("nesting depth exceeds %d", maxParseDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}
