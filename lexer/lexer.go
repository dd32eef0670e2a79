package lexer

import (
	"unicode/utf8"

	"github.com/t14raptor/go-es1/token"
)

// Token is a single lexical token together with the position it started at
// and whether at least one line terminator was skipped before it. The
// terminator flag drives automatic semicolon insertion and the postfix
// operator restriction in the parser.
type Token struct {
	Kind                 token.Kind
	Content              string
	LineTerminatorBefore bool
	Line                 int
	Col                  int
}

// Lexer turns source text into a stream of tokens. The source is iterated by
// codepoint; position bookkeeping lives in the Cursor.
type Lexer struct {
	src    string
	offset int
	cursor Cursor
}

// New returns a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// peek returns the current codepoint without consuming it, or -1 at EOF.
func (l *Lexer) peek() rune {
	if l.offset >= len(l.src) {
		return -1
	}
	chr, _ := utf8.DecodeRuneInString(l.src[l.offset:])
	return chr
}

// read consumes and returns the current codepoint, advancing the cursor.
func (l *Lexer) read() rune {
	if l.offset >= len(l.src) {
		return -1
	}
	chr, size := utf8.DecodeRuneInString(l.src[l.offset:])
	l.offset += size
	l.cursor.Advance(chr)
	return chr
}

// eat consumes the current codepoint if it equals chr.
func (l *Lexer) eat(chr rune) bool {
	if l.peek() == chr {
		l.read()
		return true
	}
	return false
}

func isHorizontalSpace(chr rune) bool {
	switch chr {
	case '\t', '\v', '\f', ' ':
		return true
	}
	return false
}

func isLineTerminator(chr rune) bool {
	return chr == '\r' || chr == '\n'
}

// skipComment skips a line or block comment if one starts at the read head.
func (l *Lexer) skipComment() (bool, error) {
	if l.peek() != '/' || l.offset+1 >= len(l.src) {
		return false, nil
	}

	switch l.src[l.offset+1] {
	case '/':
		l.read()
		l.read()
		for {
			chr := l.peek()
			if chr == -1 || isLineTerminator(chr) {
				break
			}
			l.read()
		}
		return true, nil
	case '*':
		l.read()
		l.read()
		var prev rune
		for {
			chr := l.read()
			if chr == -1 {
				return false, l.errorf("EOF in a comment")
			}
			if prev == '*' && chr == '/' {
				break
			}
			prev = chr
		}
		return true, nil
	}
	return false, nil
}

func (l *Lexer) skipSpaces() error {
	for {
		for isHorizontalSpace(l.peek()) {
			l.read()
		}
		skipped, err := l.skipComment()
		if err != nil {
			return err
		}
		if !skipped {
			return nil
		}
	}
}

// Next returns the next token, advancing the lexer. The returned token is
// Eof once the source is exhausted; calling Next again keeps returning Eof.
func (l *Lexer) Next() (Token, error) {
	sawTerminator := false
	for {
		if err := l.skipSpaces(); err != nil {
			return Token{}, err
		}
		chr := l.peek()
		if chr == '\r' {
			l.read()
			l.eat('\n')
			sawTerminator = true
			continue
		}
		if chr == '\n' {
			l.read()
			sawTerminator = true
			continue
		}
		break
	}

	tok := Token{
		Kind:                 token.Eof,
		Content:              "EOF",
		LineTerminatorBefore: sawTerminator,
		Line:                 l.cursor.Line,
		Col:                  l.cursor.Col,
	}

	chr := l.read()
	if chr == -1 {
		return tok, nil
	}

	punct := func(kind token.Kind) (Token, error) {
		tok.Kind = kind
		tok.Content = kind.String()
		return tok, nil
	}

	switch chr {
	case '(':
		return punct(token.LeftParenthesis)
	case ')':
		return punct(token.RightParenthesis)
	case '{':
		return punct(token.LeftBrace)
	case '}':
		return punct(token.RightBrace)
	case '[':
		return punct(token.LeftBracket)
	case ']':
		return punct(token.RightBracket)
	case ';':
		return punct(token.Semicolon)
	case ',':
		return punct(token.Comma)
	case '.':
		return punct(token.Period)
	case ':':
		return punct(token.Colon)
	case '?':
		return punct(token.QuestionMark)
	case '~':
		return punct(token.BitwiseNot)
	case '\\':
		return punct(token.Backslash)
	case '*':
		if l.eat('=') {
			return punct(token.MultiplyAssign)
		}
		return punct(token.Multiply)
	case '/':
		if l.eat('=') {
			return punct(token.QuotientAssign)
		}
		return punct(token.Slash)
	case '%':
		if l.eat('=') {
			return punct(token.RemainderAssign)
		}
		return punct(token.Remainder)
	case '^':
		if l.eat('=') {
			return punct(token.ExclusiveOrAssign)
		}
		return punct(token.ExclusiveOr)
	case '&':
		if l.eat('&') {
			return punct(token.LogicalAnd)
		}
		if l.eat('=') {
			return punct(token.AndAssign)
		}
		return punct(token.And)
	case '|':
		if l.eat('|') {
			return punct(token.LogicalOr)
		}
		if l.eat('=') {
			return punct(token.OrAssign)
		}
		return punct(token.Or)
	case '=':
		if l.eat('=') {
			return punct(token.Equal)
		}
		return punct(token.Assign)
	case '!':
		if l.eat('=') {
			return punct(token.NotEqual)
		}
		return punct(token.Not)
	case '+':
		if l.eat('+') {
			return punct(token.Increment)
		}
		if l.eat('=') {
			return punct(token.AddAssign)
		}
		return punct(token.Plus)
	case '-':
		if l.eat('-') {
			return punct(token.Decrement)
		}
		if l.eat('=') {
			return punct(token.SubtractAssign)
		}
		return punct(token.Minus)
	case '<':
		if l.eat('=') {
			return punct(token.LessOrEqual)
		}
		if l.eat('<') {
			if l.eat('=') {
				return punct(token.ShiftLeftAssign)
			}
			return punct(token.ShiftLeft)
		}
		return punct(token.Less)
	case '>':
		if l.eat('=') {
			return punct(token.GreaterOrEqual)
		}
		if l.eat('>') {
			if l.eat('>') {
				if l.eat('=') {
					return punct(token.UnsignedShiftRightAssign)
				}
				return punct(token.UnsignedShiftRight)
			}
			if l.eat('=') {
				return punct(token.ShiftRightAssign)
			}
			return punct(token.ShiftRight)
		}
		return punct(token.Greater)
	case '\'', '"':
		content, err := l.scanString(chr)
		if err != nil {
			return Token{}, err
		}
		tok.Kind = token.String
		tok.Content = content
		return tok, nil
	}

	if isDecimalDigit(chr) {
		content, err := l.scanNumber(chr)
		if err != nil {
			return Token{}, err
		}
		tok.Kind = token.Number
		tok.Content = content
		return tok, nil
	}

	if isIdentifierStart(chr) {
		content := l.scanIdentifierTail(chr)
		tok.Content = content
		if kind := token.LiteralKeyword(content); kind != 0 {
			tok.Kind = kind
		} else {
			tok.Kind = token.Identifier
		}
		return tok, nil
	}

	return Token{}, l.errorf("unknown token start %q", chr)
}

// scanString consumes a string literal after its opening delimiter has been
// read. The returned content keeps the delimiters and copies escape pairs
// through verbatim; decoding is the consumer's concern.
func (l *Lexer) scanString(delimiter rune) (string, error) {
	var sb []rune
	sb = append(sb, delimiter)

	for {
		chr := l.read()
		if chr == -1 {
			return "", l.errorf("EOF in string")
		}
		if chr == '\\' {
			sb = append(sb, chr)
			next := l.read()
			if next == -1 {
				return "", l.errorf("EOF in string escape")
			}
			sb = append(sb, next)
			continue
		}
		sb = append(sb, chr)
		if chr == delimiter {
			break
		}
	}
	return string(sb), nil
}

// scanNumber consumes a numeric literal after its first digit has been read.
// The scan is deliberately loose (digits, '_', '.', 'x', optional exponent);
// the parser rejects literals that fail numeric conversion. A literal
// immediately followed by an identifier-start character is a lexical error.
func (l *Lexer) scanNumber(first rune) (string, error) {
	var sb []rune
	sb = append(sb, first)

	for {
		chr := l.peek()
		if isDecimalDigit(chr) || chr == '_' || chr == '.' || chr == 'x' {
			sb = append(sb, l.read())
			continue
		}
		break
	}

	if chr := l.peek(); chr == 'e' || chr == 'E' {
		sb = append(sb, l.read())
		if chr := l.peek(); chr == '+' || chr == '-' {
			sb = append(sb, l.read())
		}
		for isDecimalDigit(l.peek()) {
			sb = append(sb, l.read())
		}
	}

	if chr := l.peek(); isIdentifierStart(chr) {
		return "", l.errorf("missing separator after number literal")
	}
	return string(sb), nil
}

// scanIdentifierTail consumes the rest of an identifier whose first
// codepoint has already been read.
func (l *Lexer) scanIdentifierTail(first rune) string {
	var sb []rune
	sb = append(sb, first)
	for isIdentifierPart(l.peek()) {
		sb = append(sb, l.read())
	}
	return string(sb)
}

// Walk drains the lexer and returns the full token list, including the
// terminating Eof token. The returned slice always ends with exactly one
// Eof token, so parsing logic may clamp any lookahead to the last element.
func (l *Lexer) Walk() ([]Token, error) {
	var output []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		output = append(output, tok)
		if tok.Kind == token.Eof {
			return output, nil
		}
	}
}
