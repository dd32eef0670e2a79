package lexer_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/go-es1/lexer"
	"github.com/t14raptor/go-es1/token"
)

// mustWalk tokenizes src and fails the test if there's an error.
func mustWalk(t *testing.T, src string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.New(src).Walk()
	if err != nil {
		t.Fatalf("Failed to tokenize:\n%s\nError: %v", src, err)
	}
	return tokens
}

// kindsOf collapses a token list into its kinds, dropping the trailing Eof.
func kindsOf(tokens []lexer.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.Eof {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func assertKinds(t *testing.T, src string, want ...token.Kind) {
	t.Helper()
	got := kindsOf(mustWalk(t, src))
	if len(got) != len(want) {
		t.Fatalf("tokenize(%q): got %v, want %v", src, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("tokenize(%q): token %d is %v, want %v", src, i, got[i], want[i])
		}
	}
}

func assertLexError(t *testing.T, src, wantSubstr string) {
	t.Helper()
	_, err := lexer.New(src).Walk()
	if err == nil {
		t.Fatalf("tokenize(%q): expected error containing %q, got none", src, wantSubstr)
	}
	if !strings.Contains(err.Error(), wantSubstr) {
		t.Fatalf("tokenize(%q): error %q does not contain %q", src, err, wantSubstr)
	}
}

func TestEmptySource(t *testing.T) {
	tokens := mustWalk(t, "")
	if len(tokens) != 1 || tokens[0].Kind != token.Eof {
		t.Fatalf("empty source: got %v, want a single EOF token", tokens)
	}
	if tokens[0].Content != "EOF" {
		t.Errorf("EOF content: got %q, want %q", tokens[0].Content, "EOF")
	}
}

func TestPunctuationLongestMatch(t *testing.T) {
	assertKinds(t, ">>>=", token.UnsignedShiftRightAssign)
	assertKinds(t, ">>>", token.UnsignedShiftRight)
	assertKinds(t, ">>=", token.ShiftRightAssign)
	assertKinds(t, ">>", token.ShiftRight)
	assertKinds(t, ">=", token.GreaterOrEqual)
	assertKinds(t, ">", token.Greater)
	assertKinds(t, "<<=", token.ShiftLeftAssign)
	assertKinds(t, "<<", token.ShiftLeft)
	assertKinds(t, "== =", token.Equal, token.Assign)
	assertKinds(t, "!=!", token.NotEqual, token.Not)
	assertKinds(t, "&&&", token.LogicalAnd, token.And)
	assertKinds(t, "|||=", token.LogicalOr, token.OrAssign)
	assertKinds(t, "++ +=", token.Increment, token.AddAssign)
	assertKinds(t, "-- -=", token.Decrement, token.SubtractAssign)
}

func TestKeywordClassification(t *testing.T) {
	assertKinds(t, "if", token.If)
	assertKinds(t, "in", token.In)
	assertKinds(t, "var", token.Var)
	assertKinds(t, "for", token.For)
	assertKinds(t, "new", token.New)
	assertKinds(t, "this", token.This)
	assertKinds(t, "else", token.Else)
	assertKinds(t, "void", token.Void)
	assertKinds(t, "with", token.With)
	assertKinds(t, "while", token.While)
	assertKinds(t, "break", token.Break)
	assertKinds(t, "return", token.Return)
	assertKinds(t, "typeof", token.Typeof)
	assertKinds(t, "delete", token.Delete)
	assertKinds(t, "function", token.Function)
	assertKinds(t, "continue", token.Continue)
	assertKinds(t, "true false", token.Boolean, token.Boolean)
	assertKinds(t, "null", token.Null)
	assertKinds(t, "undefined", token.Undefined)
}

func TestFutureReservedWords(t *testing.T) {
	for _, word := range []string{
		"case", "catch", "class", "const", "debugger", "default", "do",
		"enum", "export", "extends", "finally", "import", "super",
		"switch", "throw", "try",
	} {
		assertKinds(t, word, token.Keyword)
	}
}

func TestIdentifiers(t *testing.T) {
	assertKinds(t, "foo $bar _baz ifx", token.Identifier, token.Identifier, token.Identifier, token.Identifier)

	tokens := mustWalk(t, "π λx")
	if tokens[0].Kind != token.Identifier || tokens[0].Content != "π" {
		t.Errorf("unicode identifier: got %v %q", tokens[0].Kind, tokens[0].Content)
	}
	if tokens[1].Content != "λx" {
		t.Errorf("unicode identifier tail: got %q, want %q", tokens[1].Content, "λx")
	}
}

func TestNumberLiterals(t *testing.T) {
	for _, src := range []string{"0", "42", "3.25", "1_000", "0x10", "6e3", "1E-5", "2e+10"} {
		tokens := mustWalk(t, src)
		if tokens[0].Kind != token.Number || tokens[0].Content != src {
			t.Errorf("tokenize(%q): got %v %q", src, tokens[0].Kind, tokens[0].Content)
		}
	}
}

func TestNumberMissingSeparator(t *testing.T) {
	assertLexError(t, "3abc", "missing separator after number literal")
	assertLexError(t, "1e5x", "missing separator after number literal")
}

func TestStringLiterals(t *testing.T) {
	tokens := mustWalk(t, `'hello' "wo\"rld"`)
	if tokens[0].Kind != token.String || tokens[0].Content != `'hello'` {
		t.Errorf("single-quoted: got %v %q", tokens[0].Kind, tokens[0].Content)
	}
	if tokens[1].Kind != token.String || tokens[1].Content != `"wo\"rld"` {
		t.Errorf("escape kept verbatim: got %q", tokens[1].Content)
	}
}

func TestStringErrors(t *testing.T) {
	assertLexError(t, `'unterminated`, "EOF in string")
	assertLexError(t, `'trailing\`, "EOF in string escape")
}

func TestComments(t *testing.T) {
	assertKinds(t, "a // trailing comment", token.Identifier)
	assertKinds(t, "a /* inline */ b", token.Identifier, token.Identifier)
	assertKinds(t, "/* multi\nline */ x", token.Identifier)
	assertLexError(t, "/* never closed", "EOF in a comment")
}

func TestLineTerminatorBefore(t *testing.T) {
	tokens := mustWalk(t, "a\nb c\r\nd")
	want := []bool{false, true, false, true, false}
	for i, flag := range want {
		if tokens[i].LineTerminatorBefore != flag {
			t.Errorf("token %d (%q): LineTerminatorBefore = %v, want %v", i, tokens[i].Content, tokens[i].LineTerminatorBefore, flag)
		}
	}
}

func TestPositions(t *testing.T) {
	tokens := mustWalk(t, "ab cd\nef\r\ngh\rij")
	type pos struct{ line, col int }
	// The final entry is the EOF token.
	want := []pos{{0, 0}, {0, 3}, {1, 0}, {2, 0}, {3, 0}, {3, 2}}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, p := range want {
		if tokens[i].Line != p.line || tokens[i].Col != p.col {
			t.Errorf("token %d (%q): at %d:%d, want %d:%d", i, tokens[i].Content, tokens[i].Line, tokens[i].Col, p.line, p.col)
		}
	}
}

func TestUnknownTokenStart(t *testing.T) {
	assertLexError(t, "a # b", "unknown token start")
	assertLexError(t, "@", "unknown token start")
}

func TestNextAfterEOF(t *testing.T) {
	l := lexer.New("x")
	for i := 0; i < 3; i++ {
		if _, err := l.Next(); err != nil {
			t.Fatalf("Next #%d: %v", i, err)
		}
	}
	tok, err := l.Next()
	if err != nil || tok.Kind != token.Eof {
		t.Fatalf("Next past end: got %v, %v; want EOF", tok.Kind, err)
	}
}
