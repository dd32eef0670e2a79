package lexer

import (
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII runes (>= 128) branch to the Unicode path.
var asciiStart, asciiContinue [128]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

// Fast path for checking "start" of an identifier.
func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicodeid.IsIDStartUnicode(chr)
}

// Fast path for checking "continuation" of an identifier.
func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	return unicodeid.IsIDContinueUnicode(chr)
}

func isDecimalDigit(chr rune) bool {
	return chr >= '0' && chr <= '9'
}
