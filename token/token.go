package token

import (
	"strconv"
)

// Kind is the set of lexical tokens in the ES1 subset.
type Kind int

// String returns the string corresponding to the token kind.
func (k Kind) String() string {
	if k == 0 {
		return "UNKNOWN"
	}
	if k < Kind(len(kind2string)) {
		return kind2string[k]
	}
	return "token(" + strconv.Itoa(int(k)) + ")"
}

// keyword ...
type keyword struct {
	kind          Kind
	futureKeyword bool
}

// LiteralKeyword returns the keyword kind if literal is a keyword. A future
// reserved word (case, class, switch, ...) lexes as the generic Keyword kind
// and carries no grammar of its own. Returns 0 if the literal is not a
// keyword at all.
func LiteralKeyword(literal string) Kind {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Keyword
		}
		return k.kind
	}
	return 0
}

// ID reports whether the kind may appear where a property name is expected
// after `.` (member property names admit keywords: obj.delete is legal).
func ID(kind Kind) bool {
	return kind >= Identifier
}

// IsAssignOperator reports whether the kind is `=` or one of the compound
// assignment operators.
func IsAssignOperator(kind Kind) bool {
	switch kind {
	case Assign,
		AddAssign, SubtractAssign, MultiplyAssign, QuotientAssign, RemainderAssign,
		ShiftLeftAssign, ShiftRightAssign, UnsignedShiftRightAssign,
		AndAssign, OrAssign, ExclusiveOrAssign:
		return true
	}
	return false
}

// IsUnaryOperator reports whether the kind may begin a unary expression.
func IsUnaryOperator(kind Kind) bool {
	switch kind {
	case Plus, Minus, Not, BitwiseNot, Typeof, Void, Delete, Increment, Decrement:
		return true
	}
	return false
}
