package parser

import "github.com/t14raptor/go-es1/token"

// Precedence represents operator binding power for Pratt parsing.
//
// Values use a binding-power encoding where even values represent
// left-associative operators and odd values represent right-associative
// operators. The Pratt loop uses a single comparison (lbp <= minBP)
// and the recursive call passes lbp ^ 1 as the new minimum. The XOR
// flips even↔odd:
//
//   - Left-assoc  (even lbp): recursive min = lbp+1 (odd)  → same-level breaks
//   - Right-assoc (odd  lbp): recursive min = lbp-1 (even) → same-level continues
//
// Every binary tier of this grammar is left-associative, so all table
// entries are even; the encoding keeps the loop branch-free regardless.
type Precedence uint8

const (
	PrecedenceLowest     Precedence = 0
	PrecedenceLogicalOr  Precedence = 14 // ||          (left-assoc)
	PrecedenceLogicalAnd Precedence = 16 // &&          (left-assoc)
	PrecedenceBitwiseOr  Precedence = 18 // |           (left-assoc)
	PrecedenceBitwiseXor Precedence = 20 // ^           (left-assoc)
	PrecedenceBitwiseAnd Precedence = 22 // &           (left-assoc)
	PrecedenceEquals     Precedence = 24 // == !=       (left-assoc)
	PrecedenceCompare    Precedence = 26 // < > <= >= in (left-assoc)
	PrecedenceShift      Precedence = 28 // << >> >>>   (left-assoc)
	PrecedenceAdd        Precedence = 30 // + -         (left-assoc)
	PrecedenceMultiply   Precedence = 32 // * / %       (left-assoc)
)

// tokenPrecedence maps each token kind to its left binding power.
// Zero means the token is not a binary/logical operator.
var tokenPrecedence [256]Precedence

func init() {
	tokenPrecedence[token.LogicalOr] = PrecedenceLogicalOr
	tokenPrecedence[token.LogicalAnd] = PrecedenceLogicalAnd
	tokenPrecedence[token.Or] = PrecedenceBitwiseOr
	tokenPrecedence[token.ExclusiveOr] = PrecedenceBitwiseXor
	tokenPrecedence[token.And] = PrecedenceBitwiseAnd
	tokenPrecedence[token.Equal] = PrecedenceEquals
	tokenPrecedence[token.NotEqual] = PrecedenceEquals
	tokenPrecedence[token.Less] = PrecedenceCompare
	tokenPrecedence[token.Greater] = PrecedenceCompare
	tokenPrecedence[token.LessOrEqual] = PrecedenceCompare
	tokenPrecedence[token.GreaterOrEqual] = PrecedenceCompare
	tokenPrecedence[token.In] = PrecedenceCompare
	tokenPrecedence[token.ShiftLeft] = PrecedenceShift
	tokenPrecedence[token.ShiftRight] = PrecedenceShift
	tokenPrecedence[token.UnsignedShiftRight] = PrecedenceShift
	tokenPrecedence[token.Plus] = PrecedenceAdd
	tokenPrecedence[token.Minus] = PrecedenceAdd
	tokenPrecedence[token.Multiply] = PrecedenceMultiply
	tokenPrecedence[token.Slash] = PrecedenceMultiply
	tokenPrecedence[token.Remainder] = PrecedenceMultiply
}

// kindToPrecedence returns the left binding power for a token kind.
// Returns 0 if the token is not a binary/logical operator.
func kindToPrecedence(kind token.Kind) Precedence {
	return tokenPrecedence[kind]
}
