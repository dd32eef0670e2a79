package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t14raptor/go-es1/token"
)

func TestString(t *testing.T) {
	assert.Equal(t, "UNKNOWN", token.Undetermined.String())
	assert.Equal(t, "+", token.Plus.String())
	assert.Equal(t, ">>>=", token.UnsignedShiftRightAssign.String())
	assert.Equal(t, "if", token.If.String())
	assert.Equal(t, "Identifier", token.Identifier.String())
	assert.Equal(t, "token(9999)", token.Kind(9999).String())
}

func TestLiteralKeyword(t *testing.T) {
	assert.Equal(t, token.If, token.LiteralKeyword("if"))
	assert.Equal(t, token.Function, token.LiteralKeyword("function"))
	assert.Equal(t, token.Boolean, token.LiteralKeyword("true"))
	assert.Equal(t, token.Boolean, token.LiteralKeyword("false"))
	assert.Equal(t, token.Null, token.LiteralKeyword("null"))
	assert.Equal(t, token.Undefined, token.LiteralKeyword("undefined"))

	// Future reserved words all collapse to the generic Keyword kind.
	assert.Equal(t, token.Keyword, token.LiteralKeyword("class"))
	assert.Equal(t, token.Keyword, token.LiteralKeyword("switch"))
	assert.Equal(t, token.Keyword, token.LiteralKeyword("try"))

	assert.Equal(t, token.Undetermined, token.LiteralKeyword("foo"))
	assert.Equal(t, token.Undetermined, token.LiteralKeyword("If"))
}

func TestID(t *testing.T) {
	assert.True(t, token.ID(token.Identifier))
	assert.True(t, token.ID(token.Delete))
	assert.True(t, token.ID(token.Keyword))
	assert.False(t, token.ID(token.Plus))
	assert.False(t, token.ID(token.String))
}

func TestIsAssignOperator(t *testing.T) {
	assert.True(t, token.IsAssignOperator(token.Assign))
	assert.True(t, token.IsAssignOperator(token.AddAssign))
	assert.True(t, token.IsAssignOperator(token.UnsignedShiftRightAssign))
	assert.False(t, token.IsAssignOperator(token.Equal))
	assert.False(t, token.IsAssignOperator(token.Plus))
}

func TestIsUnaryOperator(t *testing.T) {
	assert.True(t, token.IsUnaryOperator(token.Minus))
	assert.True(t, token.IsUnaryOperator(token.Typeof))
	assert.True(t, token.IsUnaryOperator(token.Increment))
	assert.False(t, token.IsUnaryOperator(token.Multiply))
	assert.False(t, token.IsUnaryOperator(token.In))
}
