package ast

import "github.com/t14raptor/go-es1/token"

type (
	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	Identifier struct {
		Name string
	}

	ThisExpression struct{}

	// EmptyExpression marks an expression slot that carries no expression,
	// such as an omitted for-clause.
	EmptyExpression struct{}

	BinaryExpression struct {
		Operator token.Kind
		Left     Expr
		Right    Expr
	}

	UnaryExpression struct {
		Operator token.Kind
		Operand  Expr
	}

	UpdateExpression struct {
		Operator token.Kind
		Operand  Expr
		Postfix  bool
	}

	AssignExpression struct {
		Operator token.Kind
		Left     Expr
		Right    Expr
	}

	ConditionalExpression struct {
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	// MemberExpression is a dotted property access, obj.prop.
	MemberExpression struct {
		Object   Expr
		Property string
	}

	// IndexExpression is a computed property access, obj[expr].
	IndexExpression struct {
		Object Expr
		Index  Expr
	}

	CallExpression struct {
		Callee    Expr
		Arguments *SequenceExpression
	}

	// NewExpression arguments are empty when no parenthesis follows `new F`.
	NewExpression struct {
		Callee    Expr
		Arguments *SequenceExpression
	}

	SequenceExpression struct {
		Sequence []Expr
	}
)

func (*Identifier) _expr()            {}
func (*ThisExpression) _expr()        {}
func (*EmptyExpression) _expr()       {}
func (*BinaryExpression) _expr()      {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
func (*AssignExpression) _expr()      {}
func (*ConditionalExpression) _expr() {}
func (*MemberExpression) _expr()      {}
func (*IndexExpression) _expr()       {}
func (*CallExpression) _expr()        {}
func (*NewExpression) _expr()         {}
func (*SequenceExpression) _expr()    {}
