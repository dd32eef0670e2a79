package ast

type (
	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	BlockStatement struct {
		List []Stmt
	}

	EmptyStatement struct{}

	ExpressionStatement struct {
		Expression Expr
	}

	VariableDeclaration struct {
		List []VariableDeclarator
	}

	VariableDeclarator struct {
		Name        string
		Initializer Expr `optional:"true"`
	}

	IfStatement struct {
		Test       Expr
		Consequent Stmt
		Alternate  Stmt `optional:"true"`
	}

	WhileStatement struct {
		Test Expr
		Body Stmt
	}

	ForStatement struct {
		// Initializer is a *VariableDeclaration for the var form, an
		// expression otherwise, nil when the clause is empty.
		Initializer Node `optional:"true"`
		Test        Expr `optional:"true"`
		Update      Expr `optional:"true"`
		Body        Stmt
	}

	ForInStatement struct {
		Name   string
		Source Expr
		Body   Stmt
	}

	ContinueStatement struct{}

	BreakStatement struct{}

	ReturnStatement struct {
		Argument Expr `optional:"true"`
	}

	WithStatement struct {
		Object Expr
		Body   Stmt
	}
)

func (*BlockStatement) _stmt()      {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*VariableDeclaration) _stmt() {}
func (*IfStatement) _stmt()         {}
func (*WhileStatement) _stmt()      {}
func (*ForStatement) _stmt()        {}
func (*ForInStatement) _stmt()      {}
func (*ContinueStatement) _stmt()   {}
func (*BreakStatement) _stmt()      {}
func (*ReturnStatement) _stmt()     {}
func (*WithStatement) _stmt()       {}
