package ast

type (
	// FunctionLiteral is shared by function declarations and function
	// expressions. Name is empty for anonymous function expressions.
	FunctionLiteral struct {
		Name          string `optional:"true"`
		ParameterList []string
		Body          []Stmt
	}

	FunctionDeclaration struct {
		Function *FunctionLiteral
	}
)

func (*FunctionLiteral) _expr()     {}
func (*FunctionDeclaration) _stmt() {}
