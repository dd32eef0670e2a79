package ast

type (
	NullLiteral struct{}

	// UndefinedLiteral is the `undefined` keyword. Array elisions also
	// produce one per omitted element.
	UndefinedLiteral struct{}

	BooleanLiteral struct {
		Value bool
	}

	NumberLiteral struct {
		Value float64
	}

	// StringLiteral holds the text between the delimiters. Escape pairs are
	// kept verbatim; decoding is left to consumers.
	StringLiteral struct {
		Value string
	}

	ArrayLiteral struct {
		Value []Expr
	}

	ObjectLiteral struct {
		Value []Property
	}

	// Property keys are Identifier, StringLiteral or NumberLiteral nodes by
	// construction.
	Property struct {
		Key   Expr
		Value Expr
	}
)

func (*NullLiteral) _expr()      {}
func (*UndefinedLiteral) _expr() {}
func (*BooleanLiteral) _expr()   {}
func (*NumberLiteral) _expr()    {}
func (*StringLiteral) _expr()    {}
func (*ArrayLiteral) _expr()     {}
func (*ObjectLiteral) _expr()    {}
