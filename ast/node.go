package ast

// Node is implemented by every syntax tree node.
type Node interface {
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

// Program is the root node of a parsed source text.
type Program struct {
	Body []Stmt
}
