package ast

// Visitor has a method per concrete node type. Embed NoopVisitor and
// override the methods you care about; call node.VisitChildrenWith to
// continue the traversal.
type Visitor interface {
	VisitProgram(node *Program)
	VisitIdentifier(node *Identifier)
	VisitThisExpression(node *ThisExpression)
	VisitEmptyExpression(node *EmptyExpression)
	VisitNullLiteral(node *NullLiteral)
	VisitUndefinedLiteral(node *UndefinedLiteral)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitNumberLiteral(node *NumberLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitArrayLiteral(node *ArrayLiteral)
	VisitObjectLiteral(node *ObjectLiteral)
	VisitProperty(node *Property)
	VisitBinaryExpression(node *BinaryExpression)
	VisitUnaryExpression(node *UnaryExpression)
	VisitUpdateExpression(node *UpdateExpression)
	VisitAssignExpression(node *AssignExpression)
	VisitConditionalExpression(node *ConditionalExpression)
	VisitMemberExpression(node *MemberExpression)
	VisitIndexExpression(node *IndexExpression)
	VisitCallExpression(node *CallExpression)
	VisitNewExpression(node *NewExpression)
	VisitSequenceExpression(node *SequenceExpression)
	VisitFunctionLiteral(node *FunctionLiteral)
	VisitFunctionDeclaration(node *FunctionDeclaration)
	VisitBlockStatement(node *BlockStatement)
	VisitEmptyStatement(node *EmptyStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitVariableDeclaration(node *VariableDeclaration)
	VisitVariableDeclarator(node *VariableDeclarator)
	VisitIfStatement(node *IfStatement)
	VisitWhileStatement(node *WhileStatement)
	VisitForStatement(node *ForStatement)
	VisitForInStatement(node *ForInStatement)
	VisitContinueStatement(node *ContinueStatement)
	VisitBreakStatement(node *BreakStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitWithStatement(node *WithStatement)
}

// NoopVisitor visits every node and does nothing.
type NoopVisitor struct{}

func (nv *NoopVisitor) VisitProgram(node *Program)               { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitIdentifier(node *Identifier)         { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitThisExpression(node *ThisExpression) { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitEmptyExpression(node *EmptyExpression) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitNullLiteral(node *NullLiteral) { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitUndefinedLiteral(node *UndefinedLiteral) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitBooleanLiteral(node *BooleanLiteral) { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitNumberLiteral(node *NumberLiteral)   { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitStringLiteral(node *StringLiteral)   { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitArrayLiteral(node *ArrayLiteral)     { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitObjectLiteral(node *ObjectLiteral)   { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitProperty(node *Property)             { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitBinaryExpression(node *BinaryExpression) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitUnaryExpression(node *UnaryExpression) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitUpdateExpression(node *UpdateExpression) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitAssignExpression(node *AssignExpression) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitConditionalExpression(node *ConditionalExpression) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitMemberExpression(node *MemberExpression) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitIndexExpression(node *IndexExpression) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitCallExpression(node *CallExpression) { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitNewExpression(node *NewExpression)   { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitSequenceExpression(node *SequenceExpression) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitFunctionLiteral(node *FunctionLiteral) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitFunctionDeclaration(node *FunctionDeclaration) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitBlockStatement(node *BlockStatement) { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitEmptyStatement(node *EmptyStatement) { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitExpressionStatement(node *ExpressionStatement) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitVariableDeclaration(node *VariableDeclaration) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitVariableDeclarator(node *VariableDeclarator) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitIfStatement(node *IfStatement)       { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitWhileStatement(node *WhileStatement) { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitForStatement(node *ForStatement)     { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitForInStatement(node *ForInStatement) { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitContinueStatement(node *ContinueStatement) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitBreakStatement(node *BreakStatement) { node.VisitChildrenWith(nv) }
func (nv *NoopVisitor) VisitReturnStatement(node *ReturnStatement) {
	node.VisitChildrenWith(nv)
}
func (nv *NoopVisitor) VisitWithStatement(node *WithStatement) { node.VisitChildrenWith(nv) }

func (n *Program) VisitWith(v Visitor)               { v.VisitProgram(n) }
func (n *Identifier) VisitWith(v Visitor)            { v.VisitIdentifier(n) }
func (n *ThisExpression) VisitWith(v Visitor)        { v.VisitThisExpression(n) }
func (n *EmptyExpression) VisitWith(v Visitor)       { v.VisitEmptyExpression(n) }
func (n *NullLiteral) VisitWith(v Visitor)           { v.VisitNullLiteral(n) }
func (n *UndefinedLiteral) VisitWith(v Visitor)      { v.VisitUndefinedLiteral(n) }
func (n *BooleanLiteral) VisitWith(v Visitor)        { v.VisitBooleanLiteral(n) }
func (n *NumberLiteral) VisitWith(v Visitor)         { v.VisitNumberLiteral(n) }
func (n *StringLiteral) VisitWith(v Visitor)         { v.VisitStringLiteral(n) }
func (n *ArrayLiteral) VisitWith(v Visitor)          { v.VisitArrayLiteral(n) }
func (n *ObjectLiteral) VisitWith(v Visitor)         { v.VisitObjectLiteral(n) }
func (n *Property) VisitWith(v Visitor)              { v.VisitProperty(n) }
func (n *BinaryExpression) VisitWith(v Visitor)      { v.VisitBinaryExpression(n) }
func (n *UnaryExpression) VisitWith(v Visitor)       { v.VisitUnaryExpression(n) }
func (n *UpdateExpression) VisitWith(v Visitor)      { v.VisitUpdateExpression(n) }
func (n *AssignExpression) VisitWith(v Visitor)      { v.VisitAssignExpression(n) }
func (n *ConditionalExpression) VisitWith(v Visitor) { v.VisitConditionalExpression(n) }
func (n *MemberExpression) VisitWith(v Visitor)      { v.VisitMemberExpression(n) }
func (n *IndexExpression) VisitWith(v Visitor)       { v.VisitIndexExpression(n) }
func (n *CallExpression) VisitWith(v Visitor)        { v.VisitCallExpression(n) }
func (n *NewExpression) VisitWith(v Visitor)         { v.VisitNewExpression(n) }
func (n *SequenceExpression) VisitWith(v Visitor)    { v.VisitSequenceExpression(n) }
func (n *FunctionLiteral) VisitWith(v Visitor)       { v.VisitFunctionLiteral(n) }
func (n *FunctionDeclaration) VisitWith(v Visitor)   { v.VisitFunctionDeclaration(n) }
func (n *BlockStatement) VisitWith(v Visitor)        { v.VisitBlockStatement(n) }
func (n *EmptyStatement) VisitWith(v Visitor)        { v.VisitEmptyStatement(n) }
func (n *ExpressionStatement) VisitWith(v Visitor)   { v.VisitExpressionStatement(n) }
func (n *VariableDeclaration) VisitWith(v Visitor)   { v.VisitVariableDeclaration(n) }
func (n *VariableDeclarator) VisitWith(v Visitor)    { v.VisitVariableDeclarator(n) }
func (n *IfStatement) VisitWith(v Visitor)           { v.VisitIfStatement(n) }
func (n *WhileStatement) VisitWith(v Visitor)        { v.VisitWhileStatement(n) }
func (n *ForStatement) VisitWith(v Visitor)          { v.VisitForStatement(n) }
func (n *ForInStatement) VisitWith(v Visitor)        { v.VisitForInStatement(n) }
func (n *ContinueStatement) VisitWith(v Visitor)     { v.VisitContinueStatement(n) }
func (n *BreakStatement) VisitWith(v Visitor)        { v.VisitBreakStatement(n) }
func (n *ReturnStatement) VisitWith(v Visitor)       { v.VisitReturnStatement(n) }
func (n *WithStatement) VisitWith(v Visitor)         { v.VisitWithStatement(n) }

func (n *Program) VisitChildrenWith(v Visitor) {
	for _, stmt := range n.Body {
		stmt.VisitWith(v)
	}
}

func (n *Identifier) VisitChildrenWith(v Visitor)       {}
func (n *ThisExpression) VisitChildrenWith(v Visitor)   {}
func (n *EmptyExpression) VisitChildrenWith(v Visitor)  {}
func (n *NullLiteral) VisitChildrenWith(v Visitor)      {}
func (n *UndefinedLiteral) VisitChildrenWith(v Visitor) {}
func (n *BooleanLiteral) VisitChildrenWith(v Visitor)   {}
func (n *NumberLiteral) VisitChildrenWith(v Visitor)    {}
func (n *StringLiteral) VisitChildrenWith(v Visitor)    {}

func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	for _, element := range n.Value {
		element.VisitWith(v)
	}
}

func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Value {
		n.Value[i].VisitWith(v)
	}
}

func (n *Property) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
}

func (n *IndexExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Index.VisitWith(v)
}

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.Arguments.VisitWith(v)
}

func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	if n.Arguments != nil {
		n.Arguments.VisitWith(v)
	}
}

func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	for _, expr := range n.Sequence {
		expr.VisitWith(v)
	}
}

func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	for _, stmt := range n.Body {
		stmt.VisitWith(v)
	}
}

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	for _, stmt := range n.List {
		stmt.VisitWith(v)
	}
}

func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForStatement) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	if n.Update != nil {
		n.Update.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ContinueStatement) VisitChildrenWith(v Visitor) {}
func (n *BreakStatement) VisitChildrenWith(v Visitor)    {}

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *WithStatement) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Body.VisitWith(v)
}
