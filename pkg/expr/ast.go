package expr

// Node is an evaluable expression tree node.
type Node interface {
	exprNode()
}

// NumberLit is a numeric literal.
type NumberLit struct {
	Value float64
}

// Ident is a variable reference, resolved against an Env at evaluation time.
type Ident struct {
	Name string
}

// UnaryExpr is a prefix operation (unary minus).
type UnaryExpr struct {
	Op      TokenType
	Operand Node
}

// BinaryExpr is an infix operation.
type BinaryExpr struct {
	Op    TokenType
	Left  Node
	Right Node
}

// CallExpr is a built-in function invocation.
type CallExpr struct {
	Func string
	Args []Node
}

func (*NumberLit) exprNode()  {}
func (*Ident) exprNode()      {}
func (*UnaryExpr) exprNode()  {}
func (*BinaryExpr) exprNode() {}
func (*CallExpr) exprNode()   {}
