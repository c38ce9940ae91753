// ast.go — typed AST for NabeelScript.
//
// The parser produces a flat []Stmt program. Every node records the position
// of its leading token so runtime errors can point back into the source.
// Nodes own their children exclusively; the tree has no sharing and no cycles.
package nabeelscript

// Pos is a source position: 1-based Line, 0-based Col (token convention).
type Pos struct {
	Line int
	Col  int
}

// Stmt is a program statement.
type Stmt interface {
	Pos() Pos
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Pos() Pos
	exprNode()
}

// ----- statements -----

// AssignStmt is `name = expr ;`. Assignment stores the evaluated value in the
// environment, overwriting any previous binding of the name.
type AssignStmt struct {
	At   Pos
	Name string
	Expr Expr
}

// PrintStmt is `print expr ;`.
type PrintStmt struct {
	At   Pos
	Expr Expr
}

func (s *AssignStmt) Pos() Pos  { return s.At }
func (s *PrintStmt) Pos() Pos   { return s.At }
func (s *AssignStmt) stmtNode() {}
func (s *PrintStmt) stmtNode()  {}

// ----- expressions -----

type NumberLit struct {
	At    Pos
	Value float64
}

type StringLit struct {
	At    Pos
	Value string
}

type BoolLit struct {
	At    Pos
	Value bool
}

// ArrayLit is `[e1, e2, ...]`; elements evaluate left to right.
type ArrayLit struct {
	At    Pos
	Elems []Expr
}

// VarRef reads a variable from the environment.
type VarRef struct {
	At   Pos
	Name string
}

// BinaryExpr covers the arithmetic, comparison, equality, and logical
// operators. Op is the operator's token type; all binary operators are
// left-associative.
type BinaryExpr struct {
	At    Pos // position of the operator token
	Op    TokenType
	Left  Expr
	Right Expr
}

// UnaryExpr is prefix `!` or `-`.
type UnaryExpr struct {
	At      Pos
	Op      TokenType
	Operand Expr
}

// IndexExpr is `base[index]`, 0-based, chainable.
type IndexExpr struct {
	At    Pos // position of the "["
	Base  Expr
	Index Expr
}

// CallExpr is a built-in invocation `name(arg1, arg2, ...)`.
type CallExpr struct {
	At   Pos
	Name string
	Args []Expr
}

func (e *NumberLit) Pos() Pos  { return e.At }
func (e *StringLit) Pos() Pos  { return e.At }
func (e *BoolLit) Pos() Pos    { return e.At }
func (e *ArrayLit) Pos() Pos   { return e.At }
func (e *VarRef) Pos() Pos     { return e.At }
func (e *BinaryExpr) Pos() Pos { return e.At }
func (e *UnaryExpr) Pos() Pos  { return e.At }
func (e *IndexExpr) Pos() Pos  { return e.At }
func (e *CallExpr) Pos() Pos   { return e.At }

func (e *NumberLit) exprNode()  {}
func (e *StringLit) exprNode()  {}
func (e *BoolLit) exprNode()    {}
func (e *ArrayLit) exprNode()   {}
func (e *VarRef) exprNode()     {}
func (e *BinaryExpr) exprNode() {}
func (e *UnaryExpr) exprNode()  {}
func (e *IndexExpr) exprNode()  {}
func (e *CallExpr) exprNode()   {}
