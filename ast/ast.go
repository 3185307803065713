// Package ast defines the abstract syntax tree the parser produces and the
// compiler lowers to bytecode. The node set is deliberately small: it
// covers exactly the statement and expression forms the language accepts —
// no exceptions, comprehensions, slicing, decorators, multi-target
// assignment, or keyword/default/variadic parameters.
package ast

// Node is implemented by every AST node, statement or expression.
type Node interface {
	node()
}

// Statement is implemented by every statement-level node.
type Statement interface {
	Node
	statementNode()
}

// Expr is implemented by every expression-level node.
type Expr interface {
	Node
	exprNode()
}

// Module is the root of a compiled source file.
type Module struct {
	Statements []Statement
}

func (*Module) node() {}

type base struct{}

func (base) node() {}

// --- Statements ---

// Assign handles the single supported assignment form: `target = value`.
// Target is one of NameExpr (-> StoreName), Index (-> StoreIndex), or
// Attribute (-> StoreAttr). Multiple targets are rejected by the parser.
type Assign struct {
	base
	Target Expr
	Value  Expr
}

func (*Assign) statementNode() {}

// ExprStmt is a bare expression used as a statement. The compiler leaves
// its value on the stack only when it is the module's last top-level
// statement, where that value becomes the module result; everywhere else
// the value is popped.
type ExprStmt struct {
	base
	Expr Expr
}

func (*ExprStmt) statementNode() {}

// If represents an if/elif*/else chain as parallel Tests/Bodies slices
// plus an optional Else body. len(Tests) == len(Bodies).
type If struct {
	base
	Tests  []Expr
	Bodies [][]Statement
	Else   []Statement
}

func (*If) statementNode() {}

// While is a test-then-body loop.
type While struct {
	base
	Test Expr
	Body []Statement
}

func (*While) statementNode() {}

// For iterates Iter, binding each element to the bare name Var.
// Subscript and attribute loop targets are rejected at parse time.
type For struct {
	base
	Var  string
	Iter Expr
	Body []Statement
}

func (*For) statementNode() {}

type Break struct{ base }

func (*Break) statementNode() {}

type Continue struct{ base }

func (*Continue) statementNode() {}

// FunctionDef declares a function with positional-only parameters.
// The implicit trailing None and the Return bytecode-less
// fallthrough are a compiler/VM concern, not an AST concern.
type FunctionDef struct {
	base
	Name   string
	Params []string
	Body   []Statement
}

func (*FunctionDef) statementNode() {}

// Return yields Value from the enclosing function; Value is NoneLit{} when
// the source omits it.
type Return struct {
	base
	Value Expr
}

func (*Return) statementNode() {}

// ClassDef declares a class whose body is compiled as nested code and run
// in a sub-VM at class-creation time.
type ClassDef struct {
	base
	Name string
	Body []Statement
}

func (*ClassDef) statementNode() {}

// Import is the bare `import name` form.
type Import struct {
	base
	Name string
}

func (*Import) statementNode() {}

// ImportFrom is `from module import name, name, ...`.
type ImportFrom struct {
	base
	Module string
	Names  []string
}

func (*ImportFrom) statementNode() {}

// ImportStar is `from module import *`.
type ImportStar struct {
	base
	Name string
}

func (*ImportStar) statementNode() {}

// --- Expressions ---

type IntLit struct {
	base
	Value int64
}

func (*IntLit) exprNode() {}

type FloatLit struct {
	base
	Value float64
}

func (*FloatLit) exprNode() {}

type StrLit struct {
	base
	Value string
}

func (*StrLit) exprNode() {}

type BoolLit struct {
	base
	Value bool
}

func (*BoolLit) exprNode() {}

type NoneLit struct{ base }

func (*NoneLit) exprNode() {}

// NameExpr is a bare identifier reference, compiled to LoadName (or
// StoreName as an assignment target).
type NameExpr struct {
	base
	Name string
}

func (*NameExpr) exprNode() {}

// UnaryOp is "-" or "+" applied to Operand.
type UnaryOp struct {
	base
	Op      string
	Operand Expr
}

func (*UnaryOp) exprNode() {}

// BinOp is one of "+", "-", "*", "/".
type BinOp struct {
	base
	Op    string
	Left  Expr
	Right Expr
}

func (*BinOp) exprNode() {}

// Compare is one of "==", "!=", "<", "<=", ">", ">=" applied once; chained
// comparisons are out of scope.
type Compare struct {
	base
	Op    string
	Left  Expr
	Right Expr
}

func (*Compare) exprNode() {}

// Call applies Callee to Args in left-to-right order.
type Call struct {
	base
	Callee Expr
	Args   []Expr
}

func (*Call) exprNode() {}

// Attribute is `Obj.Name`.
type Attribute struct {
	base
	Obj  Expr
	Name string
}

func (*Attribute) exprNode() {}

// Index is `Obj[Key]`.
type Index struct {
	base
	Obj Expr
	Key Expr
}

func (*Index) exprNode() {}

type ListLit struct {
	base
	Elems []Expr
}

func (*ListLit) exprNode() {}

type TupleLit struct {
	base
	Elems []Expr
}

func (*TupleLit) exprNode() {}

type SetLit struct {
	base
	Elems []Expr
}

func (*SetLit) exprNode() {}

// DictLit pairs Keys[i] with Values[i] in source order.
type DictLit struct {
	base
	Keys   []Expr
	Values []Expr
}

func (*DictLit) exprNode() {}
