package ast

import "github.com/akashmaji946/golox/lexer"

// Stmt is any statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// StmtVisitor is implemented by anything that walks statement nodes.
type StmtVisitor interface {
	VisitExprStmt(s *ExprStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitBreakStmt(s *BreakStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
}

// ExprStmt evaluates an expression for its side effects and discards the
// result (outside the REPL, which echoes it separately).
type ExprStmt struct {
	Expression Expr
}

func (s *ExprStmt) Accept(v StmtVisitor) error { return v.VisitExprStmt(s) }

// PrintStmt evaluates an expression, stringifies it, and writes it followed
// by a newline.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares a variable, optionally with an initializer. With no
// initializer the variable is bound to the Uninitialized marker.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil if absent
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope over a sequence of statements.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Cond       Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if absent
}

func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt is also the desugaring target for "for": the parser lowers
// for-loops into a Block wrapping a WhileStmt, producing no separate For
// node.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// BreakStmt raises a BreakSignal caught by the nearest enclosing WhileStmt.
type BreakStmt struct {
	Keyword lexer.Token
}

func (s *BreakStmt) Accept(v StmtVisitor) error { return v.VisitBreakStmt(s) }

// FunctionStmt declares a named function, capturing the environment active
// at the point of declaration as its closure.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt raises a ReturnSignal caught at the enclosing function call
// boundary. Value is nil when the statement is bare "return;".
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil if absent
}

func (s *ReturnStmt) Accept(v StmtVisitor) error { return v.VisitReturnStmt(s) }
