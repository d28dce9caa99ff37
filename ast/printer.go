package ast

import (
	"fmt"
	"strings"
)

// Printer renders an expression tree as a parenthesized-prefix string, e.g.
// "(+ 1 (* 2 3))", useful for tests that check a parse produced the
// expected tree shape.
type Printer struct{}

// Print renders a single expression.
func (p *Printer) Print(e Expr) string {
	result, _ := e.Accept(p)
	return result.(string)
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		result, _ := e.Accept(p)
		b.WriteString(result.(string))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *Printer) VisitLiteralExpr(e *Literal) (interface{}, error) {
	if e.Value == nil {
		return "nil", nil
	}
	return fmt.Sprintf("%v", e.Value), nil
}

func (p *Printer) VisitGroupingExpr(e *Grouping) (interface{}, error) {
	return p.parenthesize("group", e.Expression), nil
}

func (p *Printer) VisitUnaryExpr(e *Unary) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Right), nil
}

func (p *Printer) VisitBinaryExpr(e *Binary) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p *Printer) VisitLogicalExpr(e *Logical) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p *Printer) VisitTernaryExpr(e *Ternary) (interface{}, error) {
	return p.parenthesize("?:", e.Cond, e.Left, e.Right), nil
}

func (p *Printer) VisitVariableExpr(e *Variable) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (p *Printer) VisitAssignExpr(e *Assign) (interface{}, error) {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value), nil
}

func (p *Printer) VisitCallExpr(e *Call) (interface{}, error) {
	exprs := append([]Expr{e.Callee}, e.Args...)
	return p.parenthesize("call", exprs...), nil
}
