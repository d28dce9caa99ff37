// Package interpreter walks the AST against an environment chain,
// producing effects and values: expression evaluation, statement
// execution, and the call protocol for user and native functions.
package interpreter

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/callable"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/object"
	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/signal"
)

// Interpreter walks the statement list produced by the parser. globals is
// fixed and pre-populated with the native clock() callable; current is the
// environment in force for the statement being executed.
type Interpreter struct {
	globals  *environment.Environment
	current  *environment.Environment
	reporter *report.Reporter
	out      io.Writer
}

// New creates an Interpreter writing print output to out and diagnostics
// through reporter.
func New(out io.Writer, reporter *report.Reporter) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", callable.Clock())
	return &Interpreter{globals: globals, current: globals, reporter: reporter, out: out}
}

// Interpret executes statements in order, reporting a runtime error (if
// any) through the reporter and stopping the batch.
func (in *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			in.reportRuntimeError(err)
			return
		}
	}
}

// ReplInterpret behaves like Interpret, but additionally echoes the
// stringified value of a top-level ExprStmt before executing it for its
// side effects.
func (in *Interpreter) ReplInterpret(stmts []ast.Stmt) {
	for _, s := range stmts {
		if exprStmt, ok := s.(*ast.ExprStmt); ok {
			value, err := in.evaluate(exprStmt.Expression)
			if err != nil {
				in.reportRuntimeError(err)
				return
			}
			fmt.Fprintln(in.out, object.Stringify(value))
		}
		if err := in.execute(s); err != nil {
			in.reportRuntimeError(err)
			return
		}
	}
}

func (in *Interpreter) reportRuntimeError(err error) {
	if rerr, ok := err.(*report.RuntimeError); ok {
		in.reporter.RuntimeErr(rerr)
		return
	}
	// Any other error is a break or return signal that escaped every loop
	// and function call (for example a top-level "return", which the parser
	// accepts); it is reported with the signal's text and line 0.
	in.reporter.RuntimeErr(&report.RuntimeError{Line: 0, Message: err.Error()})
}

func (in *Interpreter) execute(s ast.Stmt) error {
	return s.Accept(in)
}

func (in *Interpreter) evaluate(e ast.Expr) (interface{}, error) {
	return e.Accept(in)
}

// ExecuteBlock runs stmts against env, restoring the prior current
// environment on every exit path including unwinds. It implements
// callable.Interpreter for UserFunction.Call, and is also used directly by
// VisitBlockStmt.
func (in *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.current
	in.current = env
	defer func() { in.current = previous }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// --- statements ---

func (in *Interpreter) VisitExprStmt(s *ast.ExprStmt) error {
	_, err := in.evaluate(s.Expression)
	return err
}

func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	value, err := in.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.out, object.Stringify(value))
	return nil
}

func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	var value interface{} = object.Uninitialized
	if s.Initializer != nil {
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	in.current.Define(s.Name.Lexeme, value)
	return nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return in.ExecuteBlock(s.Statements, environment.New(in.current))
}

func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := in.evaluate(s.Cond)
	if err != nil {
		return err
	}
	if object.Truthy(cond) {
		return in.execute(s.ThenBranch)
	}
	if s.ElseBranch != nil {
		return in.execute(s.ElseBranch)
	}
	return nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if !object.Truthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			if _, ok := err.(signal.BreakSignal); ok {
				return nil
			}
			return err
		}
	}
}

func (in *Interpreter) VisitBreakStmt(s *ast.BreakStmt) error {
	return signal.BreakSignal{}
}

func (in *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) error {
	fn := &callable.UserFunction{Declaration: s, Closure: in.current}
	in.current.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) error {
	var value interface{}
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return signal.ReturnSignal{Value: value}
}

// --- expressions ---

func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return e.Value, nil
}

func (in *Interpreter) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	return in.evaluate(e.Expression)
}

func (in *Interpreter) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	value, err := in.current.Get(e.Name.Lexeme, e.Name.Line)
	if err != nil {
		return nil, err
	}
	if object.IsUninitialized(value) {
		return nil, &report.RuntimeError{
			Line:    e.Name.Line,
			Message: fmt.Sprintf("Undefined variable '%s'.", e.Name.Lexeme),
		}
	}
	return value, nil
}

func (in *Interpreter) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if err := in.current.Assign(e.Name.Lexeme, value, e.Name.Line); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case tokenMinus:
		n, err := in.checkNumberOperand(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	case tokenBang:
		return !object.Truthy(right), nil
	}
	return nil, in.runtimeErr(e.Operator, "Unknown unary operator.")
}

func (in *Interpreter) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == tokenOr {
		if object.Truthy(left) {
			return left, nil
		}
	} else {
		if !object.Truthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) VisitTernaryExpr(e *ast.Ternary) (interface{}, error) {
	cond, err := in.evaluate(e.Cond)
	if err != nil {
		return nil, err
	}
	if object.Truthy(cond) {
		return in.evaluate(e.Left)
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	return in.applyBinary(e.Operator, left, right)
}

func (in *Interpreter) VisitCallExpr(e *ast.Call) (interface{}, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(callable.Callable)
	if !ok {
		return nil, in.runtimeErr(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, in.runtimeErr(e.Paren, fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}
	return fn.Call(in, args)
}
