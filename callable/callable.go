// Package callable represents anything invocable from a call expression:
// a user function (declaration AST plus the environment captured at
// declaration) or a native function (name plus a Go implementation).
package callable

import (
	"fmt"
	"time"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/signal"
)

// Interpreter is the minimal surface a UserFunction needs from the
// evaluator to run its body, kept narrow to avoid an import cycle between
// callable and interpreter.
type Interpreter interface {
	ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error
}

// Callable is implemented by both UserFunction and NativeFunction.
type Callable interface {
	Arity() int
	Call(interp Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// UserFunction is a function declared in source. Closure is the
// environment active when the "fun" statement executed, captured by
// reference, not copied, so later mutations of outer variables remain
// visible across calls.
type UserFunction struct {
	Declaration *ast.FunctionStmt
	Closure     *environment.Environment
}

func (f *UserFunction) Arity() int { return len(f.Declaration.Params) }

func (f *UserFunction) Call(interp Interpreter, args []interface{}) (interface{}, error) {
	callEnv := environment.New(f.Closure)
	for i, param := range f.Declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	err := interp.ExecuteBlock(f.Declaration.Body, callEnv)
	if err == nil {
		return nil, nil
	}
	if ret, ok := err.(signal.ReturnSignal); ok {
		return ret.Value, nil
	}
	return nil, err
}

func (f *UserFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// NativeFunction wraps a host-implemented builtin, such as clock().
type NativeFunction struct {
	Name string
	Arty int
	Fn   func(args []interface{}) (interface{}, error)
}

func (f *NativeFunction) Arity() int { return f.Arty }

func (f *NativeFunction) Call(_ Interpreter, args []interface{}) (interface{}, error) {
	return f.Fn(args)
}

func (f *NativeFunction) String() string {
	return "<native fn>"
}

// Clock is the built-in native function bound in the global environment.
// It returns a monotonically non-decreasing wall-clock seconds value.
func Clock() *NativeFunction {
	return &NativeFunction{
		Name: "clock",
		Arty: 0,
		Fn: func(_ []interface{}) (interface{}, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	}
}
