package interpreter

import (
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/object"
	"github.com/akashmaji946/golox/report"
)

// Local aliases keep the switch statements in interpreter.go readable
// without importing lexer's whole constant set under its own name twice.
const (
	tokenMinus = lexer.MINUS
	tokenBang  = lexer.BANG
	tokenOr    = lexer.OR
)

// applyBinary evaluates a binary expression given its already-evaluated
// operands.
func (in *Interpreter) applyBinary(op lexer.Token, left, right interface{}) (interface{}, error) {
	switch op.Type {
	case lexer.MINUS:
		l, r, err := in.checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case lexer.SLASH:
		l, r, err := in.checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case lexer.STAR:
		l, r, err := in.checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case lexer.PLUS:
		return in.applyPlus(op, left, right)
	case lexer.GREATER:
		l, r, err := in.checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case lexer.GREATER_EQUAL:
		l, r, err := in.checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case lexer.LESS:
		l, r, err := in.checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case lexer.LESS_EQUAL:
		l, r, err := in.checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case lexer.BANG_EQUAL:
		return !object.Equal(left, right), nil
	case lexer.EQUAL_EQUAL:
		return object.Equal(left, right), nil
	}
	return nil, in.runtimeErr(op, "Unknown binary operator.")
}

// applyPlus implements the permissive "+" rule (DESIGN.md Open Question):
// number+number adds, string+string concatenates, and a mixed
// number/string pair concatenates with the number stringified via
// object.Stringify (which already drops a trailing ".0").
func (in *Interpreter) applyPlus(op lexer.Token, left, right interface{}) (interface{}, error) {
	lf, lIsNum := left.(float64)
	rf, rIsNum := right.(float64)
	if lIsNum && rIsNum {
		return lf + rf, nil
	}
	ls, lIsStr := left.(string)
	rs, rIsStr := right.(string)
	if lIsStr && rIsStr {
		return ls + rs, nil
	}
	if lIsStr && rIsNum {
		return ls + object.Stringify(rf), nil
	}
	if lIsNum && rIsStr {
		return object.Stringify(lf) + rs, nil
	}
	return nil, in.runtimeErr(op, "Operands must be two numbers or two strings.")
}

func (in *Interpreter) checkNumberOperand(op lexer.Token, v interface{}) (float64, error) {
	if n, ok := v.(float64); ok {
		return n, nil
	}
	return 0, in.runtimeErr(op, "Operand must be a number.")
}

func (in *Interpreter) checkNumberOperands(op lexer.Token, left, right interface{}) (float64, float64, error) {
	l, ok1 := left.(float64)
	r, ok2 := right.(float64)
	if !ok1 || !ok2 {
		return 0, 0, in.runtimeErr(op, "Operands must be numbers.")
	}
	return l, r, nil
}

func (in *Interpreter) runtimeErr(tok lexer.Token, message string) error {
	return &report.RuntimeError{Line: tok.Line, Message: message}
}
