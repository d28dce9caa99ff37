// Package environment implements the lexical scope chain: a linked list of
// binding maps, each pointing at its enclosing scope. There is no copy
// operation: a closure holds a direct pointer into the environment active
// at its declaration, so later mutations stay visible across invocations.
package environment

import (
	"fmt"

	"github.com/akashmaji946/golox/report"
)

// Environment is one link in the scope chain: a binding map plus a pointer
// to the enclosing scope (nil for the global environment).
type Environment struct {
	values    map[string]interface{}
	enclosing *Environment
}

// New creates a child environment of enclosing. Pass nil to create the
// global environment.
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), enclosing: enclosing}
}

// Define binds name to value in this scope, overwriting any existing
// binding for name in this same scope. Redeclaration is allowed.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get resolves name by walking from this scope outward to the globals.
// A miss anywhere in the chain is a runtime error.
func (e *Environment) Get(name string, line int) (interface{}, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name, line)
	}
	return nil, &report.RuntimeError{Line: line, Message: fmt.Sprintf("Undefined variable '%s'.", name)}
}

// Assign rebinds name in the first scope (walking outward) that already
// defines it. A miss anywhere in the chain is a runtime error.
func (e *Environment) Assign(name string, value interface{}, line int) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value, line)
	}
	return &report.RuntimeError{Line: line, Message: fmt.Sprintf("Undefined variable '%s'.", name)}
}
