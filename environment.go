package golox

import "fmt"

// Environment is a mutable mapping from variable names to values, with
// an optional link to the enclosing scope. The chain from the innermost
// environment to the globals realizes lexical scoping; closures keep a
// shared reference to the environment that was current at their
// declaration, so they observe later assignments to captured variables.
type Environment struct {
	values    map[string]*Value
	enclosing *Environment
}

// NewEnvironment creates an empty top-level environment.
func NewEnvironment() *Environment {
	return &Environment{
		values: make(map[string]*Value),
	}
}

// NewEnclosedEnvironment creates an empty environment nested inside
// enclosing. Lookups that miss here continue in the enclosing chain.
func NewEnclosedEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]*Value),
		enclosing: enclosing,
	}
}

// Define binds name to value in this environment. Redefining a name at
// the same scope silently overwrites the previous binding; shadowing an
// outer binding is allowed.
func (e *Environment) Define(name string, value *Value) {
	e.values[name] = value
}

// Get resolves name against this environment and, failing that, the
// enclosing chain. An unresolved name is a runtime error located at the
// given token.
func (e *Environment) Get(name *Token) (*Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if value, ok := env.values[name.Lexeme]; ok {
			return value, nil
		}
	}
	return nil, &RuntimeError{
		Token:     name,
		OrigError: fmt.Errorf("Undefined variable '%s'.", name.Lexeme),
	}
}

// Assign replaces the value of an existing binding, at whichever scope
// on the chain it is found. Assignment never creates a binding; an
// unresolved name is the same runtime error as in Get.
func (e *Environment) Assign(name *Token, value *Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}
	return &RuntimeError{
		Token:     name,
		OrigError: fmt.Errorf("Undefined variable '%s'.", name.Lexeme),
	}
}
