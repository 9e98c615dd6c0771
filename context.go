package golox

import "errors"

// ExecutionContext holds the runtime state threaded through statement
// execution and expression evaluation: the interpreter owning the run
// and the environment that is current at this point of the program.
//
// Block statements and function calls execute under a child context so
// that leaving the construct — normally or through an error or return —
// restores the previous environment for free.
type ExecutionContext struct {
	interpreter *Interpreter

	// Env is the innermost environment of the running code.
	Env *Environment
}

func newExecutionContext(in *Interpreter) *ExecutionContext {
	return &ExecutionContext{
		interpreter: in,
		Env:         in.globals,
	}
}

// NewChildExecutionContext creates an execution context for a nested
// scope: same interpreter, fresh environment enclosed by the parent's.
func NewChildExecutionContext(parent *ExecutionContext) *ExecutionContext {
	return &ExecutionContext{
		interpreter: parent.interpreter,
		Env:         NewEnclosedEnvironment(parent.Env),
	}
}

// Interpreter returns the interpreter this context belongs to.
func (ctx *ExecutionContext) Interpreter() *Interpreter {
	return ctx.interpreter
}

// Error builds a runtime error located at the given token.
func (ctx *ExecutionContext) Error(msg string, token *Token) error {
	return ctx.OrigError(errors.New(msg), token)
}

// OrigError wraps an existing error into a runtime error located at the
// given token.
func (ctx *ExecutionContext) OrigError(err error, token *Token) error {
	return &RuntimeError{
		Token:     token,
		OrigError: err,
	}
}
