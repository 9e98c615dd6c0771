package golox

import (
	"io"
	"os"
	"time"
)

// Callable is the contract shared by user-defined functions and native
// functions: a fixed arity and an invocation taking already-evaluated
// arguments. The call site has verified the arity before Call runs.
type Callable interface {
	Arity() int
	Call(ctx *ExecutionContext, args []*Value) (*Value, error)
}

// Function is a user-defined function value: the declaration node it
// was built from and the environment captured at the declaration. The
// closure is held by shared reference, so the function observes later
// assignments to the variables it captured.
type Function struct {
	declaration *functionStmt
	closure     *Environment
}

func (f *Function) Arity() int {
	return len(f.declaration.params)
}

// Call binds the arguments to the parameters in a fresh environment
// enclosed by the closure — not by the caller's environment — and runs
// the body. A body that completes without a return statement yields
// nil.
func (f *Function) Call(ctx *ExecutionContext, args []*Value) (*Value, error) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.params {
		env.Define(param.Lexeme, args[i])
	}

	child := &ExecutionContext{
		interpreter: ctx.interpreter,
		Env:         env,
	}
	for _, stmt := range f.declaration.body {
		ret, err := stmt.Execute(child)
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
	return AsValue(nil), nil
}

func (f *Function) String() string {
	return "<fn " + f.declaration.name.Lexeme + ">"
}

// NativeFunction is a function implemented by the host. Natives are
// total: they cannot raise runtime errors.
type NativeFunction struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []*Value) *Value
}

func (f *NativeFunction) Arity() int {
	return f.arity
}

func (f *NativeFunction) Call(ctx *ExecutionContext, args []*Value) (*Value, error) {
	return f.fn(ctx.interpreter, args), nil
}

func (f *NativeFunction) String() string {
	return "<native fn>"
}

// Interpreter executes parsed programs. It owns the globals environment
// and is meant to be reused across runs — a REPL feeds every line to
// the same interpreter so definitions persist between prompts.
type Interpreter struct {
	globals  *Environment
	started  time.Time
	out      io.Writer
	reporter *Reporter
}

// NewInterpreter creates an interpreter with every registered builtin
// defined in its globals. Print output goes to out (standard output
// when nil); runtime errors are reported through reporter (a fresh
// stderr reporter when nil).
func NewInterpreter(out io.Writer, reporter *Reporter) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	if reporter == nil {
		reporter = NewReporter(nil)
	}

	in := &Interpreter{
		globals:  NewEnvironment(),
		started:  time.Now(),
		out:      out,
		reporter: reporter,
	}
	for name, fn := range builtins {
		in.globals.Define(name, AsValue(fn))
	}
	return in
}

// Globals returns the interpreter's global environment.
func (in *Interpreter) Globals() *Environment {
	return in.globals
}

// Interpret executes a program's statements in source order. The first
// runtime error is reported once and stops the run; the error is also
// returned for callers that inspect it directly.
func (in *Interpreter) Interpret(statements []INode) error {
	ctx := newExecutionContext(in)
	for _, stmt := range statements {
		ret, err := stmt.Execute(ctx)
		if err != nil {
			if rerr, ok := err.(*RuntimeError); ok {
				in.reporter.RuntimeError(rerr)
			} else {
				in.reporter.RuntimeError(&RuntimeError{
					Token:     &Token{Typ: TokenEOF},
					OrigError: err,
				})
			}
			return err
		}
		if ret != nil {
			// The parser only accepts return statements inside function
			// bodies; a return unwinding to the top level is a bug here,
			// not in the user's program.
			panic("return escaped to top-level execution")
		}
	}
	return nil
}

func init() {
	RegisterBuiltin("clock", 0, func(in *Interpreter, args []*Value) *Value {
		return AsValue(time.Since(in.started).Seconds())
	})
}
