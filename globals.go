package golox

import "fmt"

// builtins holds every registered native function. Each new interpreter
// defines all of them in its globals environment.
var builtins map[string]*NativeFunction

func init() {
	builtins = make(map[string]*NativeFunction)
}

// RegisterBuiltin makes a native function available to every
// interpreter created afterwards. The function must be total for the
// given arity: natives have no way to raise a runtime error.
// Registering a name twice panics.
func RegisterBuiltin(name string, arity int, fn func(in *Interpreter, args []*Value) *Value) {
	if _, exists := builtins[name]; exists {
		panic(fmt.Sprintf("builtin with name '%s' is already registered", name))
	}
	builtins[name] = &NativeFunction{
		name:  name,
		arity: arity,
		fn:    fn,
	}
}
