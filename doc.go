// Package golox implements a tree-walking interpreter for a small
// dynamically-typed scripting language: expressions, control flow,
// variables with lexical scoping, and first-class functions with
// closures.
//
// A source program runs through a fixed pipeline: the scanner turns the
// text into tokens, the recursive-descent parser turns the tokens into
// statement nodes, and the nodes execute themselves against an
// environment chain carrying the variable bindings.
//
// A tiny example with a source string:
//
//	if err := golox.RunString(`
//	    fun greet(name) {
//	        print "Hello, " + name + "!";
//	    }
//	    greet("world");
//	`); err != nil {
//	    panic(err)
//	}
//
// For finer control — separate compilation from execution, custom
// output streams, a REPL — use Parse, Interpreter and Runner directly:
//
//	program := golox.Must(golox.Parse(`print clock();`))
//	in := golox.NewInterpreter(nil, nil)
//	err := in.Interpret(program)
//
// Native functions can be added to the language with RegisterBuiltin
// before creating an interpreter.
package golox
