package golox

import (
	"bytes"
	"errors"
	"strings"
)

// Version string
const Version = "1.0"

// Parse compiles source into an executable statement list. All scan and
// parse diagnostics are folded into the returned error; a nil error
// guarantees the statements are safe to hand to an interpreter.
func Parse(source string) ([]INode, error) {
	var diagnostics bytes.Buffer
	reporter := NewReporter(&diagnostics)

	tokens := scan(source, reporter)
	statements := newParser(tokens, reporter).Parse()
	if reporter.HadError() {
		return nil, errors.New(strings.TrimRight(diagnostics.String(), "\n"))
	}
	return statements, nil
}

// Must is a helper which panics if a program couldn't successfully be
// parsed. This is how you would use it:
//
//	var program = golox.Must(golox.Parse("print 1 + 2;"))
func Must(statements []INode, err error) []INode {
	if err != nil {
		panic(err)
	}
	return statements
}

// RunString parses and executes source on a fresh interpreter printing
// to standard output. The first runtime error is returned (and has
// already been reported to standard error).
func RunString(source string) error {
	statements, err := Parse(source)
	if err != nil {
		return err
	}
	return NewInterpreter(nil, nil).Interpret(statements)
}
