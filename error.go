package golox

import (
	"bufio"
	"fmt"
	"os"

	"github.com/juju/errors"
)

// Error addresses a problem found while scanning or parsing a program.
// Scanner errors carry only a line; parser errors additionally carry the
// offending token. Fill in as much information as you have; Sender names
// the pipeline stage that produced the error ("scanner" or "parser").
type Error struct {
	Filename  string
	Line      int
	Token     *Token
	Sender    string
	OrigError error
}

// Error returns the diagnostic in the language's canonical form:
//
//	[line N] Error: message
//	[line N] Error at end: message
//	[line N] Error at 'lexeme': message
func (e *Error) Error() string {
	at := ""
	if e.Token != nil {
		if e.Token.Typ == TokenEOF {
			at = " at end"
		} else {
			at = fmt.Sprintf(" at '%s'", e.Token.Lexeme)
		}
	}
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, at, e.OrigError)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.OrigError
}

// RawLine returns the affected line from the original source file, if
// available.
func (e *Error) RawLine() (line string, available bool, outErr error) {
	if e.Line <= 0 || e.Filename == "" || e.Filename == "<string>" {
		return "", false, nil
	}

	file, err := os.Open(e.Filename)
	if err != nil {
		return "", false, errors.Annotatef(err, "could not open source file %q", e.Filename)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	l := 0
	for scanner.Scan() {
		l++
		if l == e.Line {
			return scanner.Text(), true, nil
		}
	}
	return "", false, nil
}

// RuntimeError addresses a failure raised while executing a program:
// an undefined variable, a type mismatch on an operator, a call of a
// non-callable, an arity mismatch. It carries the token the evaluator
// was looking at so the report can name a source line.
type RuntimeError struct {
	Token     *Token
	OrigError error
}

// Error returns the diagnostic in the language's canonical runtime form:
//
//	message
//	[line N]
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.OrigError, e.Token.Line)
}

// Unwrap returns the underlying error.
func (e *RuntimeError) Unwrap() error {
	return e.OrigError
}
