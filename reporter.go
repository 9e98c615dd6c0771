package golox

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Reporter is the shared diagnostic sink for the whole pipeline. The
// scanner and parser report static errors through it, the interpreter
// reports runtime errors, and the driver inspects the two flags after a
// run to pick an exit code. A REPL resets the flags between lines.
type Reporter struct {
	out      io.Writer
	filename string

	hadError        bool
	hadRuntimeError bool
}

// NewReporter returns a reporter writing diagnostics to out. A nil out
// defaults to standard error.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stderr
	}
	return &Reporter{out: out}
}

// SetFilename records the name of the source being processed; it is
// attached to subsequent errors so they can resolve their raw line.
func (r *Reporter) SetFilename(name string) {
	r.filename = name
}

// Error reports a static error with a bare line number. This is the
// scanner's path: at scan time there is no token to point at yet.
func (r *Reporter) Error(line int, msg string) {
	r.Report(&Error{
		Filename:  r.filename,
		Line:      line,
		Sender:    "scanner",
		OrigError: errors.New(msg),
	})
}

// ErrorAtToken reports a static error pointing at a token. This is the
// parser's path.
func (r *Reporter) ErrorAtToken(token *Token, msg string) {
	r.Report(&Error{
		Filename:  r.filename,
		Line:      token.Line,
		Token:     token,
		Sender:    "parser",
		OrigError: errors.New(msg),
	})
}

// Report writes an already-built static error and raises the error flag.
func (r *Reporter) Report(err *Error) {
	fmt.Fprintln(r.out, err.Error())
	r.hadError = true
}

// RuntimeError writes a runtime error and raises the runtime-error flag.
func (r *Reporter) RuntimeError(err *RuntimeError) {
	fmt.Fprintln(r.out, err.Error())
	r.hadRuntimeError = true
}

// HadError reports whether any static error has been reported since the
// last Reset.
func (r *Reporter) HadError() bool {
	return r.hadError
}

// HadRuntimeError reports whether any runtime error has been reported
// since the last Reset.
func (r *Reporter) HadRuntimeError() bool {
	return r.hadRuntimeError
}

// Reset clears both flags. An error on one REPL line must not abort the
// session or taint the next line's exit status.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}
