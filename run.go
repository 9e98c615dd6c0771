package golox

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/juju/errors"
)

// Process exit codes, following the BSD sysexits convention.
const (
	ExitOK       = 0
	ExitUsage    = 64 // command line usage error
	ExitDataErr  = 65 // the script had a scan or parse error
	ExitNoInput  = 66 // the script file does not exist
	ExitSoftware = 70 // the script raised a runtime error
	ExitOSErr    = 71 // reading the script failed
)

// Runner drives whole runs of the pipeline: it owns one interpreter and
// one reporter and maps their outcome to an exit code. The same runner
// serves a script file or a whole REPL session; globals persist across
// everything it runs.
type Runner struct {
	interpreter *Interpreter
	reporter    *Reporter
	stdout      io.Writer
	stderr      io.Writer
}

// NewRunner creates a runner printing to stdout and reporting
// diagnostics to stderr. Nil writers default to the process streams.
func NewRunner(stdout, stderr io.Writer) *Runner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	reporter := NewReporter(stderr)
	return &Runner{
		interpreter: NewInterpreter(stdout, reporter),
		reporter:    reporter,
		stdout:      stdout,
		stderr:      stderr,
	}
}

// Reporter returns the runner's diagnostic sink.
func (r *Runner) Reporter() *Reporter {
	return r.reporter
}

// Run scans, parses and executes one unit of source. Diagnostics go to
// the reporter; execution is skipped entirely when scanning or parsing
// reported an error.
func (r *Runner) Run(source string) {
	tokens := scan(source, r.reporter)
	statements := newParser(tokens, r.reporter).Parse()
	if r.reporter.HadError() {
		return
	}
	r.interpreter.Interpret(statements)
}

// RunFile executes a script file and returns the process exit code for
// it: ExitNoInput/ExitOSErr when the file cannot be read, ExitDataErr
// after scan or parse errors, ExitSoftware after a runtime error,
// ExitOK otherwise.
func (r *Runner) RunFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(r.stderr, errors.Annotatef(err, "could not read script %q", path))
		if os.IsNotExist(err) {
			return ExitNoInput
		}
		return ExitOSErr
	}

	r.reporter.SetFilename(path)
	r.Run(string(data))

	switch {
	case r.reporter.HadError():
		return ExitDataErr
	case r.reporter.HadRuntimeError():
		return ExitSoftware
	}
	return ExitOK
}

// RunPrompt reads and executes lines interactively until EOF. Each line
// runs against the same interpreter, so definitions persist between
// prompts; the error flags are reset after every line, so a bad line
// never aborts the session.
func (r *Runner) RunPrompt(in io.Reader) int {
	r.reporter.SetFilename("<string>")

	lines := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.stdout, "> ")
		if !lines.Scan() {
			break
		}
		r.Run(lines.Text())
		r.reporter.Reset()
	}
	fmt.Fprintln(r.stdout)

	if err := lines.Err(); err != nil {
		fmt.Fprintln(r.stderr, errors.Annotate(err, "could not read input"))
		return ExitOSErr
	}
	return ExitOK
}
