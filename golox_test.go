package golox

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kylelemons/godebug/diff"
)

// TestScriptCorpus runs every script under testdata/ and compares its
// output against the sibling .out file.
func TestScriptCorpus(t *testing.T) {
	matches, err := doublestar.Glob(os.DirFS("testdata"), "**/*.lox")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Fatal("no scripts found under testdata/")
	}
	sort.Strings(matches)

	for _, match := range matches {
		t.Run(match, func(t *testing.T) {
			source, err := os.ReadFile(filepath.Join("testdata", match))
			if err != nil {
				t.Fatal(err)
			}
			want, err := os.ReadFile(filepath.Join("testdata", fmt.Sprintf("%s.out", match)))
			if err != nil {
				t.Fatal(err)
			}

			var stdout, stderr bytes.Buffer
			runner := NewRunner(&stdout, &stderr)
			runner.Run(string(source))

			if runner.Reporter().HadError() || runner.Reporter().HadRuntimeError() {
				t.Fatalf("script failed:\n%s", stderr.String())
			}
			if stdout.String() != string(want) {
				t.Errorf("output mismatch (-want +got):\n%s",
					diff.Diff(string(want), stdout.String()))
			}
		})
	}
}

func TestParseReportsAllErrors(t *testing.T) {
	_, err := Parse("var = 1;\n+;\n")
	if err == nil {
		t.Fatal("expected parse errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Expect variable name.") || !strings.Contains(msg, "Expect expression.") {
		t.Errorf("expected both diagnostics in %q", msg)
	}
}

func TestParseGoodProgram(t *testing.T) {
	statements, err := Parse("print 1 + 2;")
	if err != nil {
		t.Fatal(err)
	}
	if len(statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(statements))
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on a parse error")
		}
	}()
	Must(Parse("var = 1;"))
}

func TestRunStringReturnsRuntimeError(t *testing.T) {
	if err := RunString("x = 1;"); err == nil {
		t.Error("expected a runtime error")
	}
	if err := RunString("var x = 1; x = 2;"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
