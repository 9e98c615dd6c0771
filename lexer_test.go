package golox

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tokenSummary is a comparable projection of a Token for cmp.Diff:
// the literal is folded to its display form.
type tokenSummary struct {
	Typ     TokenType
	Lexeme  string
	Literal string
	Line    int
}

func summarize(tokens []*Token) []tokenSummary {
	summaries := make([]tokenSummary, len(tokens))
	for i, t := range tokens {
		literal := "nil"
		if t.Literal != nil {
			literal = t.Literal.String()
		}
		summaries[i] = tokenSummary{
			Typ:     t.Typ,
			Lexeme:  t.Lexeme,
			Literal: literal,
			Line:    t.Line,
		}
	}
	return summaries
}

func scanAll(t *testing.T, input string) ([]*Token, *Reporter) {
	t.Helper()
	reporter := NewReporter(&bytes.Buffer{})
	return scan(input, reporter), reporter
}

func TestScanPunctuationAndOperators(t *testing.T) {
	tokens, reporter := scanAll(t, "(){},.-+;*/! != = == < <= > >=")
	if reporter.HadError() {
		t.Fatal("unexpected scan error")
	}

	want := []tokenSummary{
		{TokenLeftParen, "(", "nil", 1},
		{TokenRightParen, ")", "nil", 1},
		{TokenLeftBrace, "{", "nil", 1},
		{TokenRightBrace, "}", "nil", 1},
		{TokenComma, ",", "nil", 1},
		{TokenDot, ".", "nil", 1},
		{TokenMinus, "-", "nil", 1},
		{TokenPlus, "+", "nil", 1},
		{TokenSemicolon, ";", "nil", 1},
		{TokenStar, "*", "nil", 1},
		{TokenSlash, "/", "nil", 1},
		{TokenBang, "!", "nil", 1},
		{TokenBangEqual, "!=", "nil", 1},
		{TokenEqual, "=", "nil", 1},
		{TokenEqualEqual, "==", "nil", 1},
		{TokenLess, "<", "nil", 1},
		{TokenLessEqual, "<=", "nil", 1},
		{TokenGreater, ">", "nil", 1},
		{TokenGreaterEqual, ">=", "nil", 1},
		{TokenEOF, "", "nil", 1},
	}
	if diff := cmp.Diff(want, summarize(tokens)); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestScanComments(t *testing.T) {
	tokens, reporter := scanAll(t, "// a comment\n42 // trailing\n// last")
	if reporter.HadError() {
		t.Fatal("unexpected scan error")
	}

	want := []tokenSummary{
		{TokenNumber, "42", "42", 2},
		{TokenEOF, "", "nil", 3},
	}
	if diff := cmp.Diff(want, summarize(tokens)); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestScanNumbers(t *testing.T) {
	tokens, reporter := scanAll(t, "123 12.5 0.5 1.")
	if reporter.HadError() {
		t.Fatal("unexpected scan error")
	}

	// "1." is a number followed by a dot: no trailing-dot literals.
	want := []tokenSummary{
		{TokenNumber, "123", "123", 1},
		{TokenNumber, "12.5", "12.5", 1},
		{TokenNumber, "0.5", "0.5", 1},
		{TokenNumber, "1", "1", 1},
		{TokenDot, ".", "nil", 1},
		{TokenEOF, "", "nil", 1},
	}
	if diff := cmp.Diff(want, summarize(tokens)); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestScanStrings(t *testing.T) {
	tokens, reporter := scanAll(t, "\"hi\" \"two\nlines\"")
	if reporter.HadError() {
		t.Fatal("unexpected scan error")
	}

	want := []tokenSummary{
		{TokenString, "\"hi\"", "hi", 1},
		{TokenString, "\"two\nlines\"", "two\nlines", 1},
		{TokenEOF, "", "nil", 2},
	}
	if diff := cmp.Diff(want, summarize(tokens)); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	tokens, reporter := scanAll(t, "\"open")
	if !reporter.HadError() {
		t.Error("expected an error for an unterminated string")
	}
	want := []tokenSummary{
		{TokenEOF, "", "nil", 1},
	}
	if diff := cmp.Diff(want, summarize(tokens)); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	tokens, reporter := scanAll(t, "var _x x1 orchid or fun funny")
	if reporter.HadError() {
		t.Fatal("unexpected scan error")
	}

	want := []tokenSummary{
		{TokenVar, "var", "nil", 1},
		{TokenIdentifier, "_x", "nil", 1},
		{TokenIdentifier, "x1", "nil", 1},
		{TokenIdentifier, "orchid", "nil", 1},
		{TokenOr, "or", "nil", 1},
		{TokenFun, "fun", "nil", 1},
		{TokenIdentifier, "funny", "nil", 1},
		{TokenEOF, "", "nil", 1},
	}
	if diff := cmp.Diff(want, summarize(tokens)); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	var diagnostics bytes.Buffer
	reporter := NewReporter(&diagnostics)
	tokens := scan("@#1", reporter)

	if !reporter.HadError() {
		t.Error("expected errors for unexpected characters")
	}
	// Scanning continues past bad characters.
	want := []tokenSummary{
		{TokenNumber, "1", "1", 1},
		{TokenEOF, "", "nil", 1},
	}
	if diff := cmp.Diff(want, summarize(tokens)); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
	if got := diagnostics.String(); got != "[line 1] Error: Unexpected character.\n[line 1] Error: Unexpected character.\n" {
		t.Errorf("unexpected diagnostics: %q", got)
	}
}

func TestScanEOFInvariant(t *testing.T) {
	inputs := []string{
		"",
		"   \t\r\n",
		"print 1;",
		"\"unterminated",
		"@@@",
		"fun f(a, b) { return a + b; }",
	}
	for _, input := range inputs {
		tokens, _ := scanAll(t, input)
		if len(tokens) == 0 {
			t.Fatalf("no tokens for %q", input)
		}
		for i, tok := range tokens {
			isLast := i == len(tokens)-1
			if isLast != (tok.Typ == TokenEOF) {
				t.Errorf("input %q: EOF invariant violated at token %d: %s", input, i, tok)
			}
		}
	}
}

func TestScanLineCounting(t *testing.T) {
	tokens, _ := scanAll(t, "1\n2\n\n3")
	want := []tokenSummary{
		{TokenNumber, "1", "1", 1},
		{TokenNumber, "2", "2", 2},
		{TokenNumber, "3", "3", 4},
		{TokenEOF, "", "nil", 4},
	}
	if diff := cmp.Diff(want, summarize(tokens)); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}
