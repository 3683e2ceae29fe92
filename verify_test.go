package goliteral_test

import (
	"errors"
	"testing"

	goliteral "github.com/njchilds90/goliteral"
)

// ============================================================
// Validator tests
// ============================================================

func TestCheckParentheses(t *testing.T) {
	tests := []struct {
		tokens []string
		want   bool
	}{
		{[]string{"(", "48", "*", "x", ")"}, true},
		{[]string{"[", "(", "x", ")", "]"}, true},
		{[]string{"(", "48", "*", "x"}, false},
		{[]string{"x", ")", "("}, false},
		{[]string{")", "x", "("}, false},
	}
	for _, tc := range tests {
		if got := goliteral.CheckParentheses(tc.tokens); got != tc.want {
			t.Errorf("CheckParentheses(%v): want %v, got %v", tc.tokens, tc.want, got)
		}
	}
}

func TestCheckOrder(t *testing.T) {
	tests := []struct {
		tokens []string
		want   bool
	}{
		{[]string{"+", "3"}, false},
		{[]string{"3", "*"}, false},
		{[]string{"3", "+", "*", "2"}, false},
		{[]string{"3", "x", "5"}, false},
		{[]string{}, false},
		{[]string{"3", "*", "x", "+", "5"}, true},
		{[]string{"-3", "*", "x"}, true},
		{[]string{"(", "x", ")", "^", "2"}, true},
	}
	for _, tc := range tests {
		if got := goliteral.CheckOrder(tc.tokens); got != tc.want {
			t.Errorf("CheckOrder(%v): want %v, got %v", tc.tokens, tc.want, got)
		}
	}
}

func TestParse_ValidatorErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind goliteral.ErrorKind
	}{
		{"3 *", goliteral.OrderError},
		{"3 + * 2", goliteral.OrderError},
		{"3x5", goliteral.OrderError},
		{"()", goliteral.OrderError},
		{"(48x", goliteral.ParenthesesMismatch},
		{"x + 1)", goliteral.ParenthesesMismatch},
		{"3 $ 4", goliteral.UnsupportedCharacter},
		{"--3", goliteral.OrderError},
		{"-+3", goliteral.OrderError},
		{"+-x", goliteral.OrderError},
	}
	for _, tc := range tests {
		_, err := goliteral.Parse(tc.in)
		if err == nil {
			t.Errorf("Parse(%q): want %s, got nil", tc.in, tc.kind)
			continue
		}
		var pe *goliteral.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q): want *ParseError, got %T", tc.in, err)
			continue
		}
		if pe.Kind != tc.kind {
			t.Errorf("Parse(%q): want %s, got %s", tc.in, tc.kind, pe.Kind)
		}
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := goliteral.Parse("(48x")
	if err == nil {
		t.Fatal("want error")
	}
	want := `goliteral: parentheses mismatch in "(48x": unbalanced parentheses or brackets`
	if err.Error() != want {
		t.Errorf("want %s, got %s", want, err.Error())
	}
}
