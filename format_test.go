package goliteral_test

import (
	"strings"
	"testing"

	goliteral "github.com/njchilds90/goliteral"
)

// ============================================================
// Lexer tests
// ============================================================

func TestMinify(t *testing.T) {
	got := goliteral.Minify(" 2 x\t( 4 +\n3x ) ")
	if got != "2x(4+3x)" {
		t.Errorf("want 2x(4+3x), got %s", got)
	}
}

func TestCheckCharacters(t *testing.T) {
	for _, ok := range []string{"2x(4+3x)", "[a-b]^2", "12.5|3", "x/y*z"} {
		if !goliteral.CheckCharacters(ok) {
			t.Errorf("%q should be accepted", ok)
		}
	}
	for _, bad := range []string{"", "3$4", "X+1", "2 x", "1,5"} {
		if goliteral.CheckCharacters(bad) {
			t.Errorf("%q should be rejected", bad)
		}
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2x(4+3x)", "2 x ( 4 + 3 x )"},
		{"-x+3", "-x + 3"},
		{"-3x", "-3 x"},
		{"-(x)", "- ( x )"},
		{"12.5+3", "12.5 + 3"},
		{"x^12", "x ^ 12"},
		{"48|12", "48 | 12"},
		{"(a-b)", "( a - b )"},
	}
	for _, tc := range tests {
		got := strings.Join(goliteral.List(tc.in), " ")
		if got != tc.want {
			t.Errorf("List(%q): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestArrange(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"(", ")", "2"}, "2"},
		{[]string{"(", "(", ")", ")"}, ""},
		{[]string{"-", "3", "+", "x"}, "-3 + x"},
		{[]string{"-", "(", "x", ")"}, "0 - ( x )"},
		{[]string{"3", "x", "y"}, "3 * x * y"},
		{[]string{"2", "(", "x", ")"}, "2 * ( x )"},
		{[]string{"(", "x", ")", "y"}, "( x ) * y"},
		{[]string{"(", "a", ")", "(", "b", ")"}, "( a ) * ( b )"},
		{[]string{"x", "^", "2"}, "x ^ 2"},
		{[]string{".5", "x"}, ".5 * x"},
		{[]string{"-.5", "x"}, "-.5 * x"},
		{[]string{"-", "-", "3"}, "- - 3"},
		{[]string{"-", "+", "3"}, "- + 3"},
	}
	for _, tc := range tests {
		got := strings.Join(goliteral.Arrange(tc.in), " ")
		if got != tc.want {
			t.Errorf("Arrange(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestTokenize_ImplicitMultiplication(t *testing.T) {
	tokens, err := goliteral.Tokenize("2x(4+3x)")
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(tokens, " ")
	if got != "2 * x * ( 4 + 3 * x )" {
		t.Errorf("want 2 * x * ( 4 + 3 * x ), got %s", got)
	}
}

func TestTokenize_ProductOfGroups(t *testing.T) {
	tokens, err := goliteral.Tokenize("(a + b)(a - b)")
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(tokens, " ")
	if got != "( a + b ) * ( a - b )" {
		t.Errorf("want ( a + b ) * ( a - b ), got %s", got)
	}
}

func TestTokenize_LeadingDecimalPoint(t *testing.T) {
	tokens, err := goliteral.Tokenize(".5x + 1")
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(tokens, " ")
	if got != ".5 * x + 1" {
		t.Errorf("want .5 * x + 1, got %s", got)
	}
}

func TestTokenize_UnsupportedCharacter(t *testing.T) {
	for _, in := range []string{"3 # 4", "", "Y"} {
		_, err := goliteral.Tokenize(in)
		if !goliteral.IsKind(err, goliteral.UnsupportedCharacter) {
			t.Errorf("Tokenize(%q): want unsupported character error, got %v", in, err)
		}
	}
}
