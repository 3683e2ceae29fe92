package goliteral_test

import (
	"testing"

	goliteral "github.com/njchilds90/goliteral"
)

// ============================================================
// Rendering tests
// ============================================================

func TestString_MinimalParentheses(t *testing.T) {
	x := goliteral.NumberOf(1, goliteral.Multiplier{"x": 1})
	y := goliteral.NumberOf(1, goliteral.Multiplier{"y": 1})
	sum := goliteral.OperationOf(x, goliteral.Sum, y)
	tests := []struct {
		e    goliteral.Expr
		want string
	}{
		{goliteral.OperationOf(sum, goliteral.Product, goliteral.N(2)), "(x + y) * 2"},
		{goliteral.OperationOf(goliteral.N(2), goliteral.Product, sum), "2 * (x + y)"},
		{goliteral.OperationOf(sum, goliteral.Sum, goliteral.N(1)), "x + y + 1"},
		{goliteral.OperationOf(goliteral.N(1), goliteral.Difference, sum), "1 - (x + y)"},
		{goliteral.OperationOf(x, goliteral.Power, goliteral.N(-2)), "x ^ (-2)"},
		{goliteral.OperationOf(goliteral.NumberOf(2, goliteral.Multiplier{"x": 1}), goliteral.Power, y), "(2x) ^ y"},
		{goliteral.OperationOf(y, goliteral.Quotient, goliteral.NumberOf(2, goliteral.Multiplier{"x": 1})), "y / (2x)"},
		{goliteral.OperationOf(x, goliteral.Sum, goliteral.NumberOf(-3, goliteral.Multiplier{"y": 1})), "x - 3y"},
		{goliteral.OperationOf(x, goliteral.Difference, goliteral.N(-3)), "x + 3"},
	}
	for _, tc := range tests {
		if got := goliteral.String(tc.e); got != tc.want {
			t.Errorf("want %q, got %q", tc.want, got)
		}
	}
}

func TestString_FractionSides(t *testing.T) {
	x := goliteral.NumberOf(1, goliteral.Multiplier{"x": 1})
	f := goliteral.FractionOf(goliteral.OperationOf(x, goliteral.Sum, goliteral.N(1)), goliteral.N(2))
	if f.String() != "(x + 1)|2" {
		t.Errorf("want (x + 1)|2, got %s", f.String())
	}
}

func TestString_NegativeNumbers(t *testing.T) {
	x := goliteral.NumberOf(1, goliteral.Multiplier{"x": 1})
	y := goliteral.NumberOf(1, goliteral.Multiplier{"y": 1})
	negX2 := goliteral.NumberOf(-1, goliteral.Multiplier{"x": 2})
	tests := []struct {
		e    goliteral.Expr
		want string
	}{
		{goliteral.OperationOf(goliteral.N(3), goliteral.Product, goliteral.OperationOf(goliteral.N(-2), goliteral.Power, y)), "3 * (-2) ^ y"},
		{goliteral.OperationOf(goliteral.NumberOf(-1, goliteral.Multiplier{"x": 1}), goliteral.Power, y), "(-x) ^ y"},
		{goliteral.OperationOf(x, goliteral.Product, goliteral.N(-2)), "x * (-2)"},
		{goliteral.OperationOf(goliteral.N(-2), goliteral.Product, x), "-2 * x"},
		{goliteral.OperationOf(x, goliteral.Sum, goliteral.FractionOf(goliteral.NumberOf(-1, goliteral.Multiplier{"x": 5}), goliteral.N(3))), "x - x^5|3"},
		{goliteral.OperationOf(y, goliteral.Sum, goliteral.OperationOf(goliteral.FractionOf(goliteral.N(-3), goliteral.N(4)), goliteral.Product, x)), "y - 3|4 * x"},
		{goliteral.FractionOf(x, goliteral.N(-3)), "x|(-3)"},
		{goliteral.FractionOf(goliteral.N(1), goliteral.NumberOf(2, goliteral.Multiplier{"x": 1})), "1|(2x)"},
		{goliteral.FractionOf(goliteral.OperationOf(goliteral.NumberOf(-1, goliteral.Multiplier{"x": 1}), goliteral.Power, y), goliteral.N(2)), "((-x) ^ y)|2"},
		{negX2, "(-x^2)"},
		{goliteral.OperationOf(negX2, goliteral.Sum, goliteral.N(1)), "(-x^2) + 1"},
		{goliteral.OperationOf(goliteral.N(1), goliteral.Sum, negX2), "1 - x^2"},
	}
	for _, tc := range tests {
		got := goliteral.String(tc.e)
		if got != tc.want {
			t.Errorf("want %q, got %q", tc.want, got)
			continue
		}
		if _, err := goliteral.Parse(got); err != nil {
			t.Errorf("%q does not parse: %v", got, err)
		}
	}
}

func TestLaTeX(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x^2|y", `\frac{x^{2}}{y}`},
		{"2 * 3", `2 \cdot 3`},
		{"(x + 1)^y", `\left(x + 1\right)^{y}`},
	}
	for _, tc := range tests {
		if got := goliteral.LaTeX(goliteral.MustParse(tc.in)); got != tc.want {
			t.Errorf("LaTeX(%q): want %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestLaTeX_Reduced(t *testing.T) {
	got := goliteral.LaTeX(goliteral.Reduce(goliteral.MustParse("(a + b)(a - b)")))
	if got != "a^{2} - b^{2}" {
		t.Errorf("want a^{2} - b^{2}, got %s", got)
	}
}
