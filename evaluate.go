package goliteral

import "fmt"

// Evaluate computes the value of an expression without letters.
// It returns ErrUnknownValue when e contains a letter and
// ErrDivisionByZero when a quotient or fraction has a zero denominator.
func Evaluate(e Expr) (float64, error) {
	if !IsKnown(e) {
		return 0, fmt.Errorf("evaluate %q: %w", e.String(), ErrUnknownValue)
	}
	return evaluate(e)
}

func evaluate(e Expr) (float64, error) {
	switch v := e.(type) {
	case *Number:
		return v.Value, nil
	case *Fraction:
		return divide(v.Numerator, v.Denominator)
	case *Operation:
		if v.Operator == Quotient || v.Operator == FractionBar {
			return divide(v.Left, v.Right)
		}
		l, err := evaluate(v.Left)
		if err != nil {
			return 0, err
		}
		r, err := evaluate(v.Right)
		if err != nil {
			return 0, err
		}
		return operatorTable[v.Operator].apply(l, r), nil
	}
	return 0, fmt.Errorf("goliteral: cannot evaluate %T", e)
}

func divide(num, den Expr) (float64, error) {
	n, err := evaluate(num)
	if err != nil {
		return 0, err
	}
	d, err := evaluate(den)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, fmt.Errorf("evaluate %s|%s: %w", wrapOperation(num), wrapOperation(den), ErrDivisionByZero)
	}
	return n / d, nil
}

// Calculate parses, reduces and renders input in one call.
func Calculate(input string) (string, error) {
	e, err := Parse(input)
	if err != nil {
		return "", err
	}
	return String(Reduce(e)), nil
}
