package goliteral

import "math"

// simplifyFraction brings a fraction of numbers to lowest terms. Letters
// cancel first (what is left of each letter stays on the side that had
// more of it), then the coefficients are divided by their common factors.
// A side that is still an Operation cannot be simplified.
func simplifyFraction(f *Fraction) Expr {
	num, den := f.Numerator, f.Denominator
	if num.String() == den.String() {
		return N(1)
	}
	if IsOperation(num) || IsOperation(den) {
		return FractionOf(num, den)
	}

	if nf, ok := num.(*Fraction); ok {
		num = simplifyFraction(nf)
	}
	if df, ok := den.(*Fraction); ok {
		den = simplifyFraction(df)
	}
	if IsFraction(num) || IsFraction(den) {
		// (a|b)|(c|d) = ad|bc
		if IsOperation(num) || IsOperation(den) {
			return FractionOf(num, den)
		}
		nf, df := asFraction(num), asFraction(den)
		return simplifyFraction(FractionOf(
			product(nf.Numerator, df.Denominator),
			product(nf.Denominator, df.Numerator),
		))
	}

	n, nok := num.(*Number)
	d, dok := den.(*Number)
	if !nok || !dok {
		return FractionOf(num, den)
	}

	numLetters, denLetters := n.Multiplier.Subtract(d.Multiplier).Split()
	if denLetters.IsEmpty() && isDivisible(n.Value, d.Value) {
		return NumberOf(n.Value/d.Value, numLetters)
	}

	nv, dv := reduceCoefficients(n.Value, d.Value)
	if dv < 0 {
		nv, dv = -nv, -dv
	}
	return FractionOf(NumberOf(nv, numLetters), NumberOf(dv, denLetters))
}

func isDivisible(a, b float64) bool {
	return math.Mod(a, b) == 0
}

// reduceCoefficients divides a and b by every common factor found by
// trial division, restarting from 2 after each hit.
func reduceCoefficients(a, b float64) (float64, float64) {
	for d := 2.0; d <= math.Abs(a) && d <= math.Abs(b) && d <= maxGCDDivisor; d++ {
		if isDivisible(a, d) && isDivisible(b, d) {
			a /= d
			b /= d
			d = 1
		}
	}
	return a, b
}
