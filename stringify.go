package goliteral

// String renders e as text that Parse reads back into an equal expression.
func String(e Expr) string {
	if n, ok := e.(*Number); ok && signMisreads(n) {
		return "(" + n.String() + ")"
	}
	return e.String()
}

// LaTeX renders e for display.
func LaTeX(e Expr) string { return e.LaTeX() }

// String writes "left op right", parenthesizing a child only when its
// operator binds less tightly than o, or binds equally on the right of a
// non-associative operator. A negative right term of a sum is written as
// a subtraction.
func (o *Operation) String() string { return o.render(true) }

// render writes o; first is set when o's text opens the whole output or a
// parenthesized group, the only places a leading '-' reads as a sign.
func (o *Operation) render(first bool) string {
	op, right := o.Operator, o.Right
	if flipped, ok := displaySign(o); ok {
		op, right = flipped.Operator, flipped.Right
	}
	return o.side(o.Left, false, op, first) + " " + op.String() + " " + o.side(right, true, op, false)
}

func (o *Operation) side(child Expr, right bool, op Operator, first bool) string {
	if needsParentheses(child, right, op, first) {
		return "(" + render(child, true) + ")"
	}
	return render(child, first)
}

// render writes the fraction inline; an Operation side always gets
// parentheses to show where the fraction starts and ends.
func (f *Fraction) render(first bool) string {
	side := func(child Expr, right, first bool) string {
		if IsOperation(child) || needsParentheses(child, right, FractionBar, first) {
			return "(" + render(child, true) + ")"
		}
		return render(child, first)
	}
	return side(f.Numerator, false, first) + "|" + side(f.Denominator, true, false)
}

func render(e Expr, first bool) string {
	switch v := e.(type) {
	case *Operation:
		return v.render(first)
	case *Fraction:
		return v.render(first)
	}
	return e.String()
}

func needsParentheses(child Expr, right bool, parent Operator, first bool) bool {
	var op Operator
	switch c := child.(type) {
	case *Number:
		// "x ^ (-2)", "3 * (-2) ^ y" and "(-x) ^ y": a sign only fuses at
		// the start of a group and never under a power
		if c.Value < 0 && (right || !first || parent == Power || signMisreads(c)) {
			return true
		}
		shape, ok := numberShape(c)
		if !ok {
			return false
		}
		op = shape
	case *Fraction:
		op = FractionBar
	case *Operation:
		op = c.Operator
	default:
		return false
	}
	p, cp := parent.Priority(), op.Priority()
	return cp < p || (right && cp == p && !(parent.associative() && op == parent))
}

// signMisreads reports whether n's text starts with "-x^k": the lexer
// fuses "-x" into one term, so the exponent would apply to -x.
func signMisreads(n *Number) bool {
	if n.Value != -1 {
		return false
	}
	for _, letter := range n.Multiplier.Letters() {
		if e := n.Multiplier[letter]; e != 0 {
			return e > 1
		}
	}
	return false
}

// numberShape returns the operator a Number's text turns into once it is
// read back: "2x" and "xy" are products, "x^2" is a power. A plain numeral
// or a single letter is atomic.
func numberShape(n *Number) (Operator, bool) {
	letters := n.Multiplier.Letters()
	switch {
	case len(letters) == 0:
		return 0, false
	case n.Value != 1 && n.Value != -1, len(letters) > 1:
		return Product, true
	case n.Multiplier[letters[0]] > 1:
		return Power, true
	}
	return 0, false
}

// displaySign rewrites "a + -2x" as "a - 2x" and "a - -2x" as "a + 2x".
func displaySign(o *Operation) (*Operation, bool) {
	if o.Operator != Sum && o.Operator != Difference {
		return nil, false
	}
	negated, ok := negatedForDisplay(o.Right)
	if !ok {
		return nil, false
	}
	op := Difference
	if o.Operator == Difference {
		op = Sum
	}
	return &Operation{Left: o.Left, Operator: op, Right: negated, Impossible: o.Impossible}, true
}

// negatedForDisplay flips the sign carried by the leftmost factor of e:
// a negative Number, a fraction with such a numerator, or a product or
// quotient whose left side is one of those.
func negatedForDisplay(e Expr) (Expr, bool) {
	switch v := e.(type) {
	case *Number:
		if v.Value < 0 {
			return NumberOf(-v.Value, v.Multiplier), true
		}
	case *Fraction:
		if num, ok := negatedForDisplay(v.Numerator); ok {
			return FractionOf(num, v.Denominator), true
		}
	case *Operation:
		if v.Operator.Priority() != Product.Priority() {
			return nil, false
		}
		if n, ok := v.Left.(*Number); ok && v.Operator == Product && n.Value == -1 && n.Known() {
			return v.Right, true
		}
		left, ok := negatedForDisplay(v.Left)
		if !ok {
			return nil, false
		}
		return &Operation{Left: left, Operator: v.Operator, Right: v.Right, Impossible: v.Impossible}, true
	}
	return nil, false
}

func (o *Operation) LaTeX() string {
	op, right := o.Operator, o.Right
	if flipped, ok := displaySign(o); ok {
		op, right = flipped.Operator, flipped.Right
	}
	wrap := func(child Expr, isRight bool) string {
		if needsParentheses(child, isRight, op, !isRight) {
			return "\\left(" + child.LaTeX() + "\\right)"
		}
		return child.LaTeX()
	}
	switch op {
	case Quotient, FractionBar:
		return "\\frac{" + o.Left.LaTeX() + "}{" + right.LaTeX() + "}"
	case Power:
		base := o.Left.LaTeX()
		if needsParentheses(o.Left, false, Power, true) {
			base = "\\left(" + base + "\\right)"
		}
		return base + "^{" + right.LaTeX() + "}"
	case Product:
		return wrap(o.Left, false) + " \\cdot " + wrap(right, true)
	}
	return wrap(o.Left, false) + " " + op.String() + " " + wrap(right, true)
}
