package goliteral

import (
	"math"
	"sort"
)

const (
	// maxPowerExpansion bounds the number of copies written out for
	// (expr)^n; larger exponents stay symbolic.
	maxPowerExpansion = 50
	// maxGCDDivisor bounds the trial division used on fraction coefficients.
	maxGCDDivisor = 100000
	// maxReductionPasses bounds the fixed-point loop of a single node.
	maxReductionPasses = 256
)

// ============================================================
// Classification
// ============================================================

// IsKnown reports whether e contains no letter anywhere.
func IsKnown(e Expr) bool {
	switch v := e.(type) {
	case *Number:
		return v.Multiplier.IsEmpty()
	case *Fraction:
		return IsKnown(v.Numerator) && IsKnown(v.Denominator)
	case *Operation:
		return IsKnown(v.Left) && IsKnown(v.Right)
	}
	return false
}

func IsOperation(e Expr) bool { _, ok := e.(*Operation); return ok }
func IsNumber(e Expr) bool    { _, ok := e.(*Number); return ok }
func IsFraction(e Expr) bool  { _, ok := e.(*Fraction); return ok }

// IsReducible reports whether another reduction pass over e can change it:
// e is an Operation not marked impossible, or has such a descendant.
func IsReducible(e Expr) bool {
	op, ok := e.(*Operation)
	if !ok {
		return false
	}
	return !op.Impossible || IsReducible(op.Left) || IsReducible(op.Right)
}

// ============================================================
// Reduce
// ============================================================

// Reduce simplifies e as far as the rewriting rules allow. Children are
// reduced first, then the node's operator combines them; this repeats
// until the node is no longer reducible or a pass leaves its text unchanged.
func Reduce(e Expr) Expr {
	switch v := e.(type) {
	case *Number:
		return v
	case *Fraction:
		return reduceFraction(v)
	}

	current := e
	for pass := 0; pass < maxReductionPasses && IsReducible(current); pass++ {
		op := current.(*Operation)
		left := Reduce(op.Left)
		right := Reduce(op.Right)

		before := current.String()
		current = combine(op.Operator, left, right)
		if current.String() == before {
			break
		}
	}

	if f, ok := current.(*Fraction); ok {
		current = reduceFraction(f)
	}
	return current
}

func reduceFraction(f *Fraction) Expr {
	return simplifyFraction(FractionOf(Reduce(f.Numerator), Reduce(f.Denominator)))
}

// combine applies the rule of op to two reduced operands.
func combine(op Operator, left, right Expr) Expr {
	switch op {
	case Sum:
		return sum(left, right)
	case Difference:
		return sum(left, negate(right))
	case Product:
		return product(left, right)
	case Quotient, FractionBar:
		return FractionOf(left, right)
	case Power:
		return power(left, right)
	}
	panic("goliteral: unknown operator " + op.Name())
}

func negate(e Expr) Expr { return product(e, N(-1)) }

// additiveTerms flattens nested sums and differences into one list of
// terms whose sum is e.
func additiveTerms(e Expr) []Expr {
	op, ok := e.(*Operation)
	if !ok {
		return []Expr{e}
	}
	switch op.Operator {
	case Sum:
		return append(additiveTerms(op.Left), additiveTerms(op.Right)...)
	case Difference:
		return append(additiveTerms(op.Left), additiveTerms(negate(op.Right))...)
	}
	return []Expr{e}
}

// ============================================================
// Sum — like-term collection
// ============================================================

type likeTerms struct {
	key        string
	number     bool
	multiplier Multiplier
	term       Expr
	coeff      float64
}

// splitCoefficient reads "c * t" or "t * c" with a known number c.
func splitCoefficient(e Expr) (float64, Expr) {
	op, ok := e.(*Operation)
	if !ok || op.Operator != Product {
		return 1, e
	}
	if n, ok := op.Left.(*Number); ok && n.Known() {
		return n.Value, op.Right
	}
	if n, ok := op.Right.(*Number); ok && n.Known() {
		return n.Value, op.Left
	}
	return 1, e
}

func sum(a, b Expr) Expr {
	terms := append(additiveTerms(a), additiveTerms(b)...)

	var groups []*likeTerms
	index := map[string]*likeTerms{}
	for _, t := range terms {
		var g *likeTerms
		if n, ok := t.(*Number); ok {
			key := n.Multiplier.String()
			if g = index["n"+key]; g == nil {
				g = &likeTerms{key: key, number: true, multiplier: n.Multiplier}
				index["n"+key] = g
				groups = append(groups, g)
			}
			g.coeff += n.Value
			continue
		}
		coeff, core := splitCoefficient(t)
		key := core.String()
		if g = index["e"+key]; g == nil {
			g = &likeTerms{key: key, term: core}
			index["e"+key] = g
			groups = append(groups, g)
		}
		g.coeff += coeff
	}

	// longest keys first: x^2 before x before constants
	sort.SliceStable(groups, func(i, j int) bool { return len(groups[i].key) > len(groups[j].key) })

	out := make([]Expr, 0, len(groups))
	for _, g := range groups {
		switch {
		case g.coeff == 0:
		case g.number:
			out = append(out, NumberOf(g.coeff, g.multiplier))
		case g.coeff == 1:
			out = append(out, g.term)
		default:
			out = append(out, &Operation{Left: N(g.coeff), Operator: Product, Right: g.term, Impossible: true})
		}
	}
	return chain(out, Sum, true)
}

// ============================================================
// Product — distribution
// ============================================================

func product(a, b Expr) Expr {
	var parts []Expr
	for _, x := range additiveTerms(a) {
		for _, y := range additiveTerms(b) {
			parts = append(parts, multiplyTerms(x, y))
		}
	}
	return sum(chain(parts, Sum, false), N(0))
}

func multiplyTerms(x, y Expr) Expr {
	if IsOperation(x) || IsOperation(y) {
		return &Operation{Left: x, Operator: Product, Right: y, Impossible: true}
	}
	xn, xok := x.(*Number)
	yn, yok := y.(*Number)
	if xok && yok {
		return NumberOf(xn.Value*yn.Value, MergeMultipliers(xn.Multiplier, yn.Multiplier))
	}
	fx, fy := asFraction(x), asFraction(y)
	return simplifyFraction(FractionOf(
		product(fx.Numerator, fy.Numerator),
		product(fx.Denominator, fy.Denominator),
	))
}

func asFraction(e Expr) *Fraction {
	if f, ok := e.(*Fraction); ok {
		return f
	}
	return FractionOf(e, N(1))
}

// ============================================================
// Power
// ============================================================

func power(base, exponent Expr) Expr {
	exp, ok := exponent.(*Number)
	if !ok || !exp.Known() {
		return impossiblePower(base, exponent)
	}
	n := exp.Value
	if b, ok := base.(*Number); ok && b.Known() {
		return N(math.Pow(b.Value, n))
	}
	if n == 0 {
		return N(1)
	}
	if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		return impossiblePower(base, exponent)
	}

	b, baseIsNumber := base.(*Number)
	switch {
	case baseIsNumber && n > 0:
		// x^3 folds into the multiplier: {x:3}
		return NumberOf(math.Pow(b.Value, n), b.Multiplier.Scale(int(n)))
	case n > 0 && n <= maxPowerExpansion:
		return repeatProduct(base, int(n))
	case n < 0 && -n <= maxPowerExpansion, n < 0 && baseIsNumber:
		return FractionOf(N(1), power(base, N(-n)))
	}
	return impossiblePower(base, exponent)
}

func impossiblePower(base, exponent Expr) Expr {
	return &Operation{Left: base, Operator: Power, Right: exponent, Impossible: true}
}

// repeatProduct writes base * base * ... with n independent copies.
func repeatProduct(base Expr, n int) Expr {
	copies := make([]Expr, n)
	for i := range copies {
		copies[i] = base.Clone()
	}
	return chain(copies, Product, false)
}
