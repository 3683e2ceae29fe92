// Package goliteral is a small symbolic algebra engine for literal
// expressions such as "2x(4 + 3x) - 48|12".
//
// Pipeline:
//   - Parse: minify, tokenize, validate, structure into a binary tree
//   - Reduce: collect like terms, distribute products, expand powers and
//     bring fractions to lowest terms, until the tree stops changing
//   - String / LaTeX: render with minimal parentheses
//   - Evaluate: fold an unknown-free tree to a float64
//
// Numbers carry a float64 coefficient and a Multiplier (letter exponents).
// Division is lazy and always produces a Fraction.
package goliteral

import (
	"regexp"
	"strconv"
	"strings"
)

// ============================================================
// Core interfaces
// ============================================================

// Expr is a node of an expression tree: *Number, *Fraction or *Operation.
// Trees are never modified after construction; reduction builds new ones.
type Expr interface {
	String() string
	LaTeX() string
	Clone() Expr
	exprType() string
	toJSON() map[string]interface{}
}

// Term is a lexical unit: *Number, *Fraction, Operator or Parenthesis.
type Term interface {
	String() string
	term()
}

// ============================================================
// Number — coefficient times letters
// ============================================================

type Number struct {
	Value      float64
	Multiplier Multiplier
}

// N returns a number without unknowns.
func N(value float64) *Number { return &Number{Value: value, Multiplier: Multiplier{}} }

// NumberOf returns value times the letters of m.
func NumberOf(value float64, m Multiplier) *Number {
	if m == nil {
		m = Multiplier{}
	}
	return &Number{Value: value, Multiplier: m.Prune()}
}

func (n *Number) term()            {}
func (n *Number) exprType() string { return "number" }
func (n *Number) Known() bool      { return n.Multiplier.IsEmpty() }
func (n *Number) Clone() Expr {
	return &Number{Value: n.Value, Multiplier: n.Multiplier.Clone()}
}

func (n *Number) String() string {
	coeff := formatFloat(n.Value)
	letters := n.Multiplier.String()
	switch {
	case coeff == "1":
		coeff = ""
	case coeff == "-1" && letters != "":
		coeff = "-"
	}
	if coeff+letters == "" {
		return "1"
	}
	return coeff + letters
}

func (n *Number) LaTeX() string {
	coeff := formatFloat(n.Value)
	var b strings.Builder
	for _, letter := range n.Multiplier.Letters() {
		b.WriteString(letter)
		if e := n.Multiplier[letter]; e > 1 {
			b.WriteString("^{" + strconv.Itoa(e) + "}")
		}
	}
	letters := b.String()
	switch {
	case letters == "":
		return coeff
	case coeff == "1":
		return letters
	case coeff == "-1":
		return "-" + letters
	}
	return coeff + letters
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := v
	if abs < 0 {
		abs = -abs
	}
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ============================================================
// Fraction — lazy quotient
// ============================================================

type Fraction struct {
	Numerator   Expr
	Denominator Expr
}

// FractionOf builds numerator|denominator without simplifying it.
func FractionOf(numerator, denominator Expr) *Fraction {
	return &Fraction{Numerator: numerator, Denominator: denominator}
}

func (f *Fraction) term()            {}
func (f *Fraction) exprType() string { return "fraction" }
func (f *Fraction) Clone() Expr {
	return &Fraction{Numerator: f.Numerator.Clone(), Denominator: f.Denominator.Clone()}
}

// String writes the fraction inline.
func (f *Fraction) String() string { return f.render(true) }

func (f *Fraction) LaTeX() string {
	return "\\frac{" + f.Numerator.LaTeX() + "}{" + f.Denominator.LaTeX() + "}"
}

// ============================================================
// Parenthesis
// ============================================================

type ParenKind int

const (
	Round ParenKind = iota
	Square
)

type Parenthesis struct {
	Kind    ParenKind
	Opening bool
}

func (p Parenthesis) term() {}

func (p Parenthesis) String() string {
	switch {
	case p.Kind == Round && p.Opening:
		return "("
	case p.Kind == Round:
		return ")"
	case p.Opening:
		return "["
	}
	return "]"
}

func parenthesisFromText(text string) (Parenthesis, bool) {
	switch text {
	case "(":
		return Parenthesis{Kind: Round, Opening: true}, true
	case ")":
		return Parenthesis{Kind: Round}, true
	case "[":
		return Parenthesis{Kind: Square, Opening: true}, true
	case "]":
		return Parenthesis{Kind: Square}, true
	}
	return Parenthesis{}, false
}

func isOpeningText(text string) bool {
	p, ok := parenthesisFromText(text)
	return ok && p.Opening
}

func isClosingText(text string) bool {
	p, ok := parenthesisFromText(text)
	return ok && !p.Opening
}

func isParenthesisText(text string) bool {
	_, ok := parenthesisFromText(text)
	return ok
}

// ============================================================
// Operation — binary node
// ============================================================

// Operation joins two expressions. Impossible marks a node whose operands
// could not be combined when it was built; it only tells Reduce that
// another pass over this node alone is pointless.
type Operation struct {
	Left       Expr
	Operator   Operator
	Right      Expr
	Impossible bool
}

// OperationOf builds left op right.
func OperationOf(left Expr, op Operator, right Expr) *Operation {
	return &Operation{Left: left, Operator: op, Right: right}
}

func (o *Operation) exprType() string { return "operation" }
func (o *Operation) Clone() Expr {
	return &Operation{Left: o.Left.Clone(), Operator: o.Operator, Right: o.Right.Clone(), Impossible: o.Impossible}
}

// ============================================================
// Term parsing
// ============================================================

var (
	numberPattern = regexp.MustCompile(`^[+-]?[0-9]*(\.?[0-9]+)?([a-z](\^[0-9]+)?)*$`)
	digitPattern  = regexp.MustCompile(`^-?([0-9]+\.?[0-9]*|\.[0-9]+)$`)
	letterPattern = regexp.MustCompile(`^[+-]?[a-z]$`)
)

// isNumberText rejects a bare sign: "--3" is two operators, not a term.
func isNumberText(text string) bool {
	return strings.TrimLeft(text, "+-") != "" && numberPattern.MatchString(text)
}

func isDigitText(text string) bool { return digitPattern.MatchString(text) }
func isLetterText(text string) bool { return letterPattern.MatchString(text) }

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' }

// ParseTerm turns one token into a Term.
func ParseTerm(text string) (Term, error) {
	if p, ok := parenthesisFromText(text); ok {
		return p, nil
	}
	if len(text) == 1 {
		if op, ok := OperatorFromSymbol(text[0]); ok {
			return op, nil
		}
	}
	if isNumberText(text) {
		return parseNumber(text)
	}
	if strings.Contains(text, "|") {
		return parseFraction(text)
	}
	return nil, parseErr(UnrecognizedTerm, text, "the text could not be recognized as a term")
}

func parseNumber(text string) (*Number, error) {
	i := 0
	for i < len(text) && !isLetter(text[i]) {
		i++
	}
	var value float64
	switch numeric := text[:i]; numeric {
	case "", "+":
		value = 1
	case "-":
		value = -1
	default:
		v, err := strconv.ParseFloat(numeric, 64)
		if err != nil {
			return nil, parseErr(UnrecognizedTerm, text, "bad coefficient %q", numeric)
		}
		value = v
	}

	m := Multiplier{}
	for i < len(text) {
		letter := text[i : i+1]
		i++
		exp := 1
		if i < len(text) && text[i] == '^' {
			j := i + 1
			for j < len(text) && text[j] >= '0' && text[j] <= '9' {
				j++
			}
			e, err := strconv.Atoi(text[i+1 : j])
			if err != nil {
				return nil, parseErr(UnrecognizedTerm, text, "bad exponent for %s", letter)
			}
			exp = e
			i = j
		}
		m[letter] += exp
	}
	return NumberOf(value, m), nil
}

func parseFraction(text string) (*Fraction, error) {
	bar := strings.IndexByte(text, '|')
	if bar < 0 {
		return nil, parseErr(MalformedFraction, text, "missing '|', valid example: '12|5'")
	}
	left, right := text[:bar], text[bar+1:]
	if strings.IndexByte(right, '|') >= 0 {
		return nil, parseErr(MalformedFraction, text, "more than one '|'")
	}
	if !isNumberText(left) || !isNumberText(right) {
		return nil, parseErr(MalformedFraction, text, "numerator and denominator must be numbers")
	}
	num, err := parseNumber(left)
	if err != nil {
		return nil, err
	}
	den, err := parseNumber(right)
	if err != nil {
		return nil, err
	}
	return FractionOf(num, den), nil
}
