package goliteral

import "math"

// Operator is one of the six binary operators of the language.
type Operator int

const (
	Sum Operator = iota
	Difference
	Product
	Quotient
	Power
	FractionBar
)

type operatorInfo struct {
	name     string
	symbol   byte
	priority int
	apply    func(a, b float64) float64
}

// operatorTable is shared by the lexer (symbols, priorities), the parser
// and Evaluate. Reduction rules live in combine.
var operatorTable = [...]operatorInfo{
	Sum:         {name: "sum", symbol: '+', priority: 0, apply: func(a, b float64) float64 { return a + b }},
	Difference:  {name: "difference", symbol: '-', priority: 0, apply: func(a, b float64) float64 { return a - b }},
	Product:     {name: "product", symbol: '*', priority: 1, apply: func(a, b float64) float64 { return a * b }},
	Quotient:    {name: "quotient", symbol: '/', priority: 1, apply: func(a, b float64) float64 { return a / b }},
	Power:       {name: "power", symbol: '^', priority: 2, apply: math.Pow},
	FractionBar: {name: "fraction", symbol: '|', priority: 1, apply: func(a, b float64) float64 { return a / b }},
}

// OperatorFromSymbol looks an operator up by its one-character symbol.
func OperatorFromSymbol(symbol byte) (Operator, bool) {
	for i, info := range operatorTable {
		if info.symbol == symbol {
			return Operator(i), true
		}
	}
	return 0, false
}

func (o Operator) Name() string   { return operatorTable[o].name }
func (o Operator) Symbol() byte   { return operatorTable[o].symbol }
func (o Operator) Priority() int  { return operatorTable[o].priority }
func (o Operator) String() string { return string(operatorTable[o].symbol) }
func (o Operator) term()          {}

// associative reports whether a right operand of equal priority can be
// rendered without parentheses.
func (o Operator) associative() bool { return o == Sum || o == Product }

// isOperatorText reports whether text is a single operator symbol,
// optionally restricted to one priority (pass -1 for any).
func isOperatorText(text string, priority int) bool {
	if len(text) != 1 {
		return false
	}
	op, ok := OperatorFromSymbol(text[0])
	if !ok {
		return false
	}
	return priority < 0 || op.Priority() == priority
}
