package goliteral

// Parse reads a literal expression and returns its unreduced tree.
func Parse(input string) (Expr, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	if err := validate(input, tokens); err != nil {
		return nil, err
	}
	terms := make([]Term, len(tokens))
	for i, t := range tokens {
		term, err := ParseTerm(t)
		if err != nil {
			return nil, err
		}
		terms[i] = term
	}
	e, err := structure(group(terms), false)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Input = input
		}
		return nil, err
	}
	return e, nil
}

// MustParse is Parse for inputs known to be valid.
func MustParse(input string) Expr {
	e, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return e
}

// element is one entry of a grouped term list: an operator, an operand,
// or a parenthesized sub-list.
type element struct {
	isOp  bool
	op    Operator
	expr  Expr
	group []element
}

func opElement(op Operator) element { return element{isOp: true, op: op} }
func exprElement(e Expr) element    { return element{expr: e} }

// group nests parenthesized runs of terms into sub-lists, depth first.
// The terms are assumed balanced (CheckParentheses).
func group(terms []Term) []element {
	out := make([]element, 0, len(terms))
	var inner []Term
	nesting := 0

	for _, t := range terms {
		p, isParen := t.(Parenthesis)
		switch {
		case isParen && p.Opening:
			if nesting > 0 {
				inner = append(inner, t)
			}
			nesting++
			continue
		case isParen:
			nesting--
			if nesting == 0 {
				out = append(out, element{group: group(inner)})
				inner = nil
			} else {
				inner = append(inner, t)
			}
			continue
		}
		if nesting > 0 {
			inner = append(inner, t)
			continue
		}
		switch v := t.(type) {
		case Operator:
			out = append(out, opElement(v))
		case *Number:
			out = append(out, exprElement(v))
		case *Fraction:
			out = append(out, exprElement(v))
		}
	}

	// "2(x)": a group holding a single element is just that element.
	for i, el := range out {
		if el.group != nil && len(el.group) == 1 {
			out[i] = el.group[0]
		}
	}
	return out
}

// lastOperator returns the index of the rightmost operator of the given
// priority, skipping index 0, or -1.
func lastOperator(list []element, priority int) int {
	for i := len(list) - 1; i > 0; i-- {
		if list[i].isOp && list[i].op.Priority() == priority {
			return i
		}
	}
	return -1
}

// structure builds the binary tree of a grouped list. The root is the
// operator evaluated last: the rightmost one of the lowest priority.
func structure(list []element, impossible bool) (Expr, error) {
	switch len(list) {
	case 0:
		return N(0), nil
	case 1:
		el := list[0]
		switch {
		case el.group != nil:
			return structure(el.group, false)
		case el.isOp:
			return nil, parseErr(Misconstructed, el.op.String(), "operator without operands")
		}
		return el.expr, nil
	}

	// a signed sub-list such as "(-3x)" reads as 0 - 3x
	if list[0].isOp && list[0].op.Priority() == 0 && lastOperator(list, 0) < 0 {
		list = append([]element{exprElement(N(0))}, list...)
	}

	index := -1
	for priority := 0; priority <= 2 && index < 0; priority++ {
		index = lastOperator(list, priority)
	}
	if index < 0 {
		return nil, parseErr(Misconstructed, "", "no operator joins %d operands", len(list))
	}

	left, right := list[:index], list[index+1:]
	if len(left) == 0 || len(right) == 0 {
		return nil, parseErr(Misconstructed, "", "operator %s is missing an operand", list[index].op)
	}
	l, err := structure(left, impossible)
	if err != nil {
		return nil, err
	}
	r, err := structure(right, impossible)
	if err != nil {
		return nil, err
	}
	return &Operation{Left: l, Operator: list[index].op, Right: r, Impossible: impossible}, nil
}

// chain joins exprs left to right with op, the same shape structure gives
// to "a op b op c".
func chain(exprs []Expr, op Operator, impossible bool) Expr {
	if len(exprs) == 0 {
		return N(0)
	}
	list := make([]element, 0, 2*len(exprs)-1)
	for i, e := range exprs {
		if i > 0 {
			list = append(list, opElement(op))
		}
		list = append(list, exprElement(e))
	}
	e, err := structure(list, impossible)
	if err != nil {
		// alternating operands and operators always structure
		panic(err)
	}
	return e
}
