package goliteral

// CheckParentheses reports whether every opening parenthesis or bracket is
// closed, and never before it was opened. Both kinds share one counter.
func CheckParentheses(tokens []string) bool {
	nesting := 0
	for _, t := range tokens {
		switch {
		case isOpeningText(t):
			nesting++
		case isClosingText(t):
			nesting--
			if nesting < 0 {
				return false
			}
		}
	}
	return nesting == 0
}

// CheckOrder rejects symbol sequences that cannot be structured:
// a leading or trailing operator, two operators in a row, or a digit
// right after a letter ("3x5").
func CheckOrder(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	if isOperatorText(tokens[0], -1) || isOperatorText(tokens[len(tokens)-1], -1) {
		return false
	}
	for i := 1; i < len(tokens); i++ {
		previous, current := tokens[i-1], tokens[i]
		if isOperatorText(current, -1) && isOperatorText(previous, -1) {
			return false
		}
		if isDigitText(current) && isLetterText(previous) {
			return false
		}
	}
	return true
}

// validate runs the token gates in pipeline order.
func validate(input string, tokens []string) error {
	if !CheckParentheses(tokens) {
		return parseErr(ParenthesesMismatch, input, "unbalanced parentheses or brackets")
	}
	if !CheckOrder(tokens) {
		return parseErr(OrderError, input, "operators or operands are out of order")
	}
	return nil
}
