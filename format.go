package goliteral

import (
	"regexp"
	"strings"
	"unicode"
)

var allowedCharacters = regexp.MustCompile(`^[0-9.a-z+\-*/()^\[\]|]+$`)

// Minify removes every whitespace character.
func Minify(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// CheckCharacters reports whether text is non-empty and made of digits,
// '.', lowercase letters, operators and parentheses/brackets only.
func CheckCharacters(text string) bool {
	return allowedCharacters.MatchString(text)
}

// List splits minified text into raw symbols. Digits accumulate into one
// symbol, letters stand alone, and operators and parentheses are always
// their own symbol, except a leading sign which sticks to what follows it.
func List(text string) []string {
	var out []string
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, buf.String())
			buf.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		s := text[i : i+1]
		switch {
		case c == ' ':
		case isOperatorText(s, -1) || isParenthesisText(s):
			if i == 0 && (c == '+' || c == '-') {
				buf.WriteByte(c)
				continue
			}
			flush()
			out = append(out, s)
		case isLetter(c):
			if prefix := buf.String(); prefix == "-" || prefix == "+" {
				buf.WriteByte(c)
				flush()
				continue
			}
			flush()
			out = append(out, s)
		default:
			buf.WriteByte(c)
		}
	}
	flush()
	return out
}

// Arrange makes a symbol list structurable without computing anything:
// empty parentheses go away, implicit multiplications become explicit and
// a leading sign is attached to its operand.
func Arrange(tokens []string) []string {
	out := removeEmptyParentheses(tokens)
	out = addImplicitMultiplications(out)
	return treatLeadingSign(out)
}

func removeEmptyParentheses(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if n := len(out); n > 0 && isOpeningText(out[n-1]) && isClosingText(t) {
			out = out[:n-1]
			continue
		}
		out = append(out, t)
	}
	return out
}

func addImplicitMultiplications(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i, current := range tokens {
		if i > 0 && needsMultiplication(tokens[i-1], current) {
			out = append(out, "*")
		}
		out = append(out, current)
	}
	return out
}

// needsMultiplication covers "(a+b)(a-b)" and "2(x)", "5x", "xy" and "(x)y".
func needsMultiplication(previous, current string) bool {
	operand := func(t string) bool { return !isOperatorText(t, -1) && !isParenthesisText(t) }
	switch {
	case !isOperatorText(previous, -1) && !isOpeningText(previous) && isOpeningText(current):
		return true
	case isDigitText(previous) && isLetterText(current):
		return true
	case isLetterText(previous) && isLetterText(current):
		return true
	case isClosingText(previous) && operand(current):
		return true
	}
	return false
}

func treatLeadingSign(tokens []string) []string {
	out := append([]string(nil), tokens...)
	if len(out) < 2 || !isOperatorText(out[0], 0) {
		return out
	}
	switch {
	case isParenthesisText(out[1]):
		// a sign cannot be fused into a parenthesis
		return append([]string{"0"}, out...)
	case isNumberText(out[1]):
		return append([]string{out[0] + out[1]}, out[2:]...)
	}
	return out
}

// Tokenize runs Minify, CheckCharacters, List and Arrange.
func Tokenize(text string) ([]string, error) {
	minified := Minify(text)
	if !CheckCharacters(minified) {
		return nil, parseErr(UnsupportedCharacter, text, "only digits, lowercase letters, + - * / ^ | ( ) [ ] are allowed")
	}
	return Arrange(List(minified)), nil
}
