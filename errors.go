package goliteral

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	UnsupportedCharacter ErrorKind = iota
	ParenthesesMismatch
	OrderError
	UnrecognizedTerm
	MalformedFraction
	Misconstructed
)

func (k ErrorKind) String() string {
	switch k {
	case UnsupportedCharacter:
		return "unsupported character"
	case ParenthesesMismatch:
		return "parentheses mismatch"
	case OrderError:
		return "order error"
	case UnrecognizedTerm:
		return "unrecognized term"
	case MalformedFraction:
		return "malformed fraction"
	case Misconstructed:
		return "misconstructed expression"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is returned by Parse and ParseTerm. Input holds the text that
// was rejected: the whole expression for pipeline gates, the single token
// for term failures.
type ParseError struct {
	Kind  ErrorKind
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("goliteral: %s in %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("goliteral: %s in %q: %s", e.Kind, e.Input, e.Msg)
}

func parseErr(kind ErrorKind, input, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Input: input, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a *ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}

var (
	// ErrUnknownValue is returned by Evaluate when the expression still
	// contains letters.
	ErrUnknownValue = errors.New("goliteral: expression contains unknown values")
	// ErrDivisionByZero is returned by Evaluate when a denominator is zero.
	ErrDivisionByZero = errors.New("goliteral: division by zero")
)
