package goliteral

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Multiplier maps a single lowercase letter to its exponent. It is the
// unknown part of a Number: 3x^2y has the multiplier {x:2, y:1}.
//
// Multipliers are values: every method returns a fresh map and leaves the
// receiver untouched. Apart from the result of Subtract, entries are always
// strictly positive.
type Multiplier map[string]int

// Clone returns an independent copy of m.
func (m Multiplier) Clone() Multiplier {
	out := make(Multiplier, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Exponent returns the exponent of letter, or 0 when absent.
func (m Multiplier) Exponent(letter string) int {
	return m[letter]
}

// Increment adds amount to the exponent of letter.
func (m Multiplier) Increment(letter string, amount int) Multiplier {
	out := m.Clone()
	out[letter] += amount
	return out.Prune()
}

// Decrement subtracts amount from the exponent of letter.
func (m Multiplier) Decrement(letter string, amount int) Multiplier {
	return m.Increment(letter, -amount)
}

// With sets the exponent of letter to value.
func (m Multiplier) With(letter string, value int) Multiplier {
	out := m.Clone()
	out[letter] = value
	return out.Prune()
}

// MergeMultipliers sums the exponents of every input per letter.
func MergeMultipliers(ms ...Multiplier) Multiplier {
	out := Multiplier{}
	for _, m := range ms {
		for k, v := range m {
			out[k] += v
		}
	}
	return out.Prune()
}

// Subtract returns m - other per letter. The result is not pruned: a
// negative entry means other holds more of that letter than m does.
func (m Multiplier) Subtract(other Multiplier) Multiplier {
	out := m.Clone()
	for k, v := range other {
		out[k] -= v
	}
	return out
}

// Prune drops every non-positive entry.
func (m Multiplier) Prune() Multiplier {
	out := make(Multiplier, len(m))
	for k, v := range m {
		if v > 0 {
			out[k] = v
		}
	}
	return out
}

// Split separates a signed multiplier into its positive entries and the
// absolute values of its negative entries.
func (m Multiplier) Split() (positive, negative Multiplier) {
	positive, negative = Multiplier{}, Multiplier{}
	for k, v := range m {
		switch {
		case v > 0:
			positive[k] = v
		case v < 0:
			negative[k] = -v
		}
	}
	return positive, negative
}

// Scale multiplies every exponent by n.
func (m Multiplier) Scale(n int) Multiplier {
	out := make(Multiplier, len(m))
	for k, v := range m {
		out[k] = v * n
	}
	return out.Prune()
}

// IsEmpty reports whether m carries no letter at all.
func (m Multiplier) IsEmpty() bool { return len(m) == 0 }

// Equal compares canonical forms.
func (m Multiplier) Equal(other Multiplier) bool { return m.String() == other.String() }

// Letters returns the letters of m in alphabetical order.
func (m Multiplier) Letters() []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// String renders the canonical form: letters sorted, exponent shown when
// greater than one, zero entries skipped.
func (m Multiplier) String() string {
	var b strings.Builder
	for _, letter := range m.Letters() {
		v := m[letter]
		switch {
		case v == 0:
		case v == 1:
			b.WriteString(letter)
		default:
			b.WriteString(letter)
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(v))
		}
	}
	return b.String()
}
