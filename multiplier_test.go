package goliteral_test

import (
	"strings"
	"testing"

	goliteral "github.com/njchilds90/goliteral"
)

// ============================================================
// Multiplier tests
// ============================================================

func TestMultiplier_IncrementIsPersistent(t *testing.T) {
	m := goliteral.Multiplier{"x": 2}
	got := m.Increment("x", 1)
	if got["x"] != 3 {
		t.Errorf("want x^3, got %s", got)
	}
	if m["x"] != 2 {
		t.Errorf("receiver changed: want x^2, got %s", m)
	}
}

func TestMultiplier_DecrementToZeroPrunes(t *testing.T) {
	m := goliteral.Multiplier{"x": 2}.Decrement("x", 2)
	if !m.IsEmpty() {
		t.Errorf("want empty multiplier, got %v", map[string]int(m))
	}
}

func TestMultiplier_With(t *testing.T) {
	m := goliteral.Multiplier{"x": 1}.With("y", 4)
	if m.String() != "xy^4" {
		t.Errorf("want xy^4, got %s", m)
	}
	if n := m.With("y", 0); n.String() != "x" {
		t.Errorf("want x, got %s", n)
	}
}

func TestMultiplier_Merge(t *testing.T) {
	m := goliteral.MergeMultipliers(
		goliteral.Multiplier{"x": 1},
		goliteral.Multiplier{"x": 2, "y": 1},
	)
	if m.String() != "x^3y" {
		t.Errorf("want x^3y, got %s", m)
	}
}

func TestMultiplier_SubtractThenSplit(t *testing.T) {
	diff := goliteral.Multiplier{"x": 1, "z": 2}.Subtract(goliteral.Multiplier{"x": 3, "y": 1})
	if diff["x"] != -2 || diff["y"] != -1 || diff["z"] != 2 {
		t.Errorf("want {x:-2 y:-1 z:2}, got %v", map[string]int(diff))
	}
	pos, neg := diff.Split()
	if pos.String() != "z^2" {
		t.Errorf("want z^2, got %s", pos)
	}
	if neg.String() != "x^2y" {
		t.Errorf("want x^2y, got %s", neg)
	}
}

func TestMultiplier_Scale(t *testing.T) {
	m := goliteral.Multiplier{"x": 2, "y": 1}.Scale(3)
	if m.String() != "x^6y^3" {
		t.Errorf("want x^6y^3, got %s", m)
	}
}

func TestMultiplier_LettersSorted(t *testing.T) {
	got := strings.Join(goliteral.Multiplier{"z": 1, "a": 2, "b": 1}.Letters(), ",")
	if got != "a,b,z" {
		t.Errorf("want a,b,z, got %s", got)
	}
}

func TestMultiplier_EqualIgnoresZeroEntries(t *testing.T) {
	a := goliteral.Multiplier{"x": 1, "y": 0}
	b := goliteral.Multiplier{"x": 1}
	if !a.Equal(b) {
		t.Errorf("want %v equal to %v", map[string]int(a), map[string]int(b))
	}
	if a.Equal(goliteral.Multiplier{"x": 2}) {
		t.Errorf("x and x^2 should differ")
	}
}

func TestMultiplier_StringEmpty(t *testing.T) {
	if s := (goliteral.Multiplier{}).String(); s != "" {
		t.Errorf("want empty string, got %q", s)
	}
}
