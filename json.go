package goliteral

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// JSON Serialization
// ============================================================

func (n *Number) toJSON() map[string]interface{} {
	m := map[string]interface{}{}
	for k, v := range n.Multiplier {
		m[k] = v
	}
	return map[string]interface{}{"type": "number", "value": n.Value, "multiplier": m}
}

func (f *Fraction) toJSON() map[string]interface{} {
	return map[string]interface{}{
		"type":        "fraction",
		"numerator":   f.Numerator.toJSON(),
		"denominator": f.Denominator.toJSON(),
	}
}

func (o *Operation) toJSON() map[string]interface{} {
	return map[string]interface{}{
		"type":       "operation",
		"operator":   o.Operator.String(),
		"left":       o.Left.toJSON(),
		"right":      o.Right.toJSON(),
		"impossible": o.Impossible,
	}
}

// ToJSON encodes e as a JSON object tree.
func ToJSON(e Expr) (string, error) {
	b, err := json.Marshal(e.toJSON())
	return string(b), err
}

// FromJSON decodes the object form produced by ToJSON.
func FromJSON(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	subExpr := func(field string) (Expr, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		e, err := FromJSON(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", typ, field, err)
		}
		return e, nil
	}

	switch typ {
	case "number":
		value, ok := data["value"].(float64)
		if !ok {
			return nil, fmt.Errorf("number: 'value' must be a number")
		}
		m := Multiplier{}
		if raw, present := data["multiplier"]; present && raw != nil {
			entries, ok := raw.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("number: 'multiplier' must be an object")
			}
			for letter, exp := range entries {
				if len(letter) != 1 || !isLetter(letter[0]) {
					return nil, fmt.Errorf("number: invalid letter %q", letter)
				}
				f, ok := exp.(float64)
				if !ok || f != float64(int(f)) {
					return nil, fmt.Errorf("number: exponent of %s must be an integer", letter)
				}
				m[letter] = int(f)
			}
		}
		return NumberOf(value, m), nil

	case "fraction":
		num, err := subExpr("numerator")
		if err != nil {
			return nil, err
		}
		den, err := subExpr("denominator")
		if err != nil {
			return nil, err
		}
		return FractionOf(num, den), nil

	case "operation":
		sym, ok := data["operator"].(string)
		if !ok || len(sym) != 1 {
			return nil, fmt.Errorf("operation: 'operator' must be a one-character string")
		}
		op, ok := OperatorFromSymbol(sym[0])
		if !ok {
			return nil, fmt.Errorf("operation: unknown operator %q", sym)
		}
		left, err := subExpr("left")
		if err != nil {
			return nil, err
		}
		right, err := subExpr("right")
		if err != nil {
			return nil, err
		}
		impossible, _ := data["impossible"].(bool)
		return &Operation{Left: left, Operator: op, Right: right, Impossible: impossible}, nil
	}
	return nil, fmt.Errorf("unknown expression type: %s", typ)
}
