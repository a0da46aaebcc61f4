// Package metric provides the numeric value model used throughout fairscan.
// Every reconciled metric is either a finite number or explicitly unknown;
// there is no "missing" state and no NaN/Inf sentinel. Value is the single
// optional-number type, and the coercion and unit-normalization helpers in
// this package are the only way raw source values become Values.
package metric

import (
	"math"
	"strconv"
)

// UnknownText is the canonical textual rendering of an unknown value.
const UnknownText = "unknown"

// Value is a finite float64 or explicitly unknown. The zero Value is unknown.
type Value struct {
	val   float64
	known bool
}

// Num returns a known Value. Non-finite inputs (NaN, ±Inf) map to unknown.
func Num(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{val: f, known: true}
}

// Unknown returns the unknown Value.
func Unknown() Value {
	return Value{}
}

// Known reports whether the value holds a finite number.
func (v Value) Known() bool {
	return v.known
}

// Float returns the held number, or 0 when unknown. Callers must check
// Known first when 0 is a meaningful value.
func (v Value) Float() float64 {
	return v.val
}

// Equal reports whether two values are both unknown or hold the same number.
func (v Value) Equal(o Value) bool {
	if v.known != o.known {
		return false
	}
	return !v.known || v.val == o.val
}

// String renders the value as a decimal number or "unknown".
func (v Value) String() string {
	if !v.known {
		return UnknownText
	}
	return strconv.FormatFloat(v.val, 'f', -1, 64)
}

// Format renders the value with a fixed number of decimals, or "unknown".
// decimals < 0 uses the shortest representation.
func (v Value) Format(decimals int) string {
	if !v.known {
		return UnknownText
	}
	return strconv.FormatFloat(v.val, 'f', decimals, 64)
}

// MarshalJSON encodes a known value as a JSON number and an unknown value
// as the string "unknown".
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.known {
		return []byte(`"` + UnknownText + `"`), nil
	}
	return []byte(strconv.FormatFloat(v.val, 'f', -1, 64)), nil
}

// MarshalYAML encodes a known value as a YAML number and an unknown value
// as the string "unknown".
func (v Value) MarshalYAML() (any, error) {
	if !v.known {
		return UnknownText, nil
	}
	return v.val, nil
}
