package metric

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// numeralPattern matches the first signed decimal numeral token in a string:
// an optional leading minus, digits, and an optional fractional part.
var numeralPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Coerce converts an arbitrary raw source value to a Value. Numbers pass
// through unless non-finite. Strings are scanned left to right for the first
// signed decimal numeral token. Everything else, including nil and booleans,
// is unknown. Coerce never panics; every input has a defined output.
func Coerce(raw any) Value {
	switch v := raw.(type) {
	case Value:
		return v
	case float64:
		return Num(v)
	case float32:
		return Num(float64(v))
	case int:
		return Num(float64(v))
	case int8:
		return Num(float64(v))
	case int16:
		return Num(float64(v))
	case int32:
		return Num(float64(v))
	case int64:
		return Num(float64(v))
	case uint:
		return Num(float64(v))
	case uint8:
		return Num(float64(v))
	case uint16:
		return Num(float64(v))
	case uint32:
		return Num(float64(v))
	case uint64:
		return Num(float64(v))
	case json.Number:
		return coerceString(v.String())
	case string:
		return coerceString(v)
	default:
		return Unknown()
	}
}

func coerceString(s string) Value {
	tok := numeralPattern.FindString(s)
	if tok == "" {
		return Unknown()
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return Unknown()
	}
	return Num(f)
}
