package metric

import "math"

// AsPercent coerces raw and expresses it as a percentage rounded to one
// decimal. A coerced number n with n <= 1 is treated as a fraction and
// multiplied by 100; anything larger is treated as already a percentage.
// The boundary value 1 is a fraction: it becomes 100.0, not 1.0.
func AsPercent(raw any) Value {
	n := Coerce(raw)
	if !n.Known() {
		return n
	}
	f := n.Float()
	if f <= 1 {
		f *= 100
	}
	return Num(Round1(f))
}

// AsRatio3 coerces raw and rounds it to three decimals.
func AsRatio3(raw any) Value {
	n := Coerce(raw)
	if !n.Known() {
		return n
	}
	return Num(Round3(n.Float()))
}

// Round1 rounds to one decimal, half away from zero.
func Round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// Round3 rounds to three decimals, half away from zero.
func Round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
