package metric_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairscan/fairscan/pkg/metric"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name  string
		raw   any
		want  float64
		known bool
	}{
		{"float64", 3.5, 3.5, true},
		{"int", 42, 42, true},
		{"int64", int64(-7), -7, true},
		{"uint", uint(9), 9, true},
		{"json number", json.Number("1.25"), 1.25, true},
		{"plain numeric string", "42", 42, true},
		{"decimal string", "3.141", 3.141, true},
		{"negative string", "-0.5", -0.5, true},
		{"first token wins", "flagged over 15 games (gap 0.42)", 15, true},
		{"embedded negative", "delta -5 points", -5, true},
		{"percent suffix", "87.5%", 87.5, true},
		{"nan", math.NaN(), 0, false},
		{"positive inf", math.Inf(1), 0, false},
		{"no numeral", "no digits here", 0, false},
		{"empty string", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"slice", []any{1, 2}, 0, false},
		{"map", map[string]any{"n": 1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := metric.Coerce(tt.raw)
			assert.Equal(t, tt.known, got.Known())
			if tt.known {
				assert.Equal(t, tt.want, got.Float())
			}
		})
	}
}

func TestCoercePassesValuesThrough(t *testing.T) {
	v := metric.Num(2.5)
	assert.True(t, metric.Coerce(v).Equal(v))
	assert.False(t, metric.Coerce(metric.Unknown()).Known())
}

func TestCoerceMinusWithoutDigitsSkipped(t *testing.T) {
	// A bare minus never forms a token; scanning continues to the next numeral.
	got := metric.Coerce("a- b 7 wins")
	assert.True(t, got.Known())
	assert.Equal(t, 7.0, got.Float())
}
