package metric_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairscan/fairscan/pkg/metric"
)

func TestNumRejectsNonFinite(t *testing.T) {
	assert.True(t, metric.Num(3.14).Known())
	assert.False(t, metric.Num(math.NaN()).Known())
	assert.False(t, metric.Num(math.Inf(1)).Known())
	assert.False(t, metric.Num(math.Inf(-1)).Known())
}

func TestZeroValueIsUnknown(t *testing.T) {
	var v metric.Value
	assert.False(t, v.Known())
	assert.Equal(t, "unknown", v.String())
	assert.True(t, v.Equal(metric.Unknown()))
}

func TestEqual(t *testing.T) {
	assert.True(t, metric.Num(1.5).Equal(metric.Num(1.5)))
	assert.False(t, metric.Num(1.5).Equal(metric.Num(2.5)))
	assert.False(t, metric.Num(0).Equal(metric.Unknown()))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "70.0", metric.Num(70).Format(1))
	assert.Equal(t, "0.420", metric.Num(0.42).Format(3))
	assert.Equal(t, "15", metric.Num(15).Format(-1))
	assert.Equal(t, "unknown", metric.Unknown().Format(1))
}

func TestMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A metric.Value `json:"a"`
		B metric.Value `json:"b"`
	}{A: metric.Num(42.5), B: metric.Unknown()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":42.5,"b":"unknown"}`, string(out))
}
