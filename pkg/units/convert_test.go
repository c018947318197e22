package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLookup(t *testing.T, name string) *Unit {
	t.Helper()
	u, ok := Lookup(name)
	require.True(t, ok, "unit %q not found", name)
	return u
}

func TestConvert(t *testing.T) {
	tests := []struct {
		value float64
		from  string
		to    string
		want  float64
	}{
		{1, "km", "m", 1000},
		{1000, "m", "km", 1},
		{100, "cm", "m", 1},
		{1, "mi", "km", 1.609344},
		{1, "kg", "lb", 2.2046226218},
		{2, "l", "ml", 2000},
		{90, "min", "h", 1.5},
		{1, "gb", "mb", 1024},
		{36, "kmh", "mps", 10},
		{1, "ha", "m2", 10000},
		{180, "deg", "rad", math.Pi},
		{math.Pi, "rad", "deg", 180},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			got, err := Convert(tt.value, mustLookup(t, tt.from), mustLookup(t, tt.to))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"km", "ft"}, {"kg", "oz"}, {"gal", "l"}, {"wk", "s"},
		{"tb", "bit"}, {"mph", "knot"}, {"acre", "ft2"}, {"deg", "rad"},
	}

	for _, p := range pairs {
		from, to := mustLookup(t, p[0]), mustLookup(t, p[1])
		there, err := Convert(12.5, from, to)
		require.NoError(t, err)
		back, err := Convert(there, to, from)
		require.NoError(t, err)
		assert.InDelta(t, 12.5, back, 1e-9, "%s <-> %s", p[0], p[1])
	}
}

func TestConvert_DimensionMismatch(t *testing.T) {
	_, err := Convert(1, mustLookup(t, "km"), mustLookup(t, "kg"))
	require.Error(t, err)

	var dm *DimensionMismatchError
	require.ErrorAs(t, err, &dm)
	assert.Contains(t, err.Error(), "length")
	assert.Contains(t, err.Error(), "weight")
}

func TestLookup(t *testing.T) {
	u, ok := Lookup("KM")
	require.True(t, ok)
	assert.Equal(t, "km", u.Symbol)

	u, ok = Lookup("meters")
	require.True(t, ok)
	assert.Equal(t, "m", u.Symbol)

	_, ok = Lookup("furlong")
	assert.False(t, ok)
}
