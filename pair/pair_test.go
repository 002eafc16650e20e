package pair_test

import (
	"testing"

	"github.com/meghashyamc/gametools/pair"

	"github.com/stretchr/testify/assert"
)

func TestPair_SwapAndUnpack(t *testing.T) {
	p := pair.Of("speed", 4.5)

	swapped := p.Swap()
	assert.Equal(t, 4.5, swapped.First)
	assert.Equal(t, "speed", swapped.Second)

	name, value := p.Unpack()
	assert.Equal(t, "speed", name)
	assert.Equal(t, 4.5, value)
}

func TestFloatComparer_Equal(t *testing.T) {
	c := pair.FloatComparer{Epsilon: 0.01}

	assert.True(t, c.Equal(pair.Of(1.0, 2.0), pair.Of(1.005, 1.995)))
	assert.False(t, c.Equal(pair.Of(1.0, 2.0), pair.Of(1.0, 2.1)))
	assert.False(t, c.Equal(pair.Of(1.0, 2.0), pair.Of(1.2, 2.0)))

	exact := pair.FloatComparer{}
	assert.True(t, exact.Equal(pair.Of(0.5, 0.25), pair.Of(0.5, 0.25)))
	assert.False(t, exact.Equal(pair.Of(0.5, 0.25), pair.Of(0.5, 0.2500001)))
}

func TestFloatComparer_Compare(t *testing.T) {
	c := pair.FloatComparer{Epsilon: 1}

	tests := []struct {
		name string
		a, b pair.Pair[float64, float64]
		want int
	}{
		{"first smaller", pair.Of(1.0, 9.0), pair.Of(2.0, 0.0), -1},
		{"first larger", pair.Of(3.0, 0.0), pair.Of(2.0, 9.0), 1},
		{"near firsts ordered exactly", pair.Of(2.0, 9.0), pair.Of(2.5, 0.0), -1},
		{"tie on first", pair.Of(2.0, 3.0), pair.Of(2.0, 3.5), -1},
		{"equal", pair.Of(2.0, 3.0), pair.Of(2.0, 3.0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Compare(tt.a, tt.b))
		})
	}
}

func TestFloatComparer_Sort(t *testing.T) {
	pairs := []pair.Pair[float64, float64]{
		pair.Of(3.0, 1.0),
		pair.Of(1.0, 5.0),
		pair.Of(1.0, 2.0),
		pair.Of(2.0, 0.0),
	}

	pair.FloatComparer{}.Sort(pairs)

	assert.Equal(t, []pair.Pair[float64, float64]{
		pair.Of(1.0, 2.0),
		pair.Of(1.0, 5.0),
		pair.Of(2.0, 0.0),
		pair.Of(3.0, 1.0),
	}, pairs)
}

func TestFloatComparer_SortIgnoresInputOrder(t *testing.T) {
	c := pair.FloatComparer{Epsilon: 1}
	a, b, d := pair.Of(0.0, 5.0), pair.Of(0.8, 3.0), pair.Of(1.6, 0.0)

	forward := []pair.Pair[float64, float64]{a, b, d}
	backward := []pair.Pair[float64, float64]{d, b, a}
	c.Sort(forward)
	c.Sort(backward)

	want := []pair.Pair[float64, float64]{a, b, d}
	assert.Equal(t, want, forward)
	assert.Equal(t, want, backward)
	assert.True(t, c.Equal(a, pair.Of(0.8, 5.9)), "Equal keeps the epsilon")
}

func TestMinMax_New(t *testing.T) {
	tests := []struct {
		name             string
		min, max         float64
		limMin, limMax   float64
		wantMin, wantMax float64
	}{
		{"inside limits", 2, 8, 0, 10, 2, 8},
		{"clamped", -5, 50, 0, 10, 0, 10},
		{"reversed values", 7, 3, 0, 10, 3, 7},
		{"reversed limits", 2, 8, 10, 0, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := pair.NewMinMax(tt.min, tt.max, tt.limMin, tt.limMax)
			assert.Equal(t, tt.wantMin, r.Min)
			assert.Equal(t, tt.wantMax, r.Max)
			assert.LessOrEqual(t, r.Min, r.Max)
		})
	}
}

func TestMinMax_Queries(t *testing.T) {
	r := pair.NewMinMax(2, 6, 0, 10)

	assert.Equal(t, 4.0, r.Span())
	assert.Equal(t, 2.0, r.Clamp(-1))
	assert.Equal(t, 6.0, r.Clamp(9))
	assert.Equal(t, 3.0, r.Clamp(3))
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(6.5))
	assert.Equal(t, 4.0, r.Lerp(0.5))
	assert.Equal(t, 6.0, r.Lerp(2))
	assert.Equal(t, pair.Of(2.0, 6.0), r.Pair())
}
