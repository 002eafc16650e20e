package pair

import (
	"cmp"
	"math"
	"slices"
)

type Pair[A, B any] struct {
	First  A
	Second B
}

func Of[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// FloatComparer compares float pairs. Equal treats values within Epsilon as
// equal; ordering is exact so Sort is deterministic.
type FloatComparer struct {
	Epsilon float64
}

func (c FloatComparer) Equal(a, b Pair[float64, float64]) bool {
	return c.near(a.First, b.First) && c.near(a.Second, b.Second)
}

// Compare orders pairs by First, then by Second.
func (c FloatComparer) Compare(a, b Pair[float64, float64]) int {
	if n := cmp.Compare(a.First, b.First); n != 0 {
		return n
	}
	return cmp.Compare(a.Second, b.Second)
}

func (c FloatComparer) Sort(pairs []Pair[float64, float64]) {
	slices.SortStableFunc(pairs, c.Compare)
}

func (c FloatComparer) near(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= c.Epsilon
}
