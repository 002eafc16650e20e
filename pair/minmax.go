package pair

// MinMax is a float range bounded by fixed limits, as edited by a min/max slider.
type MinMax struct {
	Min      float64
	Max      float64
	LimitMin float64
	LimitMax float64
}

// NewMinMax clamps min and max to the limits and keeps Min <= Max.
func NewMinMax(min, max, limitMin, limitMax float64) MinMax {
	if limitMin > limitMax {
		limitMin, limitMax = limitMax, limitMin
	}

	r := MinMax{LimitMin: limitMin, LimitMax: limitMax}
	r.Set(min, max)

	return r
}

func (r *MinMax) Set(min, max float64) {
	min = clampValue(min, r.LimitMin, r.LimitMax)
	max = clampValue(max, r.LimitMin, r.LimitMax)
	if min > max {
		min, max = max, min
	}
	r.Min = min
	r.Max = max
}

func (r MinMax) Clamp(v float64) float64 {
	return clampValue(v, r.Min, r.Max)
}

func (r MinMax) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Lerp maps t in [0, 1] onto the range.
func (r MinMax) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*clampValue(t, 0, 1)
}

func (r MinMax) Span() float64 {
	return r.Max - r.Min
}

func (r MinMax) Pair() Pair[float64, float64] {
	return Of(r.Min, r.Max)
}

func clampValue(value, min, max float64) float64 {
	if value > max {
		return max
	}
	if value < min {
		return min
	}

	return value
}
