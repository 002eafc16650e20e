package main

import (
	"fmt"
	"math"
	"strings"
)

// formatRemaining renders seconds as MM:SS.t, rounding tenths up so the
// display only reads 00:00.0 once the countdown is over.
func formatRemaining(seconds float64) string {
	if seconds <= 0 {
		return "00:00.0"
	}

	tenths := int(math.Ceil(seconds * 10))
	minutes := tenths / 600
	tenths -= minutes * 600

	return fmt.Sprintf("%02d:%02d.%d", minutes, tenths/10, tenths%10)
}

// progress returns the elapsed fraction of total, in [0, 1].
func progress(remaining, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return math.Min(math.Max(1-remaining/total, 0), 1)
}

func progressBar(width int, fraction float64) string {
	inner := width - 2
	if inner <= 0 {
		return ""
	}

	filled := int(math.Round(fraction * float64(inner)))
	filled = min(max(filled, 0), inner)

	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", inner-filled) + "]"
}

func statusLine(paused, finished, running bool) string {
	switch {
	case finished:
		return "finished   r restart   q quit"
	case paused:
		return "paused   space resume   r restart   q quit"
	case !running:
		return "stopped   r restart   q quit"
	default:
		return "space pause   s stop   r restart   q quit"
	}
}
