// Package indicator implements pure technical indicator calculations over
// in-memory price arrays. Every function returns a Line with the same length
// as its input; indices before the indicator window is full are absent.
package indicator

import (
	"math"

	"github.com/moznion/go-optional"
)

// Line is a derived indicator series aligned index-for-index with its input
// price array. Absent entries mark the leading insufficient-history region
// and any value that came out non-finite.
type Line []optional.Option[float64]

// Last returns the final value of the line, or None for an empty line.
func (l Line) Last() optional.Option[float64] {
	if len(l) == 0 {
		return optional.None[float64]()
	}

	return l[len(l)-1]
}

// PresentCount returns the number of present values.
func (l Line) PresentCount() int {
	count := 0

	for _, v := range l {
		if v.IsSome() {
			count++
		}
	}

	return count
}

// sanitize converts a computed value into an optional, mapping NaN and
// infinity to None so they never propagate into results.
func sanitize(v float64) optional.Option[float64] {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return optional.None[float64]()
	}

	return optional.Some(v)
}

// bothPresent reports whether lines a and b both hold a value at index i.
func bothPresent(a, b Line, i int) bool {
	return i >= 0 && i < len(a) && i < len(b) && a[i].IsSome() && b[i].IsSome()
}

// CrossAbove reports whether line a crossed above line b at index i: a is
// above b at i and was at or below b at i-1. Absent values never cross.
func CrossAbove(a, b Line, i int) bool {
	if i < 1 || !bothPresent(a, b, i) || !bothPresent(a, b, i-1) {
		return false
	}

	return a[i].Unwrap() > b[i].Unwrap() && a[i-1].Unwrap() <= b[i-1].Unwrap()
}

// CrossBelow reports whether line a crossed below line b at index i.
func CrossBelow(a, b Line, i int) bool {
	if i < 1 || !bothPresent(a, b, i) || !bothPresent(a, b, i-1) {
		return false
	}

	return a[i].Unwrap() < b[i].Unwrap() && a[i-1].Unwrap() >= b[i-1].Unwrap()
}
