package types

import (
	"math"
	"sort"
	"time"

	"github.com/quantarc/ta-engine/pkg/errors"
)

// PriceBar is a single OHLCV bar.
type PriceBar struct {
	Time   time.Time `csv:"time" json:"time" yaml:"time"`
	Open   float64   `csv:"open" json:"open" yaml:"open"`
	High   float64   `csv:"high" json:"high" yaml:"high"`
	Low    float64   `csv:"low" json:"low" yaml:"low"`
	Close  float64   `csv:"close" json:"close" yaml:"close"`
	Volume float64   `csv:"volume" json:"volume" yaml:"volume"`
}

// Validate checks that all numeric fields are finite and that the bar
// satisfies high >= max(open, close) >= min(open, close) >= low >= 0.
func (b PriceBar) Validate() error {
	for _, v := range []float64{b.Open, b.High, b.Low, b.Close, b.Volume} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Newf(errors.ErrCodeInvalidBar, "bar at %s contains a non-finite value", b.Time.Format(time.RFC3339))
		}
	}

	if b.Low < 0 {
		return errors.Newf(errors.ErrCodeInvalidBar, "bar at %s has negative low %f", b.Time.Format(time.RFC3339), b.Low)
	}

	if b.Volume < 0 {
		return errors.Newf(errors.ErrCodeInvalidBar, "bar at %s has negative volume %f", b.Time.Format(time.RFC3339), b.Volume)
	}

	bodyHigh := math.Max(b.Open, b.Close)
	bodyLow := math.Min(b.Open, b.Close)

	if b.High < bodyHigh || bodyLow < b.Low {
		return errors.Newf(errors.ErrCodeInvalidBar, "bar at %s violates high >= max(open, close) >= min(open, close) >= low", b.Time.Format(time.RFC3339))
	}

	return nil
}

// PriceSeries is an immutable, chronological sequence of price bars.
// Construct it through NewPriceSeries; the zero value is a valid empty series.
type PriceSeries struct {
	bars []PriceBar
}

// NewPriceSeries validates the given bars and wraps them in a PriceSeries.
// Bars must be strictly increasing by timestamp with no duplicates. The
// input slice is copied, so the caller keeps ownership of its slice.
func NewPriceSeries(bars []PriceBar) (PriceSeries, error) {
	for i, bar := range bars {
		if err := bar.Validate(); err != nil {
			return PriceSeries{}, err
		}

		if i > 0 && !bars[i-1].Time.Before(bar.Time) {
			return PriceSeries{}, errors.Newf(errors.ErrCodeInvalidSeries,
				"bars must be strictly increasing by timestamp: bar %d (%s) is not after bar %d (%s)",
				i, bar.Time.Format(time.RFC3339), i-1, bars[i-1].Time.Format(time.RFC3339))
		}
	}

	owned := make([]PriceBar, len(bars))
	copy(owned, bars)

	return PriceSeries{bars: owned}, nil
}

// Len returns the number of bars in the series.
func (s PriceSeries) Len() int {
	return len(s.bars)
}

// IsEmpty reports whether the series has no bars.
func (s PriceSeries) IsEmpty() bool {
	return len(s.bars) == 0
}

// Bar returns the bar at index i.
func (s PriceSeries) Bar(i int) PriceBar {
	return s.bars[i]
}

// Bars returns a copy of the underlying bars.
func (s PriceSeries) Bars() []PriceBar {
	out := make([]PriceBar, len(s.bars))
	copy(out, s.bars)

	return out
}

// LastBar returns the most recent bar. ok is false when the series is empty.
func (s PriceSeries) LastBar() (PriceBar, bool) {
	if len(s.bars) == 0 {
		return PriceBar{}, false
	}

	return s.bars[len(s.bars)-1], true
}

// Closes returns the close prices of all bars in chronological order.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.bars))
	for i, bar := range s.bars {
		out[i] = bar.Close
	}

	return out
}

// Highs returns the high prices of all bars in chronological order.
func (s PriceSeries) Highs() []float64 {
	out := make([]float64, len(s.bars))
	for i, bar := range s.bars {
		out[i] = bar.High
	}

	return out
}

// Lows returns the low prices of all bars in chronological order.
func (s PriceSeries) Lows() []float64 {
	out := make([]float64, len(s.bars))
	for i, bar := range s.bars {
		out[i] = bar.Low
	}

	return out
}

// StartTime returns the timestamp of the first bar, or the zero time for an
// empty series.
func (s PriceSeries) StartTime() time.Time {
	if len(s.bars) == 0 {
		return time.Time{}
	}

	return s.bars[0].Time
}

// EndTime returns the timestamp of the last bar, or the zero time for an
// empty series.
func (s PriceSeries) EndTime() time.Time {
	if len(s.bars) == 0 {
		return time.Time{}
	}

	return s.bars[len(s.bars)-1].Time
}

// NearestBar returns the bar whose timestamp is closest to t, as long as the
// distance is within tolerance. ok is false when the series is empty or no
// bar lies within tolerance.
func (s PriceSeries) NearestBar(t time.Time, tolerance time.Duration) (PriceBar, bool) {
	if len(s.bars) == 0 {
		return PriceBar{}, false
	}

	// First bar at or after t.
	idx := sort.Search(len(s.bars), func(i int) bool {
		return !s.bars[i].Time.Before(t)
	})

	best := -1

	var bestDist time.Duration

	for _, i := range []int{idx - 1, idx} {
		if i < 0 || i >= len(s.bars) {
			continue
		}

		dist := s.bars[i].Time.Sub(t)
		if dist < 0 {
			dist = -dist
		}

		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	if best == -1 || bestDist > tolerance {
		return PriceBar{}, false
	}

	return s.bars[best], true
}
