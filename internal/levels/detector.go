// Package levels detects clustered support and resistance levels from OHLC
// history. Pivot extrema are grouped by relative price tolerance; a price
// only becomes a level once it has been touched at least twice.
package levels

import (
	"math"
	"sort"
	"time"

	"github.com/quantarc/ta-engine/internal/types"
	"github.com/quantarc/ta-engine/pkg/errors"
)

// Default detector parameters.
const (
	DefaultPivotWindow = 5
	DefaultTolerance   = 0.02
	DefaultMaxLevels   = 10

	// recentWindow is the number of trailing closes averaged to decide
	// whether a level sits on the support or resistance side.
	recentWindow = 20
)

// Detector finds support/resistance levels for one timeframe.
type Detector struct {
	pivotWindow int
	tolerance   float64
	maxLevels   int
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return &Detector{
		pivotWindow: DefaultPivotWindow,
		tolerance:   DefaultTolerance,
		maxLevels:   DefaultMaxLevels,
	}
}

// NewDetectorWithParams creates a detector with explicit parameters.
func NewDetectorWithParams(pivotWindow int, tolerance float64, maxLevels int) (*Detector, error) {
	if pivotWindow <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "pivot window must be a positive integer, got %d", pivotWindow)
	}

	if tolerance <= 0 || tolerance >= 1 {
		return nil, errors.Newf(errors.ErrCodeInvalidTolerance, "tolerance must be in (0, 1), got %f", tolerance)
	}

	if maxLevels <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "max levels must be a positive integer, got %d", maxLevels)
	}

	return &Detector{
		pivotWindow: pivotWindow,
		tolerance:   tolerance,
		maxLevels:   maxLevels,
	}, nil
}

// candidate is a single pivot extremum. Candidates live densely in a slice
// and groups reference them by index only.
type candidate struct {
	price    float64
	barIndex int
	time     time.Time
}

// group is a cluster of candidates within tolerance of each other.
type group struct {
	members   []int // candidate indices
	sum       float64
	lastTouch time.Time
	lastIndex int
}

func (g *group) mean() float64 {
	return g.sum / float64(len(g.members))
}

// Detect returns the clustered support and resistance levels of the series,
// each sorted by strength descending. A series too short to contain any
// pivot simply yields empty lists.
func (d *Detector) Detect(series types.PriceSeries) (support, resistance []types.SupportResistanceLevel) {
	n := series.Len()
	if n < 2*d.pivotWindow+1 {
		return nil, nil
	}

	lows := series.Lows()
	highs := series.Highs()

	var lowCandidates, highCandidates []candidate

	for i := d.pivotWindow; i < n-d.pivotWindow; i++ {
		if isPivot(lows, i, d.pivotWindow, false) {
			lowCandidates = append(lowCandidates, candidate{
				price:    lows[i],
				barIndex: i,
				time:     series.Bar(i).Time,
			})
		}

		if isPivot(highs, i, d.pivotWindow, true) {
			highCandidates = append(highCandidates, candidate{
				price:    highs[i],
				barIndex: i,
				time:     series.Bar(i).Time,
			})
		}
	}

	clustered := append(d.cluster(lowCandidates), d.cluster(highCandidates)...)

	// A level below the recent average price region acts as support,
	// one above it as resistance.
	recentAvg := recentAverageClose(series)

	for _, lvl := range d.buildLevels(clustered, n) {
		if lvl.Price <= recentAvg {
			lvl.Type = types.LevelTypeSupport
			support = append(support, lvl)
		} else {
			lvl.Type = types.LevelTypeResistance
			resistance = append(resistance, lvl)
		}
	}

	sortLevels(support)
	sortLevels(resistance)

	if len(support) > d.maxLevels {
		support = support[:d.maxLevels]
	}

	if len(resistance) > d.maxLevels {
		resistance = resistance[:d.maxLevels]
	}

	return support, resistance
}

// isPivot reports whether values[i] is the extremum among its window
// neighbors on both sides.
func isPivot(values []float64, i, window int, high bool) bool {
	for j := i - window; j <= i+window; j++ {
		if j == i {
			continue
		}

		if high && values[j] > values[i] {
			return false
		}

		if !high && values[j] < values[i] {
			return false
		}
	}

	return true
}

// cluster merges candidates of one kind into groups using a single
// deterministic pass: each candidate joins the first existing group whose
// mean lies within the relative tolerance, otherwise it starts a new group.
func (d *Detector) cluster(arena []candidate) []group {
	var groups []group

	for idx := range arena {
		c := arena[idx]

		assigned := false

		for gi := range groups {
			mean := groups[gi].mean()
			if math.Abs(c.price-mean)/mean <= d.tolerance {
				groups[gi].members = append(groups[gi].members, idx)
				groups[gi].sum += c.price

				if c.time.After(groups[gi].lastTouch) {
					groups[gi].lastTouch = c.time
					groups[gi].lastIndex = c.barIndex
				}

				assigned = true

				break
			}
		}

		if !assigned {
			groups = append(groups, group{
				members:   []int{idx},
				sum:       c.price,
				lastTouch: c.time,
				lastIndex: c.barIndex,
			})
		}
	}

	return groups
}

// buildLevels converts groups with at least two touches into levels.
func (d *Detector) buildLevels(groups []group, seriesLen int) []types.SupportResistanceLevel {
	var out []types.SupportResistanceLevel

	for _, g := range groups {
		if len(g.members) < 2 {
			continue
		}

		out = append(out, types.SupportResistanceLevel{
			Price:     g.mean(),
			Strength:  strength(len(g.members), g.lastIndex, seriesLen),
			Touches:   len(g.members),
			LastTouch: g.lastTouch,
		})
	}

	return out
}

// strength scores a level from touches and recency, clamped to [1, 10].
// More touches and a more recent last touch both increase the score.
func strength(touches, lastIndex, seriesLen int) int {
	score := touches * 2

	// Recency bonus for touches in the trailing fifth of the series.
	if seriesLen > 0 {
		age := seriesLen - 1 - lastIndex
		switch {
		case age <= seriesLen/10:
			score += 2
		case age <= seriesLen/5:
			score++
		}
	}

	if score < 1 {
		return 1
	}

	if score > 10 {
		return 10
	}

	return score
}

func recentAverageClose(series types.PriceSeries) float64 {
	n := series.Len()

	window := recentWindow
	if n < window {
		window = n
	}

	sum := 0.0
	for i := n - window; i < n; i++ {
		sum += series.Bar(i).Close
	}

	return sum / float64(window)
}

func sortLevels(levels []types.SupportResistanceLevel) {
	sort.SliceStable(levels, func(i, j int) bool {
		if levels[i].Strength != levels[j].Strength {
			return levels[i].Strength > levels[j].Strength
		}

		if levels[i].Touches != levels[j].Touches {
			return levels[i].Touches > levels[j].Touches
		}

		return levels[i].Price < levels[j].Price
	})
}
