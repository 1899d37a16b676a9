// Package aggregate combines per-timeframe snapshots for one symbol into a
// consensus view.
package aggregate

import (
	"sort"

	"go.uber.org/zap"

	"github.com/quantarc/ta-engine/internal/logger"
	"github.com/quantarc/ta-engine/internal/snapshot"
	"github.com/quantarc/ta-engine/internal/types"
	"github.com/quantarc/ta-engine/pkg/errors"
)

// Aggregator runs the snapshot builder over several timeframes of the same
// symbol and votes the results into a single consensus.
type Aggregator struct {
	builder *snapshot.Builder
	logger  *logger.Logger
}

// NewAggregator creates an Aggregator around an already configured builder.
func NewAggregator(builder *snapshot.Builder, log *logger.Logger) *Aggregator {
	return &Aggregator{
		builder: builder,
		logger:  log,
	}
}

// Analyze builds a snapshot per timeframe and merges them. A timeframe that
// fails is recorded in Failures and does not abort the others; the call only
// errors when no timeframe was given or every timeframe failed.
func (a *Aggregator) Analyze(symbol string, data map[types.Timeframe]types.PriceSeries) (*types.MultiTimeframeResult, error) {
	if len(data) == 0 {
		return nil, errors.Newf(errors.ErrCodeNoData, "no timeframes given for symbol %s", symbol)
	}

	result := &types.MultiTimeframeResult{
		Symbol:    symbol,
		Snapshots: make(map[types.Timeframe]*types.TechnicalSnapshot, len(data)),
		Failures:  make(map[types.Timeframe]string),
	}

	for _, timeframe := range orderedTimeframes(data) {
		snap, err := a.builder.Build(symbol, timeframe, data[timeframe])
		if err != nil {
			a.logger.Warn("timeframe analysis failed",
				zap.String("symbol", symbol),
				zap.String("timeframe", string(timeframe)),
				zap.Error(err),
			)
			result.Failures[timeframe] = err.Error()

			continue
		}

		result.Snapshots[timeframe] = snap
	}

	if len(result.Snapshots) == 0 {
		return nil, errors.Newf(errors.ErrCodeAggregationFailed,
			"all %d timeframes failed for symbol %s", len(data), symbol)
	}

	result.ConsensusSignal = consensusSignal(result.Snapshots)
	result.TrendAlignment = trendAlignment(result.Snapshots)
	result.KeyLevels = mergeKeyLevels(orderedSnapshots(result.Snapshots))

	return result, nil
}

// consensusSignal is an equal-weight majority vote over the per-timeframe
// overall signals. A tie between distinct leaders resolves to neutral.
func consensusSignal(snapshots map[types.Timeframe]*types.TechnicalSnapshot) types.SignalStrength {
	votes := make(map[types.SignalStrength]int, len(snapshots))
	for _, snap := range snapshots {
		votes[snap.OverallSignal]++
	}

	best := types.SignalNeutral
	bestCount := 0
	tied := false

	for signal, count := range votes {
		switch {
		case count > bestCount:
			best = signal
			bestCount = count
			tied = false
		case count == bestCount && signal != best:
			tied = true
		}
	}

	if tied {
		return types.SignalNeutral
	}

	return best
}

// trendAlignment reports whether every successful timeframe agrees on one
// trend direction.
func trendAlignment(snapshots map[types.Timeframe]*types.TechnicalSnapshot) bool {
	first := types.TrendUnknown
	seen := false

	for _, snap := range snapshots {
		if !seen {
			first = snap.TrendDirection
			seen = true

			continue
		}

		if snap.TrendDirection != first {
			return false
		}
	}

	return seen
}

// mergeKeyLevels concatenates level prices across timeframes. Levels are
// only clustered within a timeframe; nearby prices from different
// timeframes stay distinct entries.
func mergeKeyLevels(snapshots []*types.TechnicalSnapshot) types.KeyLevels {
	var merged types.KeyLevels

	for _, snap := range snapshots {
		for _, level := range snap.Support {
			merged.Support = append(merged.Support, level.Price)
		}

		for _, level := range snap.Resistance {
			merged.Resistance = append(merged.Resistance, level.Price)
		}
	}

	return merged
}

// orderedTimeframes returns the map keys in lexical order so repeated calls
// walk timeframes deterministically.
func orderedTimeframes(data map[types.Timeframe]types.PriceSeries) []types.Timeframe {
	keys := make([]types.Timeframe, 0, len(data))
	for timeframe := range data {
		keys = append(keys, timeframe)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

func orderedSnapshots(snapshots map[types.Timeframe]*types.TechnicalSnapshot) []*types.TechnicalSnapshot {
	keys := make([]types.Timeframe, 0, len(snapshots))
	for timeframe := range snapshots {
		keys = append(keys, timeframe)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	ordered := make([]*types.TechnicalSnapshot, 0, len(keys))
	for _, timeframe := range keys {
		ordered = append(ordered, snapshots[timeframe])
	}

	return ordered
}
