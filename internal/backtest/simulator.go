// Package backtest replays trading strategies against historical bars and
// summarizes the resulting trades.
package backtest

import (
	"sort"

	"go.uber.org/zap"

	"github.com/quantarc/ta-engine/internal/logger"
	"github.com/quantarc/ta-engine/internal/types"
)

// Simulator replays a strategy over a price series. It holds at most one
// open position at a time and sizes every entry at Options.PositionSize.
type Simulator struct {
	options Options
	logger  *logger.Logger
}

// NewSimulator creates a Simulator with validated options.
func NewSimulator(options Options, log *logger.Logger) (*Simulator, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	return &Simulator{
		options: options,
		logger:  log,
	}, nil
}

// RunRecommendations replays a recommendation history against the series.
// Recommendations below the confidence floor are ignored; each accepted buy
// opens a position (when flat) at the close of the nearest bar within the
// price tolerance, each accepted sell closes it. An empty history or series
// yields a zero-trade result rather than an error.
func (s *Simulator) RunRecommendations(symbol string, series types.PriceSeries, history types.AnalysisHistory) (*types.BacktestResult, error) {
	trades, open := s.replay(symbol, series, history)

	return buildResult(symbol, StrategyRecommendation, trades, open), nil
}

func (s *Simulator) replay(symbol string, series types.PriceSeries, history types.AnalysisHistory) ([]types.ClosedTrade, []types.OpenTrade) {
	if series.IsEmpty() || len(history) == 0 {
		return nil, nil
	}

	ordered := make(types.AnalysisHistory, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })

	var trades []types.ClosedTrade

	var position *types.OpenTrade

	for _, rec := range ordered {
		if rec.Confidence < s.options.MinConfidence {
			continue
		}

		bar, ok := series.NearestBar(rec.Date, s.options.PriceTolerance)
		if !ok {
			s.logger.Warn("no bar near recommendation, skipping",
				zap.String("symbol", symbol),
				zap.Time("date", rec.Date),
			)

			continue
		}

		switch rec.Action {
		case types.RecommendationBuy:
			if position != nil {
				continue
			}

			position = &types.OpenTrade{
				Symbol:         symbol,
				EntryDate:      bar.Time,
				EntryPrice:     bar.Close,
				PositionSize:   s.options.PositionSize,
				Side:           types.TradeSideBuy,
				StrategySignal: string(types.RecommendationBuy),
			}

		case types.RecommendationSell:
			if position == nil {
				continue
			}

			closed, err := position.Close(bar.Time, bar.Close)
			if err != nil {
				s.logger.Warn("cannot close position, skipping sell",
					zap.String("symbol", symbol),
					zap.Time("date", rec.Date),
					zap.Error(err),
				)

				continue
			}

			trades = append(trades, closed)
			position = nil

		case types.RecommendationHold:
			// No position change.
		}
	}

	var open []types.OpenTrade
	if position != nil {
		open = append(open, *position)
	}

	return trades, open
}
