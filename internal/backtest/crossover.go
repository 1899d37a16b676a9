package backtest

import (
	"github.com/quantarc/ta-engine/internal/indicator"
	"github.com/quantarc/ta-engine/internal/types"
)

// Default moving-average windows for the crossover strategy.
const (
	DefaultCrossoverShortPeriod = 20
	DefaultCrossoverLongPeriod  = 50
)

// RunSMACrossover replays a classic moving-average crossover: the short SMA
// crossing above the long opens a position, crossing below closes it. The
// same single-position discipline as the recommendation strategy applies.
func (s *Simulator) RunSMACrossover(symbol string, series types.PriceSeries, shortPeriod, longPeriod int) (*types.BacktestResult, error) {
	trades, open, err := s.replayCrossover(symbol, series, shortPeriod, longPeriod)
	if err != nil {
		return nil, err
	}

	return buildResult(symbol, StrategySMACrossover, trades, open), nil
}

func (s *Simulator) replayCrossover(symbol string, series types.PriceSeries, shortPeriod, longPeriod int) ([]types.ClosedTrade, []types.OpenTrade, error) {
	if series.IsEmpty() {
		return nil, nil, nil
	}

	closes := series.Closes()

	short, err := indicator.SMA(closes, shortPeriod)
	if err != nil {
		return nil, nil, err
	}

	long, err := indicator.SMA(closes, longPeriod)
	if err != nil {
		return nil, nil, err
	}

	var trades []types.ClosedTrade

	var position *types.OpenTrade

	for i := 0; i < series.Len(); i++ {
		bar := series.Bar(i)

		switch {
		case indicator.CrossAbove(short, long, i):
			if position != nil {
				continue
			}

			position = &types.OpenTrade{
				Symbol:         symbol,
				EntryDate:      bar.Time,
				EntryPrice:     bar.Close,
				PositionSize:   s.options.PositionSize,
				Side:           types.TradeSideBuy,
				StrategySignal: "sma_cross_up",
			}

		case indicator.CrossBelow(short, long, i):
			if position == nil {
				continue
			}

			closed, err := position.Close(bar.Time, bar.Close)
			if err != nil {
				return nil, nil, err
			}

			trades = append(trades, closed)
			position = nil
		}
	}

	var open []types.OpenTrade
	if position != nil {
		open = append(open, *position)
	}

	return trades, open, nil
}
