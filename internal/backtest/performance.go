package backtest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quantarc/ta-engine/internal/types"
)

// buildResult derives the summary metrics from a finished replay. Only
// closed trades contribute to the metrics; open positions are carried along
// for reporting.
func buildResult(symbol, strategyName string, trades []types.ClosedTrade, open []types.OpenTrade) *types.BacktestResult {
	result := &types.BacktestResult{
		ID:            uuid.New().String(),
		Timestamp:     time.Now().UTC(),
		Symbol:        symbol,
		StrategyName:  strategyName,
		Trades:        trades,
		OpenPositions: open,
		TotalTrades:   len(trades),
	}

	if len(trades) == 0 {
		return result
	}

	holdDays := 0

	for _, trade := range trades {
		switch pl := trade.ProfitLoss(); {
		case pl > 0:
			result.WinningTrades++
		case pl < 0:
			result.LosingTrades++
		}

		holdDays += trade.HoldDays()
	}

	result.WinRate = float64(result.WinningTrades) / float64(result.TotalTrades) * 100
	result.TotalReturn = totalReturn(trades)
	result.AvgHoldDays = float64(holdDays) / float64(result.TotalTrades)

	return result
}

// totalReturn is the capital-weighted sum of per-trade return percentages:
// each trade's return weighted by its share of the total committed capital.
func totalReturn(trades []types.ClosedTrade) float64 {
	totalSize := decimal.Zero
	for _, trade := range trades {
		totalSize = totalSize.Add(decimal.NewFromFloat(trade.PositionSize))
	}

	if totalSize.IsZero() {
		return 0
	}

	weighted := decimal.Zero

	for _, trade := range trades {
		weight := decimal.NewFromFloat(trade.PositionSize).Div(totalSize)
		weighted = weighted.Add(decimal.NewFromFloat(trade.ReturnPct()).Mul(weight))
	}

	out, _ := weighted.Float64()

	return out
}
