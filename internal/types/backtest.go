package types

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RecommendationAction is an externally supplied trading recommendation.
type RecommendationAction string

const (
	RecommendationBuy  RecommendationAction = "buy"
	RecommendationSell RecommendationAction = "sell"
	RecommendationHold RecommendationAction = "hold"
)

// Recommendation is one dated recommendation with a confidence in [0, 100].
type Recommendation struct {
	Date       time.Time            `json:"date" yaml:"date"`
	Action     RecommendationAction `json:"action" yaml:"action"`
	Confidence float64              `json:"confidence" yaml:"confidence"`
}

// AnalysisHistory is a chronological list of recommendations.
type AnalysisHistory []Recommendation

// BacktestResult summarizes one simulated strategy run. It is derived
// entirely from the trade list and the benchmark price series; once built it
// is never mutated.
type BacktestResult struct {
	// ID is the unique identifier for this backtest run.
	ID string `yaml:"id" json:"id"`
	// Timestamp is when this backtest run was executed.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	// Symbol of the instrument.
	Symbol string `yaml:"symbol" json:"symbol"`
	// StrategyName identifies the simulated strategy.
	StrategyName string `yaml:"strategy_name" json:"strategy_name"`

	// Trades holds every closed round trip, in entry order.
	Trades []ClosedTrade `yaml:"trades" json:"trades"`
	// OpenPositions holds positions still open at the simulation end. They
	// are excluded from the closed-trade metrics below.
	OpenPositions []OpenTrade `yaml:"open_positions,omitempty" json:"open_positions,omitempty"`

	// Count of all closed trades.
	TotalTrades int `yaml:"total_trades" json:"total_trades"`
	// Count of closed trades with positive P&L.
	WinningTrades int `yaml:"winning_trades" json:"winning_trades"`
	// Count of closed trades with negative P&L.
	LosingTrades int `yaml:"losing_trades" json:"losing_trades"`
	// Win rate as a percentage of closed trades.
	WinRate float64 `yaml:"win_rate" json:"win_rate"`
	// Capital-weighted sum of per-trade return percentages.
	TotalReturn float64 `yaml:"total_return" json:"total_return"`
	// Mean holding period of closed trades in whole days.
	AvgHoldDays float64 `yaml:"avg_hold_days" json:"avg_hold_days"`
}

// WriteBacktestResults writes the results to path as YAML.
func WriteBacktestResults(path string, results []BacktestResult) error {
	data, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal backtest results to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backtest results to file: %w", err)
	}

	return nil
}
