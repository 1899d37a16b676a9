// Package engine wires the snapshot builder, aggregator, and simulator into
// a single configurable entry point.
package engine

import (
	"github.com/quantarc/ta-engine/internal/aggregate"
	"github.com/quantarc/ta-engine/internal/backtest"
	"github.com/quantarc/ta-engine/internal/logger"
	"github.com/quantarc/ta-engine/internal/snapshot"
	"github.com/quantarc/ta-engine/internal/types"
)

// Engine is the top-level analysis facade. All methods are safe for
// concurrent use; the engine holds no per-call state.
type Engine struct {
	config     Config
	builder    *snapshot.Builder
	aggregator *aggregate.Aggregator
	simulator  *backtest.Simulator
	logger     *logger.Logger
}

// NewEngine creates an Engine from a validated config.
func NewEngine(config Config, log *logger.Logger) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	builder, err := snapshot.NewBuilder(config.Snapshot, log)
	if err != nil {
		return nil, err
	}

	simulator, err := backtest.NewSimulator(config.Backtest, log)
	if err != nil {
		return nil, err
	}

	return &Engine{
		config:     config,
		builder:    builder,
		aggregator: aggregate.NewAggregator(builder, log),
		simulator:  simulator,
		logger:     log,
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Snapshot computes the technical snapshot for one symbol and timeframe.
func (e *Engine) Snapshot(symbol string, timeframe types.Timeframe, series types.PriceSeries) (*types.TechnicalSnapshot, error) {
	return e.builder.Build(symbol, timeframe, series)
}

// MultiTimeframe analyzes one symbol across several timeframes and merges
// the per-timeframe snapshots into a consensus.
func (e *Engine) MultiTimeframe(symbol string, data map[types.Timeframe]types.PriceSeries) (*types.MultiTimeframeResult, error) {
	return e.aggregator.Analyze(symbol, data)
}

// Backtest replays the named strategy for one symbol.
func (e *Engine) Backtest(symbol string, series types.PriceSeries, params backtest.StrategyParams, history types.AnalysisHistory) (*types.BacktestResult, error) {
	return e.simulator.Run(symbol, series, params, history)
}
