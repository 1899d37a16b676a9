package backtest

import (
	"github.com/quantarc/ta-engine/internal/types"
	"github.com/quantarc/ta-engine/pkg/errors"
)

// Strategy names accepted by Run.
const (
	StrategyRecommendation = "recommendation"
	StrategySMACrossover   = "sma_crossover"
)

// StrategyParams selects a strategy and its tuning knobs. Periods is keyed
// by parameter name ("short_period", "long_period"); missing keys fall back
// to the strategy defaults.
type StrategyParams struct {
	Name    string         `yaml:"name" json:"name"`
	Periods map[string]int `yaml:"periods,omitempty" json:"periods,omitempty"`
}

func (p StrategyParams) period(key string, fallback int) int {
	if v, ok := p.Periods[key]; ok {
		return v
	}

	return fallback
}

// Run dispatches to the named strategy. The recommendation strategy uses the
// supplied history; the crossover strategy ignores it.
func (s *Simulator) Run(symbol string, series types.PriceSeries, params StrategyParams, history types.AnalysisHistory) (*types.BacktestResult, error) {
	switch params.Name {
	case StrategyRecommendation:
		return s.RunRecommendations(symbol, series, history)
	case StrategySMACrossover:
		short := params.period("short_period", DefaultCrossoverShortPeriod)
		long := params.period("long_period", DefaultCrossoverLongPeriod)

		return s.RunSMACrossover(symbol, series, short, long)
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedStrategy, "unsupported strategy %q", params.Name)
	}
}
