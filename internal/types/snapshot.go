package types

import "time"

// Timeframe tags one bar interval, e.g. "1d" or "1h". The engine treats it
// as an opaque label; callers decide which intervals they feed in.
type Timeframe string

const (
	Timeframe1Hour  Timeframe = "1h"
	Timeframe4Hour  Timeframe = "4h"
	Timeframe1Day   Timeframe = "1d"
	Timeframe1Week  Timeframe = "1wk"
	Timeframe1Month Timeframe = "1mo"
)

// TechnicalSnapshot is the complete derived state of one timeframe. It is
// created once per analysis call and never mutated afterwards.
type TechnicalSnapshot struct {
	Symbol    string    `json:"symbol" yaml:"symbol"`
	Timeframe Timeframe `json:"timeframe" yaml:"timeframe"`

	SMAShort IndicatorValue `json:"sma_short" yaml:"sma_short"`
	SMALong  IndicatorValue `json:"sma_long" yaml:"sma_long"`
	EMAFast  IndicatorValue `json:"ema_fast" yaml:"ema_fast"`
	EMASlow  IndicatorValue `json:"ema_slow" yaml:"ema_slow"`

	RSI       IndicatorValue `json:"rsi" yaml:"rsi"`
	MACD      MACDValue      `json:"macd" yaml:"macd"`
	Bollinger BollingerValue `json:"bollinger" yaml:"bollinger"`
	ATR       IndicatorValue `json:"atr" yaml:"atr"`

	Support    []SupportResistanceLevel `json:"support" yaml:"support"`
	Resistance []SupportResistanceLevel `json:"resistance" yaml:"resistance"`

	TrendDirection TrendDirection `json:"trend_direction" yaml:"trend_direction"`
	OverallSignal  SignalStrength `json:"overall_signal" yaml:"overall_signal"`

	DataPoints  int       `json:"data_points" yaml:"data_points"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// KeyLevels is the merged set of level prices across timeframes.
type KeyLevels struct {
	Support    []float64 `json:"support" yaml:"support"`
	Resistance []float64 `json:"resistance" yaml:"resistance"`
}

// MultiTimeframeResult is the outcome of analyzing one symbol across several
// timeframes. Failures holds the error text for timeframes whose snapshot
// could not be computed; the remaining timeframes are still populated.
type MultiTimeframeResult struct {
	Symbol          string                            `json:"symbol" yaml:"symbol"`
	Snapshots       map[Timeframe]*TechnicalSnapshot  `json:"snapshots" yaml:"snapshots"`
	Failures        map[Timeframe]string              `json:"failures,omitempty" yaml:"failures,omitempty"`
	ConsensusSignal SignalStrength                    `json:"consensus_signal" yaml:"consensus_signal"`
	TrendAlignment  bool                              `json:"trend_alignment" yaml:"trend_alignment"`
	KeyLevels       KeyLevels                         `json:"key_levels" yaml:"key_levels"`
}
