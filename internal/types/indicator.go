package types

import "github.com/moznion/go-optional"

type IndicatorType string

const (
	IndicatorTypeSMA            IndicatorType = "sma"
	IndicatorTypeEMA            IndicatorType = "ema"
	IndicatorTypeRSI            IndicatorType = "rsi"
	IndicatorTypeMACD           IndicatorType = "macd"
	IndicatorTypeBollingerBands IndicatorType = "bollinger_bands"
	IndicatorTypeATR            IndicatorType = "atr"
)

// IndicatorValue is a single named indicator reading. Value is None when the
// underlying window did not have enough history at the last bar.
type IndicatorValue struct {
	Name   string                  `json:"name" yaml:"name"`
	Value  optional.Option[float64] `json:"value" yaml:"value"`
	Signal SignalStrength          `json:"signal" yaml:"signal"`
	Period optional.Option[int]     `json:"period" yaml:"period"`
}

// MACDValue is the MACD line, signal line and histogram at the last bar.
type MACDValue struct {
	MACD      optional.Option[float64] `json:"macd" yaml:"macd"`
	Signal    optional.Option[float64] `json:"signal" yaml:"signal"`
	Histogram optional.Option[float64] `json:"histogram" yaml:"histogram"`
}

// BollingerValue is the Bollinger band triple at the last bar.
type BollingerValue struct {
	Upper  optional.Option[float64] `json:"upper" yaml:"upper"`
	Middle optional.Option[float64] `json:"middle" yaml:"middle"`
	Lower  optional.Option[float64] `json:"lower" yaml:"lower"`
}
