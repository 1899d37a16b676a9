package snapshot

import (
	"github.com/go-playground/validator/v10"

	"github.com/quantarc/ta-engine/internal/indicator"
	"github.com/quantarc/ta-engine/internal/levels"
	"github.com/quantarc/ta-engine/pkg/errors"
)

// Params configures every indicator window used by a snapshot build.
type Params struct {
	SMAShortPeriod   int     `yaml:"sma_short_period" json:"sma_short_period" validate:"gt=0"`
	SMALongPeriod    int     `yaml:"sma_long_period" json:"sma_long_period" validate:"gt=0,gtfield=SMAShortPeriod"`
	EMAFastPeriod    int     `yaml:"ema_fast_period" json:"ema_fast_period" validate:"gt=0"`
	EMASlowPeriod    int     `yaml:"ema_slow_period" json:"ema_slow_period" validate:"gt=0,gtfield=EMAFastPeriod"`
	MACDSignalPeriod int     `yaml:"macd_signal_period" json:"macd_signal_period" validate:"gt=0"`
	RSIPeriod        int     `yaml:"rsi_period" json:"rsi_period" validate:"gt=0"`
	BollingerPeriod  int     `yaml:"bollinger_period" json:"bollinger_period" validate:"gt=0"`
	BollingerStdDev  float64 `yaml:"bollinger_std_dev" json:"bollinger_std_dev" validate:"gt=0"`
	ATRPeriod        int     `yaml:"atr_period" json:"atr_period" validate:"gt=0"`
	PivotWindow      int     `yaml:"pivot_window" json:"pivot_window" validate:"gt=0"`
	LevelTolerance   float64 `yaml:"level_tolerance" json:"level_tolerance" validate:"gt=0,lt=1"`
	MaxLevels        int     `yaml:"max_levels" json:"max_levels" validate:"gt=0"`
}

// DefaultParams returns the documented default windows: SMA 20/50,
// MACD 12/26/9, RSI 14, Bollinger 20/2, ATR 14.
func DefaultParams() Params {
	return Params{
		SMAShortPeriod:   20,
		SMALongPeriod:    50,
		EMAFastPeriod:    indicator.DefaultMACDFastPeriod,
		EMASlowPeriod:    indicator.DefaultMACDSlowPeriod,
		MACDSignalPeriod: indicator.DefaultMACDSignalPeriod,
		RSIPeriod:        indicator.DefaultRSIPeriod,
		BollingerPeriod:  indicator.DefaultBollingerPeriod,
		BollingerStdDev:  indicator.DefaultBollingerStdDev,
		ATRPeriod:        indicator.DefaultATRPeriod,
		PivotWindow:      levels.DefaultPivotWindow,
		LevelTolerance:   levels.DefaultTolerance,
		MaxLevels:        levels.DefaultMaxLevels,
	}
}

// Validate validates the Params struct.
func (p Params) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid snapshot params", err)
	}

	return nil
}

// minBars returns the number of bars the longest indicator window requires,
// together with the window's name for error reporting.
func (p Params) minBars() (int, string) {
	required := p.SMALongPeriod
	window := "sma_long"

	if p.EMASlowPeriod > required {
		required = p.EMASlowPeriod
		window = "ema_slow"
	}

	return required, window
}
