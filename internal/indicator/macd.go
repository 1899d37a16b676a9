package indicator

import (
	"github.com/quantarc/ta-engine/pkg/errors"
)

// Default MACD periods.
const (
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9
)

// MACDResult holds the MACD line, its signal line and the histogram.
type MACDResult struct {
	MACD      Line
	Signal    Line
	Histogram Line
}

// MACD calculates the Moving Average Convergence Divergence:
// macd = EMA(fast) - EMA(slow), signal = EMA(macd, signalPeriod),
// histogram = macd - signal. The histogram is present exactly where both
// the MACD and signal lines are.
func MACD(prices []float64, fastPeriod, slowPeriod, signalPeriod int) (MACDResult, error) {
	if fastPeriod <= 0 || slowPeriod <= 0 || signalPeriod <= 0 {
		return MACDResult{}, errors.Newf(errors.ErrCodeInvalidPeriod,
			"MACD periods must be positive integers, got fast=%d slow=%d signal=%d",
			fastPeriod, slowPeriod, signalPeriod)
	}

	if fastPeriod >= slowPeriod {
		return MACDResult{}, errors.Newf(errors.ErrCodeInvalidPeriod,
			"fast period %d must be shorter than slow period %d", fastPeriod, slowPeriod)
	}

	fast, err := EMA(prices, fastPeriod)
	if err != nil {
		return MACDResult{}, err
	}

	slow, err := EMA(prices, slowPeriod)
	if err != nil {
		return MACDResult{}, err
	}

	macd := make(Line, len(prices))
	for i := range prices {
		if bothPresent(fast, slow, i) {
			macd[i] = sanitize(fast[i].Unwrap() - slow[i].Unwrap())
		}
	}

	signal, err := emaOverLine(macd, signalPeriod)
	if err != nil {
		return MACDResult{}, err
	}

	histogram := make(Line, len(prices))
	for i := range prices {
		if bothPresent(macd, signal, i) {
			histogram[i] = sanitize(macd[i].Unwrap() - signal[i].Unwrap())
		}
	}

	return MACDResult{
		MACD:      macd,
		Signal:    signal,
		Histogram: histogram,
	}, nil
}
