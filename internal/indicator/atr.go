package indicator

import (
	"math"

	"github.com/quantarc/ta-engine/pkg/errors"
)

// DefaultATRPeriod is the conventional ATR lookback.
const DefaultATRPeriod = 14

// ATR calculates the Average True Range. The true range of the first bar is
// high-low; subsequent bars use
//
//	TR[t] = max(high[t]-low[t], |high[t]-close[t-1]|, |low[t]-close[t-1]|)
//
// The first ATR value is the simple average of the first period true ranges;
// subsequent values use Wilder's smoothing, matching the RSI policy.
func ATR(high, low, close []float64, period int) (Line, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	if len(high) != len(low) || len(low) != len(close) {
		return nil, errors.Newf(errors.ErrCodeIndicatorMismatch,
			"high/low/close arrays must have equal lengths, got %d/%d/%d",
			len(high), len(low), len(close))
	}

	line := make(Line, len(close))
	if len(close) < period {
		return line, nil
	}

	tr := make([]float64, len(close))
	for i := range close {
		if i == 0 {
			tr[i] = high[i] - low[i]
			continue
		}

		tr[i] = math.Max(
			high[i]-low[i],
			math.Max(
				math.Abs(high[i]-close[i-1]),
				math.Abs(low[i]-close[i-1]),
			),
		)
	}

	atr := 0.0
	for i := 0; i < period; i++ {
		atr += tr[i]
	}

	atr /= float64(period)
	line[period-1] = sanitize(atr)

	for i := period; i < len(tr); i++ {
		atr = (atr*float64(period-1) + tr[i]) / float64(period)
		line[i] = sanitize(atr)
	}

	return line, nil
}
