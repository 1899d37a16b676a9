package indicator

import (
	"github.com/quantarc/ta-engine/pkg/errors"
)

// DefaultRSIPeriod is the conventional RSI lookback.
const DefaultRSIPeriod = 14

// RSI calculates the Relative Strength Index over the trailing period
// deltas. The seed window uses a simple average of gains and losses;
// subsequent values use Wilder's smoothing:
//
//	avg = (avg*(period-1) + current) / period
//
// A window with zero average loss reads 100. Output is clamped to [0, 100]
// and absent for index < period.
func RSI(prices []float64, period int) (Line, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	line := make(Line, len(prices))
	if len(prices) < period+1 {
		return line, nil
	}

	avgGain := 0.0
	avgLoss := 0.0

	for i := 1; i <= period; i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss += -change
		}
	}

	avgGain /= float64(period)
	avgLoss /= float64(period)

	line[period] = sanitize(rsiFromAverages(avgGain, avgLoss))

	for i := period + 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]

		gain := 0.0
		loss := 0.0

		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)

		line[i] = sanitize(rsiFromAverages(avgGain, avgLoss))
	}

	return line, nil
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100 // perfect uptrend
	}

	rs := avgGain / avgLoss
	rsi := 100 - (100 / (1 + rs))

	if rsi < 0 {
		return 0
	}

	if rsi > 100 {
		return 100
	}

	return rsi
}
