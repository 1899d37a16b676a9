package indicator

import (
	"github.com/quantarc/ta-engine/pkg/errors"
)

// EMA calculates the exponential moving average of prices over the given
// period. Seeded with the SMA of the first period values, then
// EMA[t] = price[t]*k + EMA[t-1]*(1-k) with k = 2/(period+1), matching the
// pandas ewm(span=period, adjust=False) recurrence.
func EMA(prices []float64, period int) (Line, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	line := make(Line, len(prices))
	if len(prices) < period {
		return line, nil
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += prices[i]
	}

	seed /= float64(period)

	k := 2.0 / float64(period+1)

	ema := seed
	line[period-1] = sanitize(ema)

	for i := period; i < len(prices); i++ {
		ema = prices[i]*k + ema*(1-k)
		line[i] = sanitize(ema)
	}

	return line, nil
}

// emaOverLine runs the EMA recurrence over the present region of a line.
// The input is expected to have one contiguous present run (as produced by
// the indicator functions in this package); output values appear once the
// seed window inside that run is full.
func emaOverLine(input Line, period int) (Line, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	line := make(Line, len(input))

	start := -1

	for i, v := range input {
		if v.IsSome() {
			start = i
			break
		}
	}

	if start == -1 || len(input)-start < period {
		return line, nil
	}

	values := make([]float64, 0, len(input)-start)
	for i := start; i < len(input); i++ {
		if input[i].IsNone() {
			break
		}

		values = append(values, input[i].Unwrap())
	}

	inner, err := EMA(values, period)
	if err != nil {
		return nil, err
	}

	for i, v := range inner {
		line[start+i] = v
	}

	return line, nil
}
