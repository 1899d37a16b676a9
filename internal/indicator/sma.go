package indicator

import (
	"github.com/quantarc/ta-engine/pkg/errors"
)

// SMA calculates the simple moving average of prices over the given period.
// Entries before index period-1 are absent.
func SMA(prices []float64, period int) (Line, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	line := make(Line, len(prices))

	// Each window is summed independently so a single non-finite input only
	// blanks the windows containing it.
	for i := period - 1; i < len(prices); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += prices[j]
		}

		line[i] = sanitize(sum / float64(period))
	}

	return line, nil
}
