package indicator

import (
	"math"

	"github.com/quantarc/ta-engine/pkg/errors"
)

// Default Bollinger Band parameters.
const (
	DefaultBollingerPeriod = 20
	DefaultBollingerStdDev = 2.0
)

// BollingerResult holds the three Bollinger band lines.
type BollingerResult struct {
	Upper  Line
	Middle Line
	Lower  Line
}

// BollingerBands calculates Bollinger Bands: the middle band is the SMA over
// period, the upper and lower bands sit k population standard deviations
// above and below it.
func BollingerBands(prices []float64, period int, k float64) (BollingerResult, error) {
	if period <= 0 {
		return BollingerResult{}, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	if k <= 0 {
		return BollingerResult{}, errors.Newf(errors.ErrCodeInvalidStdDev, "stdDev multiplier must be positive, got %f", k)
	}

	middle, err := SMA(prices, period)
	if err != nil {
		return BollingerResult{}, err
	}

	upper := make(Line, len(prices))
	lower := make(Line, len(prices))

	for i := period - 1; i < len(prices); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += prices[j]
		}

		mean := sum / float64(period)

		// Population standard deviation over the same window.
		sumSq := 0.0
		for j := i - period + 1; j <= i; j++ {
			diff := prices[j] - mean
			sumSq += diff * diff
		}

		stdev := math.Sqrt(sumSq / float64(period))

		upper[i] = sanitize(mean + k*stdev)
		lower[i] = sanitize(mean - k*stdev)
	}

	return BollingerResult{
		Upper:  upper,
		Middle: middle,
		Lower:  lower,
	}, nil
}
