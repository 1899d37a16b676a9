package snapshot

import (
	"github.com/moznion/go-optional"

	"github.com/quantarc/ta-engine/internal/types"
)

// Vote weights for the overall signal. Momentum indicators carry slightly
// more weight than the band position.
const (
	rsiWeight       = 1.0
	macdWeight      = 1.25
	bollingerWeight = 0.75
	smaWeight       = 1.0
)

// classifyTrend determines the prevailing direction: bullish when price sits
// above both moving averages with momentum confirmation, bearish under the
// symmetric opposite, sideways in between. Unknown when any required input
// is absent.
func classifyTrend(price float64, smaShort, smaLong, macdLine, macdSignal, rsi optional.Option[float64]) types.TrendDirection {
	if smaShort.IsNone() || smaLong.IsNone() {
		return types.TrendUnknown
	}

	if macdLine.IsNone() || macdSignal.IsNone() {
		if rsi.IsNone() {
			return types.TrendUnknown
		}
	}

	momentumUp := false
	momentumDown := false

	if macdLine.IsSome() && macdSignal.IsSome() {
		momentumUp = macdLine.Unwrap() > macdSignal.Unwrap()
		momentumDown = macdLine.Unwrap() < macdSignal.Unwrap()
	}

	if rsi.IsSome() {
		momentumUp = momentumUp || rsi.Unwrap() > 50
		momentumDown = momentumDown || rsi.Unwrap() < 50
	}

	aboveBoth := price > smaShort.Unwrap() && price > smaLong.Unwrap()
	belowBoth := price < smaShort.Unwrap() && price < smaLong.Unwrap()

	switch {
	case aboveBoth && momentumUp:
		return types.TrendBullish
	case belowBoth && momentumDown:
		return types.TrendBearish
	default:
		return types.TrendSideways
	}
}

// overallSignal combines the indicator-level readings into the 7-point
// scale via a weighted vote. Indicators without a value abstain; a tie
// resolves to neutral.
func overallSignal(price float64, snap *types.TechnicalSnapshot) types.SignalStrength {
	totalScore := 0.0
	totalWeight := 0.0

	if snap.RSI.Value.IsSome() {
		totalScore += rsiSignal(snap.RSI.Value).Score() * rsiWeight
		totalWeight += rsiWeight
	}

	if snap.MACD.MACD.IsSome() && snap.MACD.Signal.IsSome() {
		totalScore += macdSignal(snap.MACD).Score() * macdWeight
		totalWeight += macdWeight
	}

	if snap.Bollinger.Upper.IsSome() && snap.Bollinger.Lower.IsSome() {
		totalScore += bollingerSignal(price, snap.Bollinger).Score() * bollingerWeight
		totalWeight += bollingerWeight
	}

	if snap.SMAShort.Value.IsSome() && snap.SMALong.Value.IsSome() {
		totalScore += smaCrossSignal(snap.SMAShort.Value.Unwrap(), snap.SMALong.Value.Unwrap()).Score() * smaWeight
		totalWeight += smaWeight
	}

	if totalWeight == 0 {
		return types.SignalNeutral
	}

	return types.SignalFromScore(totalScore / totalWeight)
}

// rsiSignal maps the RSI reading onto the signal scale: deeply oversold
// reads strong buy, deeply overbought strong sell.
func rsiSignal(value optional.Option[float64]) types.SignalStrength {
	if value.IsNone() {
		return types.SignalNeutral
	}

	rsi := value.Unwrap()

	switch {
	case rsi < 20:
		return types.SignalStrongBuy
	case rsi < 30:
		return types.SignalBuy
	case rsi > 80:
		return types.SignalStrongSell
	case rsi > 70:
		return types.SignalSell
	default:
		return types.SignalNeutral
	}
}

func macdSignal(macd types.MACDValue) types.SignalStrength {
	switch {
	case macd.MACD.Unwrap() > macd.Signal.Unwrap():
		return types.SignalBuy
	case macd.MACD.Unwrap() < macd.Signal.Unwrap():
		return types.SignalSell
	default:
		return types.SignalNeutral
	}
}

// bollingerSignal reads price position against the bands: touching the lower
// band is a buy, touching the upper band a sell.
func bollingerSignal(price float64, bands types.BollingerValue) types.SignalStrength {
	switch {
	case price <= bands.Lower.Unwrap():
		return types.SignalBuy
	case price >= bands.Upper.Unwrap():
		return types.SignalSell
	default:
		return types.SignalNeutral
	}
}

func smaCrossSignal(short, long float64) types.SignalStrength {
	switch {
	case short > long:
		return types.SignalBuy
	case short < long:
		return types.SignalSell
	default:
		return types.SignalNeutral
	}
}
