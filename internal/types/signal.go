package types

// SignalStrength is the 7-point signal scale produced by snapshot analysis.
type SignalStrength string

const (
	SignalStrongBuy  SignalStrength = "strong_buy"
	SignalBuy        SignalStrength = "buy"
	SignalWeakBuy    SignalStrength = "weak_buy"
	SignalNeutral    SignalStrength = "neutral"
	SignalWeakSell   SignalStrength = "weak_sell"
	SignalSell       SignalStrength = "sell"
	SignalStrongSell SignalStrength = "strong_sell"
)

// Score maps a signal onto [-1, 1]. Buy-side signals are positive.
func (s SignalStrength) Score() float64 {
	switch s {
	case SignalStrongBuy:
		return 1.0
	case SignalBuy:
		return 0.5
	case SignalWeakBuy:
		return 0.25
	case SignalWeakSell:
		return -0.25
	case SignalSell:
		return -0.5
	case SignalStrongSell:
		return -1.0
	default:
		return 0
	}
}

// SignalFromScore maps a vote score in [-1, 1] back onto the 7-point scale.
// Scores inside (-0.1, 0.1) are treated as a tie and resolve to neutral.
func SignalFromScore(score float64) SignalStrength {
	switch {
	case score >= 0.6:
		return SignalStrongBuy
	case score >= 0.3:
		return SignalBuy
	case score >= 0.1:
		return SignalWeakBuy
	case score <= -0.6:
		return SignalStrongSell
	case score <= -0.3:
		return SignalSell
	case score <= -0.1:
		return SignalWeakSell
	default:
		return SignalNeutral
	}
}

// TrendDirection classifies the prevailing direction of one timeframe.
type TrendDirection string

const (
	TrendBullish  TrendDirection = "bullish"
	TrendBearish  TrendDirection = "bearish"
	TrendSideways TrendDirection = "sideways"
	TrendUnknown  TrendDirection = "unknown"
)
