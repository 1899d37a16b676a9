package snapshot

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/quantarc/ta-engine/internal/types"
)

type TrendTestSuite struct {
	suite.Suite
}

func TestTrendSuite(t *testing.T) {
	suite.Run(t, new(TrendTestSuite))
}

func some(v float64) optional.Option[float64] {
	return optional.Some(v)
}

func none() optional.Option[float64] {
	return optional.None[float64]()
}

func (suite *TrendTestSuite) TestClassifyTrendUnknownWithoutMovingAverages() {
	suite.Equal(types.TrendUnknown, classifyTrend(100, none(), some(95), some(1), some(0), some(60)))
	suite.Equal(types.TrendUnknown, classifyTrend(100, some(95), none(), some(1), some(0), some(60)))
}

func (suite *TrendTestSuite) TestClassifyTrendUnknownWithoutMomentumInputs() {
	suite.Equal(types.TrendUnknown, classifyTrend(100, some(95), some(90), none(), none(), none()))
}

func (suite *TrendTestSuite) TestClassifyTrendBullish() {
	// Above both averages with MACD above its signal line.
	suite.Equal(types.TrendBullish, classifyTrend(100, some(95), some(90), some(2), some(1), none()))
	// Above both averages with RSI confirmation only.
	suite.Equal(types.TrendBullish, classifyTrend(100, some(95), some(90), none(), none(), some(65)))
}

func (suite *TrendTestSuite) TestClassifyTrendBearish() {
	suite.Equal(types.TrendBearish, classifyTrend(80, some(95), some(90), some(-2), some(-1), none()))
	suite.Equal(types.TrendBearish, classifyTrend(80, some(95), some(90), none(), none(), some(35)))
}

func (suite *TrendTestSuite) TestClassifyTrendSideways() {
	// Above both averages but momentum points the other way.
	suite.Equal(types.TrendSideways, classifyTrend(100, some(95), some(90), some(-2), some(-1), none()))
	// Between the averages.
	suite.Equal(types.TrendSideways, classifyTrend(92, some(95), some(90), some(2), some(1), some(60)))
}

func (suite *TrendTestSuite) TestRSISignalBands() {
	suite.Equal(types.SignalStrongBuy, rsiSignal(some(15)))
	suite.Equal(types.SignalBuy, rsiSignal(some(25)))
	suite.Equal(types.SignalNeutral, rsiSignal(some(50)))
	suite.Equal(types.SignalSell, rsiSignal(some(75)))
	suite.Equal(types.SignalStrongSell, rsiSignal(some(85)))
	suite.Equal(types.SignalNeutral, rsiSignal(none()))
}

func (suite *TrendTestSuite) TestBollingerSignal() {
	bands := types.BollingerValue{Upper: some(110), Middle: some(100), Lower: some(90)}

	suite.Equal(types.SignalBuy, bollingerSignal(89, bands))
	suite.Equal(types.SignalBuy, bollingerSignal(90, bands))
	suite.Equal(types.SignalNeutral, bollingerSignal(100, bands))
	suite.Equal(types.SignalSell, bollingerSignal(110, bands))
	suite.Equal(types.SignalSell, bollingerSignal(115, bands))
}

func (suite *TrendTestSuite) TestSMACrossSignal() {
	suite.Equal(types.SignalBuy, smaCrossSignal(105, 100))
	suite.Equal(types.SignalSell, smaCrossSignal(95, 100))
	suite.Equal(types.SignalNeutral, smaCrossSignal(100, 100))
}

func (suite *TrendTestSuite) TestOverallSignalAbstainsWhenEmpty() {
	snap := &types.TechnicalSnapshot{}
	suite.Equal(types.SignalNeutral, overallSignal(100, snap))
}

func (suite *TrendTestSuite) TestOverallSignalUnanimousBuy() {
	snap := &types.TechnicalSnapshot{
		RSI:       types.IndicatorValue{Value: some(25)},
		MACD:      types.MACDValue{MACD: some(2), Signal: some(1), Histogram: some(1)},
		Bollinger: types.BollingerValue{Upper: some(110), Middle: some(100), Lower: some(95)},
		SMAShort:  types.IndicatorValue{Value: some(96)},
		SMALong:   types.IndicatorValue{Value: some(92)},
	}

	// Price at the lower band: every component votes buy or better.
	suite.Equal(types.SignalBuy, overallSignal(94, snap))
}

func (suite *TrendTestSuite) TestOverallSignalMixedVotesAreNeutral() {
	snap := &types.TechnicalSnapshot{
		RSI:       types.IndicatorValue{Value: some(75)}, // sell
		MACD:      types.MACDValue{MACD: some(2), Signal: some(1), Histogram: some(1)}, // buy
		Bollinger: types.BollingerValue{Upper: some(110), Middle: some(100), Lower: some(90)},
		SMAShort:  types.IndicatorValue{Value: some(99)},
		SMALong:   types.IndicatorValue{Value: some(101)},
	}

	// rsi sell (-0.5), macd buy (+0.5*1.25), bollinger neutral, sma sell (-0.5):
	// weighted average lands in the neutral band.
	suite.Equal(types.SignalNeutral, overallSignal(100, snap))
}
