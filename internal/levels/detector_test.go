package levels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quantarc/ta-engine/internal/types"
)

type DetectorTestSuite struct {
	suite.Suite
}

func TestDetectorSuite(t *testing.T) {
	suite.Run(t, new(DetectorTestSuite))
}

// seriesFromLows builds a valid series whose lows follow the given pattern.
// Highs sit two points above each low, bodies in between, so pivot lows and
// highs land at the same indices.
func (suite *DetectorTestSuite) seriesFromLows(lows []float64) types.PriceSeries {
	bars := make([]types.PriceBar, len(lows))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, low := range lows {
		bars[i] = types.PriceBar{
			Time:   start.AddDate(0, 0, i),
			Open:   low + 1,
			High:   low + 2,
			Low:    low,
			Close:  low + 1,
			Volume: 1000,
		}
	}

	series, err := types.NewPriceSeries(bars)
	suite.Require().NoError(err)

	return series
}

func (suite *DetectorTestSuite) detector() *Detector {
	d, err := NewDetectorWithParams(2, 0.02, 10)
	suite.Require().NoError(err)

	return d
}

func (suite *DetectorTestSuite) TestNewDetectorWithParamsValidation() {
	_, err := NewDetectorWithParams(0, 0.02, 10)
	suite.Error(err)

	_, err = NewDetectorWithParams(2, 0, 10)
	suite.Error(err)

	_, err = NewDetectorWithParams(2, 1.5, 10)
	suite.Error(err)

	_, err = NewDetectorWithParams(2, 0.02, 0)
	suite.Error(err)
}

func (suite *DetectorTestSuite) TestTooShortSeriesYieldsNoLevels() {
	series := suite.seriesFromLows([]float64{100, 101, 102})

	support, resistance := suite.detector().Detect(series)
	suite.Empty(support)
	suite.Empty(resistance)
}

func (suite *DetectorTestSuite) TestSingleTouchIsNotALevel() {
	// One isolated dip to 100; every other candidate has one touch at most.
	lows := []float64{115, 114, 113, 100, 113, 114, 115, 114, 113, 110, 113, 114, 115}
	series := suite.seriesFromLows(lows)

	support, _ := suite.detector().Detect(series)
	// 100 and 110 are 10% apart: two groups of one touch each, no levels.
	suite.Empty(support)
}

func (suite *DetectorTestSuite) TestMergeWithinToleranceProducesLevel() {
	// Dips to 100 and 101 are within the 2% tolerance and merge.
	lows := []float64{105, 104, 103, 100, 103, 104, 105, 104, 103, 101, 103, 104, 105}
	series := suite.seriesFromLows(lows)

	support, _ := suite.detector().Detect(series)
	suite.Require().Len(support, 1)

	level := support[0]
	suite.Equal(2, level.Touches)
	suite.Equal(types.LevelTypeSupport, level.Type)
	suite.InDelta(100.5, level.Price, 1e-9)
	suite.Equal(series.Bar(9).Time, level.LastTouch)
	suite.NoError(level.Validate())
}

func (suite *DetectorTestSuite) TestMergingReducesLevelCount() {
	// Same dip count; only the in-tolerance pair produces a merged group.
	merged := suite.seriesFromLows([]float64{105, 104, 103, 100, 103, 104, 105, 104, 103, 101, 103, 104, 105})
	apart := suite.seriesFromLows([]float64{115, 114, 113, 100, 113, 114, 115, 114, 113, 110, 113, 114, 115})

	mergedSupport, _ := suite.detector().Detect(merged)
	apartSupport, _ := suite.detector().Detect(apart)

	suite.Len(mergedSupport, 1)
	suite.Empty(apartSupport)
}

func (suite *DetectorTestSuite) TestResistanceAboveRecentAverage() {
	// Two peaks near 120 with lows elsewhere around 104.
	lows := []float64{104, 103, 102, 118, 102, 103, 104, 103, 102, 118, 102, 103, 104}
	series := suite.seriesFromLows(lows)

	_, resistance := suite.detector().Detect(series)
	suite.Require().Len(resistance, 1)
	suite.Equal(types.LevelTypeResistance, resistance[0].Type)
	suite.Equal(2, resistance[0].Touches)
	// The peak highs are low+2 = 120.
	suite.InDelta(120.0, resistance[0].Price, 1e-9)
}

func (suite *DetectorTestSuite) TestMoreTouchesMeansMoreStrength() {
	two := suite.seriesFromLows([]float64{105, 104, 103, 100, 103, 104, 105, 104, 103, 101, 103, 104, 105})
	four := suite.seriesFromLows([]float64{105, 104, 103, 100, 103, 104, 105, 103, 101, 104, 105, 104, 103, 100, 103, 104, 105, 104, 103, 101, 103, 104, 105})

	twoSupport, _ := suite.detector().Detect(two)
	fourSupport, _ := suite.detector().Detect(four)

	suite.Require().NotEmpty(twoSupport)
	suite.Require().NotEmpty(fourSupport)
	suite.Greater(fourSupport[0].Touches, twoSupport[0].Touches)
	suite.GreaterOrEqual(fourSupport[0].Strength, twoSupport[0].Strength)
}

func (suite *DetectorTestSuite) TestStrengthBounds() {
	suite.Equal(10, strength(12, 99, 100))
	suite.Equal(1, strength(0, 0, 100))
	suite.GreaterOrEqual(strength(2, 0, 100), 1)
	suite.LessOrEqual(strength(2, 0, 100), 10)
}
