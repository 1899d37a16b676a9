package types

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quantarc/ta-engine/pkg/errors"
)

type MarketTestSuite struct {
	suite.Suite
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func flatBar(t time.Time, price float64) PriceBar {
	return PriceBar{
		Time:   t,
		Open:   price,
		High:   price,
		Low:    price,
		Close:  price,
		Volume: 1000,
	}
}

func (suite *MarketTestSuite) TestValidateBar() {
	bar := PriceBar{
		Time:   day(0),
		Open:   100,
		High:   105,
		Low:    98,
		Close:  103,
		Volume: 5000,
	}
	suite.NoError(bar.Validate())
}

func (suite *MarketTestSuite) TestValidateBarNaN() {
	bar := flatBar(day(0), 100)
	bar.Close = math.NaN()

	err := bar.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidBar))
}

func (suite *MarketTestSuite) TestValidateBarInfinity() {
	bar := flatBar(day(0), 100)
	bar.High = math.Inf(1)

	suite.Error(bar.Validate())
}

func (suite *MarketTestSuite) TestValidateBarNegativeLow() {
	bar := flatBar(day(0), 100)
	bar.Low = -1

	suite.Error(bar.Validate())
}

func (suite *MarketTestSuite) TestValidateBarHighBelowBody() {
	bar := PriceBar{
		Time:   day(0),
		Open:   100,
		High:   99,
		Low:    95,
		Close:  98,
		Volume: 100,
	}
	suite.Error(bar.Validate())
}

func (suite *MarketTestSuite) TestNewPriceSeriesEmpty() {
	series, err := NewPriceSeries(nil)
	suite.NoError(err)
	suite.True(series.IsEmpty())
	suite.Equal(0, series.Len())

	_, ok := series.LastBar()
	suite.False(ok)
}

func (suite *MarketTestSuite) TestNewPriceSeriesRejectsUnordered() {
	bars := []PriceBar{flatBar(day(1), 100), flatBar(day(0), 101)}

	_, err := NewPriceSeries(bars)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}

func (suite *MarketTestSuite) TestNewPriceSeriesRejectsDuplicateTimestamps() {
	bars := []PriceBar{flatBar(day(0), 100), flatBar(day(0), 101)}

	_, err := NewPriceSeries(bars)
	suite.Error(err)
}

func (suite *MarketTestSuite) TestSeriesIsACopy() {
	bars := []PriceBar{flatBar(day(0), 100), flatBar(day(1), 101)}
	series, err := NewPriceSeries(bars)
	suite.NoError(err)

	bars[0].Close = 42
	suite.Equal(100.0, series.Bar(0).Close)
}

func (suite *MarketTestSuite) TestCloses() {
	bars := []PriceBar{flatBar(day(0), 100), flatBar(day(1), 102), flatBar(day(2), 101)}
	series, err := NewPriceSeries(bars)
	suite.NoError(err)

	suite.Equal([]float64{100, 102, 101}, series.Closes())
	suite.Equal([]float64{100, 102, 101}, series.Highs())
	suite.Equal([]float64{100, 102, 101}, series.Lows())
}

func (suite *MarketTestSuite) TestNearestBarExactMatch() {
	series, err := NewPriceSeries([]PriceBar{flatBar(day(0), 100), flatBar(day(5), 105)})
	suite.NoError(err)

	bar, ok := series.NearestBar(day(5), 7*24*time.Hour)
	suite.True(ok)
	suite.Equal(105.0, bar.Close)
}

func (suite *MarketTestSuite) TestNearestBarWithinTolerance() {
	series, err := NewPriceSeries([]PriceBar{flatBar(day(0), 100), flatBar(day(10), 110)})
	suite.NoError(err)

	// Day 3 is closer to day 0 than to day 10.
	bar, ok := series.NearestBar(day(3), 7*24*time.Hour)
	suite.True(ok)
	suite.Equal(100.0, bar.Close)
}

func (suite *MarketTestSuite) TestNearestBarOutsideTolerance() {
	series, err := NewPriceSeries([]PriceBar{flatBar(day(0), 100)})
	suite.NoError(err)

	_, ok := series.NearestBar(day(30), 7*24*time.Hour)
	suite.False(ok)
}

func (suite *MarketTestSuite) TestNearestBarEmptySeries() {
	var series PriceSeries

	_, ok := series.NearestBar(day(0), 7*24*time.Hour)
	suite.False(ok)
}

func (suite *MarketTestSuite) TestStartEndTime() {
	series, err := NewPriceSeries([]PriceBar{flatBar(day(0), 100), flatBar(day(3), 101)})
	suite.NoError(err)

	suite.Equal(day(0), series.StartTime())
	suite.Equal(day(3), series.EndTime())
}
