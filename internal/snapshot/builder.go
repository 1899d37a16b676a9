// Package snapshot orchestrates the indicator library and level detector
// over one timeframe and classifies the result into a TechnicalSnapshot.
package snapshot

import (
	"fmt"
	"time"

	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/quantarc/ta-engine/internal/indicator"
	"github.com/quantarc/ta-engine/internal/levels"
	"github.com/quantarc/ta-engine/internal/logger"
	"github.com/quantarc/ta-engine/internal/types"
	"github.com/quantarc/ta-engine/pkg/errors"
)

// Builder computes complete technical snapshots for single timeframes.
type Builder struct {
	params   Params
	detector *levels.Detector
	logger   *logger.Logger
}

// NewBuilder creates a Builder with the given params. The logger may not be
// nil; use logger.NewNopLogger to discard diagnostics.
func NewBuilder(params Params, log *logger.Logger) (*Builder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	detector, err := levels.NewDetectorWithParams(params.PivotWindow, params.LevelTolerance, params.MaxLevels)
	if err != nil {
		return nil, err
	}

	return &Builder{
		params:   params,
		detector: detector,
		logger:   log,
	}, nil
}

// NewDefaultBuilder creates a Builder with DefaultParams.
func NewDefaultBuilder(log *logger.Logger) *Builder {
	builder, err := NewBuilder(DefaultParams(), log)
	if err != nil {
		// DefaultParams always validates.
		panic(err)
	}

	return builder
}

// Build computes every indicator and the support/resistance levels for the
// series and classifies trend direction and overall signal strength.
func (b *Builder) Build(symbol string, timeframe types.Timeframe, series types.PriceSeries) (*types.TechnicalSnapshot, error) {
	if series.IsEmpty() {
		return nil, errors.Newf(errors.ErrCodeNoData, "no price data for symbol %s on timeframe %s", symbol, timeframe)
	}

	required, window := b.params.minBars()
	if series.Len() < required {
		return nil, errors.NewInsufficientDataErrorf(required, series.Len(), window, symbol,
			"insufficient data for symbol %s on timeframe %s: %s window needs %d bars, got %d",
			symbol, timeframe, window, required, series.Len())
	}

	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()

	smaShort, err := indicator.SMA(closes, b.params.SMAShortPeriod)
	if err != nil {
		return nil, err
	}

	smaLong, err := indicator.SMA(closes, b.params.SMALongPeriod)
	if err != nil {
		return nil, err
	}

	emaFast, err := indicator.EMA(closes, b.params.EMAFastPeriod)
	if err != nil {
		return nil, err
	}

	emaSlow, err := indicator.EMA(closes, b.params.EMASlowPeriod)
	if err != nil {
		return nil, err
	}

	rsi, err := indicator.RSI(closes, b.params.RSIPeriod)
	if err != nil {
		return nil, err
	}

	macd, err := indicator.MACD(closes, b.params.EMAFastPeriod, b.params.EMASlowPeriod, b.params.MACDSignalPeriod)
	if err != nil {
		return nil, err
	}

	bollinger, err := indicator.BollingerBands(closes, b.params.BollingerPeriod, b.params.BollingerStdDev)
	if err != nil {
		return nil, err
	}

	atr, err := indicator.ATR(highs, lows, closes, b.params.ATRPeriod)
	if err != nil {
		return nil, err
	}

	support, resistance := b.detector.Detect(series)

	price := closes[len(closes)-1]

	snapshot := &types.TechnicalSnapshot{
		Symbol:    symbol,
		Timeframe: timeframe,

		SMAShort: movingAverageValue("sma", b.params.SMAShortPeriod, smaShort.Last(), price),
		SMALong:  movingAverageValue("sma", b.params.SMALongPeriod, smaLong.Last(), price),
		EMAFast:  movingAverageValue("ema", b.params.EMAFastPeriod, emaFast.Last(), price),
		EMASlow:  movingAverageValue("ema", b.params.EMASlowPeriod, emaSlow.Last(), price),

		RSI: types.IndicatorValue{
			Name:   fmt.Sprintf("rsi_%d", b.params.RSIPeriod),
			Value:  rsi.Last(),
			Signal: rsiSignal(rsi.Last()),
			Period: optional.Some(b.params.RSIPeriod),
		},
		MACD: types.MACDValue{
			MACD:      macd.MACD.Last(),
			Signal:    macd.Signal.Last(),
			Histogram: macd.Histogram.Last(),
		},
		Bollinger: types.BollingerValue{
			Upper:  bollinger.Upper.Last(),
			Middle: bollinger.Middle.Last(),
			Lower:  bollinger.Lower.Last(),
		},
		ATR: types.IndicatorValue{
			Name:   fmt.Sprintf("atr_%d", b.params.ATRPeriod),
			Value:  atr.Last(),
			Signal: types.SignalNeutral, // volatility measure, not directional
			Period: optional.Some(b.params.ATRPeriod),
		},

		Support:    support,
		Resistance: resistance,

		DataPoints:  series.Len(),
		GeneratedAt: time.Now().UTC(),
	}

	snapshot.TrendDirection = classifyTrend(price, smaShort.Last(), smaLong.Last(), macd.MACD.Last(), macd.Signal.Last(), rsi.Last())
	snapshot.OverallSignal = overallSignal(price, snapshot)

	b.logger.Debug("snapshot built",
		zap.String("symbol", symbol),
		zap.String("timeframe", string(timeframe)),
		zap.Int("data_points", snapshot.DataPoints),
		zap.String("trend", string(snapshot.TrendDirection)),
		zap.String("signal", string(snapshot.OverallSignal)),
	)

	return snapshot, nil
}

// movingAverageValue classifies price position against a moving average.
func movingAverageValue(kind string, period int, value optional.Option[float64], price float64) types.IndicatorValue {
	signal := types.SignalNeutral

	if value.IsSome() {
		switch {
		case price > value.Unwrap():
			signal = types.SignalBuy
		case price < value.Unwrap():
			signal = types.SignalSell
		}
	}

	return types.IndicatorValue{
		Name:   fmt.Sprintf("%s_%d", kind, period),
		Value:  value,
		Signal: signal,
		Period: optional.Some(period),
	}
}
