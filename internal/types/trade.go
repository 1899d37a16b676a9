package types

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantarc/ta-engine/pkg/errors"
)

type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

// OpenTrade is a position that has been entered but not yet exited. Closing
// it produces a ClosedTrade value; the OpenTrade itself is never mutated, so
// a position can only be closed once by construction.
type OpenTrade struct {
	Symbol         string    `json:"symbol" yaml:"symbol"`
	EntryDate      time.Time `json:"entry_date" yaml:"entry_date"`
	EntryPrice     float64   `json:"entry_price" yaml:"entry_price"`
	PositionSize   float64   `json:"position_size" yaml:"position_size"`
	Side           TradeSide `json:"side" yaml:"side"`
	StrategySignal string    `json:"strategy_signal" yaml:"strategy_signal"`
}

// Close produces the ClosedTrade for this position.
func (t OpenTrade) Close(exitDate time.Time, exitPrice float64) (ClosedTrade, error) {
	if exitPrice <= 0 {
		return ClosedTrade{}, errors.Newf(errors.ErrCodeInvalidTrade, "exit price must be positive, got %f", exitPrice)
	}

	if exitDate.Before(t.EntryDate) {
		return ClosedTrade{}, errors.Newf(errors.ErrCodeInvalidTrade,
			"exit date %s is before entry date %s",
			exitDate.Format(time.RFC3339), t.EntryDate.Format(time.RFC3339))
	}

	return ClosedTrade{
		OpenTrade: t,
		ExitDate:  exitDate,
		ExitPrice: exitPrice,
	}, nil
}

// ClosedTrade is a completed round trip: an OpenTrade plus its exit.
type ClosedTrade struct {
	OpenTrade `yaml:",inline"`

	ExitDate  time.Time `json:"exit_date" yaml:"exit_date"`
	ExitPrice float64   `json:"exit_price" yaml:"exit_price"`
}

// ReturnPct is (exit/entry - 1) * 100.
func (t ClosedTrade) ReturnPct() float64 {
	if t.EntryPrice == 0 {
		return 0
	}

	ret := decimal.NewFromFloat(t.ExitPrice).
		Div(decimal.NewFromFloat(t.EntryPrice)).
		Sub(decimal.NewFromInt(1)).
		Mul(decimal.NewFromInt(100))

	out, _ := ret.Float64()

	return out
}

// ProfitLoss is the notional P&L: position size times the fractional return.
func (t ClosedTrade) ProfitLoss() float64 {
	pl := decimal.NewFromFloat(t.PositionSize).
		Mul(decimal.NewFromFloat(t.ReturnPct())).
		Div(decimal.NewFromInt(100))

	out, _ := pl.Float64()

	return out
}

// HoldDays is the holding period in whole days.
func (t ClosedTrade) HoldDays() int {
	return int(t.ExitDate.Sub(t.EntryDate).Hours() / 24)
}
