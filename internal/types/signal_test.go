package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SignalTestSuite struct {
	suite.Suite
}

func TestSignalSuite(t *testing.T) {
	suite.Run(t, new(SignalTestSuite))
}

func (suite *SignalTestSuite) TestScoreSymmetry() {
	suite.Equal(-SignalStrongBuy.Score(), SignalStrongSell.Score())
	suite.Equal(-SignalBuy.Score(), SignalSell.Score())
	suite.Equal(-SignalWeakBuy.Score(), SignalWeakSell.Score())
	suite.Equal(0.0, SignalNeutral.Score())
}

func (suite *SignalTestSuite) TestSignalFromScore() {
	suite.Equal(SignalStrongBuy, SignalFromScore(0.8))
	suite.Equal(SignalBuy, SignalFromScore(0.4))
	suite.Equal(SignalWeakBuy, SignalFromScore(0.15))
	suite.Equal(SignalNeutral, SignalFromScore(0.0))
	suite.Equal(SignalWeakSell, SignalFromScore(-0.15))
	suite.Equal(SignalSell, SignalFromScore(-0.4))
	suite.Equal(SignalStrongSell, SignalFromScore(-0.8))
}

func (suite *SignalTestSuite) TestSignalFromScoreTieIsNeutral() {
	suite.Equal(SignalNeutral, SignalFromScore(0.05))
	suite.Equal(SignalNeutral, SignalFromScore(-0.05))
}

func (suite *SignalTestSuite) TestRoundTripThroughScore() {
	for _, s := range []SignalStrength{
		SignalStrongBuy, SignalBuy, SignalWeakBuy, SignalNeutral,
		SignalWeakSell, SignalSell, SignalStrongSell,
	} {
		suite.Equal(s, SignalFromScore(s.Score()))
	}
}
