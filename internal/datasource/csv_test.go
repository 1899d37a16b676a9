package datasource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/quantarc/ta-engine/internal/types"
	"github.com/quantarc/ta-engine/pkg/errors"
)

type DataSourceTestSuite struct {
	suite.Suite

	dir string
}

func TestDataSourceSuite(t *testing.T) {
	suite.Run(t, new(DataSourceTestSuite))
}

func (suite *DataSourceTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *DataSourceTestSuite) write(name, content string) string {
	path := filepath.Join(suite.dir, name)
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0644))

	return path
}

func (suite *DataSourceTestSuite) TestLoadSeries() {
	path := suite.write("bars.csv", `time,open,high,low,close,volume
2024-01-01T00:00:00Z,100,101,99,100.5,1000
2024-01-02T00:00:00Z,100.5,102,100,101.5,1200
`)

	series, err := LoadSeries(path)
	suite.Require().NoError(err)
	suite.Equal(2, series.Len())
	suite.Equal(100.5, series.Bar(0).Close)
	suite.Equal(1200.0, series.Bar(1).Volume)
}

func (suite *DataSourceTestSuite) TestLoadSeriesMissingFile() {
	_, err := LoadSeries(filepath.Join(suite.dir, "missing.csv"))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataNotFound))
}

func (suite *DataSourceTestSuite) TestLoadSeriesRejectsMalformedBar() {
	path := suite.write("bad.csv", `time,open,high,low,close,volume
2024-01-01T00:00:00Z,100,99,99,100.5,1000
`)

	_, err := LoadSeries(path)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidBar))
}

func (suite *DataSourceTestSuite) TestLoadSeriesRejectsUnorderedBars() {
	path := suite.write("unordered.csv", `time,open,high,low,close,volume
2024-01-02T00:00:00Z,100,101,99,100.5,1000
2024-01-01T00:00:00Z,100,101,99,100.5,1000
`)

	_, err := LoadSeries(path)
	suite.Error(err)
}

func (suite *DataSourceTestSuite) TestLoadHistory() {
	path := suite.write("history.yaml", `
- date: 2024-01-01T00:00:00Z
  action: buy
  confidence: 90
- date: 2024-01-10T00:00:00Z
  action: sell
  confidence: 85
`)

	history, err := LoadHistory(path)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(types.RecommendationBuy, history[0].Action)
	suite.Equal(85.0, history[1].Confidence)
}

func (suite *DataSourceTestSuite) TestLoadHistoryMissingFile() {
	_, err := LoadHistory(filepath.Join(suite.dir, "missing.yaml"))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataNotFound))
}
