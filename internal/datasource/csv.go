// Package datasource loads price bars and recommendation histories from
// local files.
package datasource

import (
	"os"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/quantarc/ta-engine/internal/types"
	"github.com/quantarc/ta-engine/pkg/errors"
)

// LoadSeries reads an OHLCV CSV file into a validated PriceSeries. The file
// needs a header row matching the PriceBar csv tags; timestamps are RFC3339.
func LoadSeries(path string) (types.PriceSeries, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.PriceSeries{}, errors.Wrapf(errors.ErrCodeDataNotFound, err, "cannot open CSV file %s", path)
	}
	defer file.Close()

	var bars []types.PriceBar
	if err := gocsv.UnmarshalFile(file, &bars); err != nil {
		return types.PriceSeries{}, errors.Wrapf(errors.ErrCodeInvalidBar, err, "cannot parse CSV file %s", path)
	}

	series, err := types.NewPriceSeries(bars)
	if err != nil {
		return types.PriceSeries{}, errors.Wrapf(errors.GetCode(err), err, "invalid bars in %s", path)
	}

	return series, nil
}

// LoadHistory reads a recommendation history from a YAML file.
func LoadHistory(path string) (types.AnalysisHistory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataNotFound, err, "cannot read history file %s", path)
	}

	var history types.AnalysisHistory
	if err := yaml.Unmarshal(data, &history); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidParameter, err, "cannot parse history file %s", path)
	}

	return history, nil
}
