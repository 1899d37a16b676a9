package backtest

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/quantarc/ta-engine/pkg/errors"
)

// Options controls position sizing and signal filtering for a simulation.
type Options struct {
	// PositionSize is the notional capital committed to each entry.
	PositionSize float64 `yaml:"position_size" json:"position_size" validate:"gt=0"`
	// MinConfidence filters recommendations below this confidence.
	MinConfidence float64 `yaml:"min_confidence" json:"min_confidence" validate:"gte=0,lte=100"`
	// PriceTolerance bounds how far a recommendation date may sit from the
	// nearest bar before the recommendation is skipped.
	PriceTolerance time.Duration `yaml:"price_tolerance" json:"price_tolerance" validate:"gt=0"`
}

// DefaultOptions returns the documented defaults: 10,000 per position,
// confidence floor 60, one week of price tolerance.
func DefaultOptions() Options {
	return Options{
		PositionSize:   10000,
		MinConfidence:  60,
		PriceTolerance: 7 * 24 * time.Hour,
	}
}

// UnmarshalYAML implements custom unmarshaling for Options so the price
// tolerance can be written as a duration string ("168h") and omitted fields
// keep their defaults.
func (o *Options) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type raw struct {
		PositionSize   *float64 `yaml:"position_size"`
		MinConfidence  *float64 `yaml:"min_confidence"`
		PriceTolerance string   `yaml:"price_tolerance"`
	}

	var parsed raw
	if err := unmarshal(&parsed); err != nil {
		return err
	}

	*o = DefaultOptions()

	if parsed.PositionSize != nil {
		o.PositionSize = *parsed.PositionSize
	}

	if parsed.MinConfidence != nil {
		o.MinConfidence = *parsed.MinConfidence
	}

	if parsed.PriceTolerance != "" {
		tolerance, err := time.ParseDuration(parsed.PriceTolerance)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid price_tolerance %q", parsed.PriceTolerance)
		}

		o.PriceTolerance = tolerance
	}

	return nil
}

// Validate validates the Options struct.
func (o Options) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid backtest options", err)
	}

	return nil
}
