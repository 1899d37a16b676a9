package types

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/quantarc/ta-engine/pkg/errors"
)

type LevelType string

const (
	LevelTypeSupport    LevelType = "support"
	LevelTypeResistance LevelType = "resistance"
)

// SupportResistanceLevel is a clustered price level with repeated historical
// touches. Every reported level was touched at least twice within the
// clustering tolerance.
type SupportResistanceLevel struct {
	Price     float64   `json:"price" yaml:"price" validate:"gt=0"`
	Type      LevelType `json:"type" yaml:"type" validate:"oneof=support resistance"`
	Strength  int       `json:"strength" yaml:"strength" validate:"gte=1,lte=10"`
	Touches   int       `json:"touches" yaml:"touches" validate:"gte=2"`
	LastTouch time.Time `json:"last_touch" yaml:"last_touch"`
}

// Validate validates the SupportResistanceLevel struct.
func (l *SupportResistanceLevel) Validate() error {
	validate := validator.New()
	if err := validate.Struct(l); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidLevel, "invalid support/resistance level", err)
	}

	return nil
}
