package engine

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/quantarc/ta-engine/internal/backtest"
	"github.com/quantarc/ta-engine/internal/snapshot"
	"github.com/quantarc/ta-engine/internal/types"
	"github.com/quantarc/ta-engine/pkg/errors"
)

// Config is the full engine configuration as loaded from YAML.
type Config struct {
	Snapshot   snapshot.Params   `yaml:"snapshot" json:"snapshot" jsonschema:"title=Snapshot Params,description=Indicator windows and level detection settings"`
	Backtest   backtest.Options  `yaml:"backtest" json:"backtest" jsonschema:"title=Backtest Options,description=Position sizing and signal filtering"`
	Timeframes []types.Timeframe `yaml:"timeframes" json:"timeframes" validate:"min=1" jsonschema:"title=Timeframes,description=Bar intervals analyzed per symbol"`
}

// DefaultConfig returns a Config with every knob at its documented default
// and daily plus weekly timeframes.
func DefaultConfig() Config {
	return Config{
		Snapshot:   snapshot.DefaultParams(),
		Backtest:   backtest.DefaultOptions(),
		Timeframes: []types.Timeframe{types.Timeframe1Day, types.Timeframe1Week},
	}
}

// LoadConfig reads and validates a YAML config file. Fields missing from
// the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "cannot read config file %s", path)
	}

	return ParseConfig(data)
}

// ParseConfig parses and validates YAML config bytes.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "cannot parse config YAML", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate validates the Config struct and its nested sections.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	if err := c.Snapshot.Validate(); err != nil {
		return err
	}

	return c.Backtest.Validate()
}

// GenerateSchemaJSON renders the JSON schema for the config file format.
func GenerateSchemaJSON() (string, error) {
	reflector := jsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}

	schema := reflector.Reflect(&Config{})
	schema.Title = "ta-engine-config"
	schema.Description = "Configuration schema for the technical analysis engine"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(out), nil
}
