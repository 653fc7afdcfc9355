package config

import (
	"github.com/kbukum/utl/errors"
	"github.com/kbukum/utl/logger"
	"github.com/kbukum/utl/observability"
	"github.com/kbukum/utl/validation"
)

// AppName is the application name used for file lookup and env prefixes.
const AppName = "utl"

// DefaultMatch is the match set used when none is configured: ASCII
// whitespace.
const DefaultMatch = " \t\r\n\v\f"

// Config is the full utl configuration.
type Config struct {
	Base      BaseConfig           `yaml:"base" mapstructure:"base"`
	Logging   logger.Config        `yaml:"logging" mapstructure:"logging"`
	Strings   StringsConfig        `yaml:"strings" mapstructure:"strings"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// StringsConfig holds defaults for the string commands.
type StringsConfig struct {
	// DefaultMatch is the match set for commands run without --match.
	DefaultMatch string `yaml:"default_match" mapstructure:"default_match" validate:"required"`
	// IncludeEmpty makes split emit empty spans by default.
	IncludeEmpty bool `yaml:"include_empty" mapstructure:"include_empty"`
	// Output is the default output format.
	Output string `yaml:"output" mapstructure:"output" validate:"oneof=text json yaml"`
}

// ApplyDefaults fills unset fields across all sections.
func (c *Config) ApplyDefaults() {
	c.Base.ApplyDefaults()
	c.Logging.ApplyDefaults()
	if c.Base.Debug {
		c.Logging.Level = "debug"
	}
	if c.Strings.DefaultMatch == "" {
		c.Strings.DefaultMatch = DefaultMatch
	}
	if c.Strings.Output == "" {
		c.Strings.Output = "text"
	}
	if c.Telemetry.Enabled {
		c.Telemetry.ApplyDefaults()
	}
}

// Validate checks struct tags and the logging section.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.Validation(err.Error()).WithCause(err)
	}
	return nil
}

// Default returns a Config with every default applied and nothing loaded.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads, defaults and validates the configuration.
func Load(opts ...LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := LoadConfig(AppName, cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Config(err)
	}
	return cfg, nil
}
