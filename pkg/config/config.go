// Package config holds the typed configuration shared by all subcommands.
// Values come from, in increasing precedence: built-in defaults, the config
// file (skillkit-config.yaml in ~/.skillkit or the working directory),
// SKILLKIT_* environment variables, and flags bound by the commands
// themselves.
package config

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the decoded configuration tree.
type Config struct {
	LogLevel  string         `mapstructure:"log_level"`
	LogFormat string         `mapstructure:"log_format"`
	Validate  ValidateConfig `mapstructure:"validate"`
	Compress  CompressConfig `mapstructure:"compress"`
	Scaffold  ScaffoldConfig `mapstructure:"scaffold"`
	Pep8      Pep8Config     `mapstructure:"pep8"`
}

// ValidateConfig configures the validators.
type ValidateConfig struct {
	Format string `mapstructure:"format"` // text or json
}

// CompressConfig configures the prompt compressor.
type CompressConfig struct {
	Level string `mapstructure:"level"` // light, medium, or aggressive
}

// ScaffoldConfig configures project and docs scaffolding.
type ScaffoldConfig struct {
	Author string `mapstructure:"author"`
}

// Pep8Config configures the style-check wrapper.
type Pep8Config struct {
	MaxLineLength int    `mapstructure:"max_line_length"`
	Ignore        string `mapstructure:"ignore"`
}

// SetDefaults registers the built-in defaults on the global viper.
func SetDefaults() {
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "fmt")
	viper.SetDefault("validate.format", "text")
	viper.SetDefault("compress.level", "light")
	viper.SetDefault("scaffold.author", "")
	viper.SetDefault("pep8.max_line_length", 0)
	viper.SetDefault("pep8.ignore", "")
}

// Load decodes the merged viper settings into a Config.
func Load() (*Config, error) {
	var cfg Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building config decoder")
	}
	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &cfg, nil
}
