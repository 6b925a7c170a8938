// Package config provides configuration loading and validation for the
// zipper CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidWidth    = errors.New("max value width must be positive")
)

// Output format names accepted by the CLI.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatPlain = "plain"
)

// Default configuration values.
const (
	DefaultFormat        = FormatTable
	DefaultColor         = true
	DefaultMaxValueWidth = 48
	DefaultLogLevel      = "info"
)

// Config holds all configuration for the zipper CLI.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig holds output rendering configuration.
type OutputConfig struct {
	Format        string `mapstructure:"format"`
	MaxValueWidth int    `mapstructure:"max_value_width"`
	Color         bool   `mapstructure:"color"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from the given file, or from
// .zipper.yaml in the working directory or the home directory when no
// path is given. A missing default file is not an error; defaults apply.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(".zipper")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME")
	}

	viperCfg.SetEnvPrefix("ZIPPER")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// LogLevel converts the configured level name to a slog.Level.
func (config *Config) LogLevel() slog.Level {
	switch strings.ToLower(config.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("output.format", DefaultFormat)
	viperCfg.SetDefault("output.color", DefaultColor)
	viperCfg.SetDefault("output.max_value_width", DefaultMaxValueWidth)
	viperCfg.SetDefault("logging.level", DefaultLogLevel)
}

func validateConfig(config *Config) error {
	switch config.Output.Format {
	case FormatTable, FormatJSON, FormatPlain:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Output.Format)
	}

	if config.Output.MaxValueWidth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, config.Output.MaxValueWidth)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	return nil
}
