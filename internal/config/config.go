// Package config loads application configuration from an optional yaml
// file plus INTAKE_-prefixed environment variables, and initializes the
// global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Autosave  AutosaveConfig  `yaml:"autosave" mapstructure:"autosave"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the persistence backend.
type StoreConfig struct {
	// Driver is one of file, sqlite, postgres, memory.
	Driver string `yaml:"driver" mapstructure:"driver"`
	// DataDir holds JSON files for the file driver and the database
	// file for the sqlite driver.
	DataDir     string `yaml:"data_dir" mapstructure:"data_dir"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// DSN returns the driver-appropriate data source string.
func (c StoreConfig) DSN() string {
	if c.Driver == "postgres" {
		return c.DatabaseURL
	}
	return c.DataDir
}

// ServerConfig configures the intake API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// AutosaveConfig configures the debounced saver.
type AutosaveConfig struct {
	DebounceMillis int `yaml:"debounce_ms" mapstructure:"debounce_ms"`
}

// AnthropicConfig holds Anthropic API settings for document drafting.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("INTAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "file")
	v.SetDefault("store.data_dir", "data")
	v.SetDefault("server.port", 3001)
	v.SetDefault("autosave.debounce_ms", 800)
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 8192)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
