// Package config provides Viper-based hierarchical configuration:
// defaults, then an optional config.yaml, then RASSROCHKA_* environment
// variables. A .env file is loaded first when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Import struct {
		StrictNumbers    bool `mapstructure:"strict_numbers" yaml:"strict_numbers"`
		MaxSchedulePairs int  `mapstructure:"max_schedule_pairs" yaml:"max_schedule_pairs"`
		MaxRowErrors     int  `mapstructure:"max_row_errors" yaml:"max_row_errors"`
	} `mapstructure:"import" yaml:"import"`

	Data struct {
		StatusesFile string `mapstructure:"statuses_file" yaml:"statuses_file"`
	} `mapstructure:"data" yaml:"data"`
}

var loadEnvOnce sync.Once

// LoadEnv loads environment variables from a .env file if one exists in
// the working directory or its parent.
func LoadEnv() {
	loadEnvOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// InitializeConfig builds the configuration from defaults, an optional
// config file and the environment, then validates it.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.rassrochka-crm")
	v.AddConfigPath(".rassrochka-crm")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RASSROCHKA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file should not stop the CLI; defaults and
			// environment variables still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("import.strict_numbers", false)
	v.SetDefault("import.max_schedule_pairs", 24)
	v.SetDefault("import.max_row_errors", 20)

	v.SetDefault("data.statuses_file", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Import.MaxSchedulePairs < 1 {
		return fmt.Errorf("import.max_schedule_pairs must be at least 1, got: %d", config.Import.MaxSchedulePairs)
	}

	if config.Import.MaxRowErrors < 1 {
		return fmt.Errorf("import.max_row_errors must be at least 1, got: %d", config.Import.MaxRowErrors)
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger from the Config.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
