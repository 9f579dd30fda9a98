package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

const (
	DefaultPort          = "3000"
	DefaultEnvironment   = "production"
	DefaultLogLevel      = "info"
	DefaultLogInputLimit = 100
)

var ErrInvalidPort = errors.New("invalid port")

type Config struct {
	Port          string `mapstructure:"PORT"`
	Environment   string `mapstructure:"ENVIRONMENT"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogInputLimit int    `mapstructure:"LOG_INPUT_LIMIT"`
}

// Load reads configuration from the environment, optionally backed by an
// app.env file in path. A missing file is fine; every key has a default.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("ENVIRONMENT", DefaultEnvironment)
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)
	v.SetDefault("LOG_INPUT_LIMIT", DefaultLogInputLimit)

	var config Config

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// Validate checks that the port is a usable TCP port
func (config Config) Validate() error {
	port, err := strconv.Atoi(config.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", ErrInvalidPort, config.Port)
	}
	return nil
}

// Addr is the listen address on all interfaces
func (config Config) Addr() string {
	return ":" + config.Port
}

// IsDevelopment reports whether human-readable console logs are wanted
func (config Config) IsDevelopment() bool {
	return config.Environment == "development"
}
