// Package config provides configuration management for kindling using
// Viper for flexible loading from the project descriptor, environment
// variables, and command-line flags.
//
// The starter keeps all project configuration in a single descriptor
// file, project.yml: identity fields (name, description, author) that
// the setup command personalizes, and the server section the serve
// command reads. Environment variables with the KINDLING_ prefix
// override file values (e.g. KINDLING_SERVER_PORT=8080).
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kindling-dev/kindling/internal/errors"
)

// DescriptorFile is the project descriptor at the project root.
const DescriptorFile = "project.yml"

type Config struct {
	Name        string       `yaml:"name"`
	Version     string       `yaml:"version"`
	Description string       `yaml:"description"`
	Author      string       `yaml:"author"`
	Server      ServerConfig `yaml:"server"`
	Log         LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Port       int      `yaml:"port"`
	Host       string   `yaml:"host"`
	Middleware []string `yaml:"middleware"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load builds a Config from whatever viper has already read (config
// file, environment, bound flags) and applies defaults for anything
// left unset.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Workarounds for viper's handling of nested keys set only via
	// file or environment.
	if viper.IsSet("name") {
		config.Name = viper.GetString("name")
	}
	if viper.IsSet("server.port") {
		config.Server.Port = viper.GetInt("server.port")
	}
	if viper.IsSet("server.host") {
		config.Server.Host = viper.GetString("server.host")
	}
	if viper.IsSet("server.middleware") && len(config.Server.Middleware) == 0 {
		config.Server.Middleware = viper.GetStringSlice("server.middleware")
	}
	if viper.IsSet("log.level") {
		config.Log.Level = viper.GetString("log.level")
	}
	if viper.IsSet("log.format") {
		config.Log.Format = viper.GetString("log.format")
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Name == "" {
		config.Name = "kindling-template"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 3000
	}
	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
	if len(config.Server.Middleware) == 0 {
		config.Server.Middleware = []string{"logger"}
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("invalid server port %d: must be between 1 and 65535", config.Server.Port))
	}
	if config.Server.Host == "" {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, "server host cannot be empty")
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("invalid log format %q: must be text or json", config.Log.Format))
	}

	return nil
}
