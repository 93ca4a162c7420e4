// Package cmd provides the command-line interface for kindling.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --port, etc.) - highest priority
//	2. KINDLING_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (KINDLING_SERVER_PORT, etc.)
//	4. The project descriptor (project.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kindling-dev/kindling/internal/config"
	"github.com/kindling-dev/kindling/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kindling",
	Short: "A project-starter template for Go HTTP backends",
	Long: `Kindling is a project-starter template for Go HTTP backends. A fresh
checkout is personalized once with the interactive setup command, then
serves as a minimal, ready-to-extend API server.

Quick Start:
  kindling setup                  Personalize this template checkout (one-shot)
  kindling serve                  Start the HTTP server
  kindling version                Show version information

All project configuration lives in project.yml; environment variables
with the KINDLING_ prefix override file values.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is project.yml, can also use KINDLING_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
//
// Loading priority (highest to lowest):
//  1. --config flag: explicitly specified config file path
//  2. KINDLING_CONFIG_FILE environment variable
//  3. Default: project.yml in the current directory
//
// Environment variables with the KINDLING_ prefix override file values,
// e.g. KINDLING_SERVER_PORT=8080.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("KINDLING_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("project")
	}

	viper.SetEnvPrefix("KINDLING")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or unreadable descriptor is not fatal here: commands
	// that need it fail with their own, more specific errors.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the process logger from the loaded configuration.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
}
