// Package cli implements the themeconf command tree.
package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/inkblue/themeconf/internal/config"
	"github.com/inkblue/themeconf/internal/logging"
)

var (
	cfgFile        string
	projectDir     string
	themeFile      string
	jsonOutput     bool
	jsonlOutput    bool
	noColor        bool
	logLevel       string
	logFormat      string
	nonInteractive bool
	noProgress     bool

	appConfig *config.Config
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "themeconf",
	Short: "Validate, render and serve the design-token theme",
	Long: `themeconf manages the design-token theme consumed by the styling toolchain.

The built-in record is layered with theme.{yaml,json,toml} files from the
system, user and project search paths. The result can be validated, exported
as tailwind.config.js, JSON, YAML, TOML or CSS custom properties, previewed in
the terminal, or served over HTTP with live reload.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: <project>/.themeconf/config.yaml)")
	flags.StringVarP(&projectDir, "project", "C", "", "project directory (default: current directory)")
	flags.StringVarP(&themeFile, "file", "f", "", "read the whole theme from one file instead of layering overlays")
	flags.BoolVar(&jsonOutput, "json", false, "output in JSON format")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output in JSON Lines format")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or open interactive views")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
}

// Execute runs the root command.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}

func initConfig() error {
	cfg, err := config.Load(cfgFile, projectDir)
	if err != nil {
		return err
	}
	if projectDir != "" {
		cfg.ProjectDir = projectDir
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: logging.Format(cfg.Logging.Format),
	}); err != nil {
		return err
	}

	if noColor {
		color.NoColor = true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color.NoColor = true
	}

	appConfig = cfg
	if cfg.Source != "" {
		logger := logging.Component("cli")
		logger.Debug().Str("config", cfg.Source).Msg("config loaded")
	}
	return nil
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was given.
func IsJSONLOutput() bool {
	return jsonlOutput
}
