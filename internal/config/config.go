// Package config loads themeconf settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. THEMECONF_SERVE_ADDR.
const EnvPrefix = "THEMECONF"

// DirName is the per-project and per-user configuration directory name.
const DirName = ".themeconf"

// Config is the resolved application configuration.
type Config struct {
	ProjectDir string        `mapstructure:"project_dir"`
	Theme      ThemeConfig   `mapstructure:"theme"`
	Export     ExportConfig  `mapstructure:"export"`
	Serve      ServeConfig   `mapstructure:"serve"`
	Logging    LoggingConfig `mapstructure:"logging"`

	// Source is the config file that was read, if any.
	Source string `mapstructure:"-"`
}

// ThemeConfig selects the theme files layered over the built-in record.
type ThemeConfig struct {
	Files []string `mapstructure:"files"`
	// SkipSearchPaths ignores the project/user/system overlay directories.
	SkipSearchPaths bool `mapstructure:"skip_search_paths"`
}

// ExportConfig controls `themeconf export`.
type ExportConfig struct {
	OutDir  string   `mapstructure:"out_dir"`
	Formats []string `mapstructure:"formats"`
}

// ServeConfig controls `themeconf serve`.
type ServeConfig struct {
	Addr     string        `mapstructure:"addr"`
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ProjectDir: ".",
		Export: ExportConfig{
			OutDir:  ".",
			Formats: []string{"js"},
		},
		Serve: ServeConfig{
			Addr:     "127.0.0.1:7420",
			Debounce: 200 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("theme.files", []string{})
	v.SetDefault("theme.skip_search_paths", false)
	v.SetDefault("export.out_dir", def.Export.OutDir)
	v.SetDefault("export.formats", def.Export.Formats)
	v.SetDefault("serve.addr", def.Serve.Addr)
	v.SetDefault("serve.watch", def.Serve.Watch)
	v.SetDefault("serve.debounce", def.Serve.Debounce)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}

// SearchPaths returns config directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 2)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, DirName))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "themeconf"))
	}
	return paths
}

// Load reads configuration. An explicit path must exist; otherwise
// config.{yaml,toml,json} is looked up in SearchPaths(projectDir), with an
// empty projectDir meaning the working directory, and a missing file is not
// an error. Environment variables override both.
func Load(path, projectDir string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	if projectDir == "" {
		projectDir = DefaultConfig().ProjectDir
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		for _, dir := range SearchPaths(projectDir) {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = projectDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the commands cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Serve.Addr) == "" {
		return errors.New("config serve.addr is required")
	}
	if c.Serve.Debounce < 0 {
		return fmt.Errorf("config serve.debounce must not be negative, got %s", c.Serve.Debounce)
	}
	if len(c.Export.Formats) == 0 {
		return errors.New("config export.formats must name at least one format")
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("config logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// loadDotEnv reads ./.env without overriding variables already set.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
