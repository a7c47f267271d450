// Package config loads settings from an optional YAML file plus
// SUPER_SNOOFER_* environment variables. A missing config file is normal;
// defaults always produce a working setup.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the effective runtime configuration.
type Config struct {
	App        AppConfig        `mapstructure:"app" yaml:"app"`
	Fuzzy      FuzzyConfig      `mapstructure:"fuzzy" yaml:"fuzzy"`
	Completion CompletionConfig `mapstructure:"completion" yaml:"completion"`
	Cache      CacheConfig      `mapstructure:"cache" yaml:"cache"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// AppConfig holds application-wide settings.
type AppConfig struct {
	Name string `mapstructure:"name" yaml:"name"`
}

// FuzzyConfig tunes the matcher.
type FuzzyConfig struct {
	Threshold     float64 `mapstructure:"threshold" yaml:"threshold"`
	MaxDistance   int     `mapstructure:"max_distance" yaml:"max_distance"`
	CaseSensitive bool    `mapstructure:"case_sensitive" yaml:"case_sensitive"`
}

// CompletionConfig tunes the completion engine.
type CompletionConfig struct {
	MaxResults int  `mapstructure:"max_results" yaml:"max_results"`
	ScanPath   bool `mapstructure:"scan_path" yaml:"scan_path"`
}

// CacheConfig locates the on-disk store and bounds PATH scan freshness.
type CacheConfig struct {
	Path    string        `mapstructure:"path" yaml:"path"`
	PathTTL time.Duration `mapstructure:"path_ttl" yaml:"path_ttl"`
}

// LoggingConfig tunes diagnostics. Logs go to stderr; stdout belongs to the
// completion protocol.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// envPrefix makes SUPER_SNOOFER_CACHE_PATH override cache.path, and so on
// for every key.
const envPrefix = "SUPER_SNOOFER"

// Load reads the config file (if present) and environment overrides.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "super_snoofer")
	v.SetDefault("fuzzy.threshold", 0.6)
	v.SetDefault("fuzzy.max_distance", 3)
	v.SetDefault("fuzzy.case_sensitive", false)
	v.SetDefault("completion.max_results", 10)
	v.SetDefault("completion.scan_path", true)
	v.SetDefault("cache.path", DefaultCachePath())
	v.SetDefault("cache.path_ttl", 24*time.Hour)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.file", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "super_snoofer"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Only a malformed file is an error; absence means defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultCachePath places the store under the user cache directory, falling
// back to the working directory when the platform offers none.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "super_snoofer.db"
	}
	return filepath.Join(dir, "super_snoofer", "super_snoofer.db")
}
