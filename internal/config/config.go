// Package config loads studyplan settings from flags, STUDYPLAN_* environment
// variables, an optional YAML file and built-in defaults.
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

// EnvPrefix is prepended to every environment override,
// e.g. STUDYPLAN_API_BASE_URL for api.base_url.
const EnvPrefix = "STUDYPLAN"

// Config is the complete application configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Download DownloadConfig `mapstructure:"download"`
	Store    StoreConfig    `mapstructure:"store"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Mock     MockConfig     `mapstructure:"mock"`
}

// APIConfig points the client at the plan backend.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`

	// Timeout bounds each request. Zero leaves it to the transport.
	Timeout time.Duration `mapstructure:"timeout"`
}

// NotifyConfig controls how long notification banners stay visible.
type NotifyConfig struct {
	Duration      time.Duration `mapstructure:"duration"`
	ErrorDuration time.Duration `mapstructure:"error_duration"`
}

// DownloadConfig controls where PDFs are written.
type DownloadConfig struct {
	Dir string `mapstructure:"dir"`
}

// StoreConfig locates the local history database. An empty path uses the
// XDG data directory.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig controls the log file. An empty file uses the XDG state
// directory.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// MockConfig configures the offline stub backend.
type MockConfig struct {
	Addr string `mapstructure:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000",
		},
		Notify: NotifyConfig{
			Duration:      3 * time.Second,
			ErrorDuration: 5 * time.Second,
		},
		Download: DownloadConfig{Dir: "."},
		Logging:  LoggingConfig{Level: "info"},
		Mock:     MockConfig{Addr: ":5000"},
	}
}

// SetDefaults registers every key on v so env overrides and Unmarshal see
// them even without a config file.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.timeout", d.API.Timeout)

	v.SetDefault("notify.duration", d.Notify.Duration)
	v.SetDefault("notify.error_duration", d.Notify.ErrorDuration)

	v.SetDefault("download.dir", d.Download.Dir)
	v.SetDefault("store.path", d.Store.Path)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)

	v.SetDefault("mock.addr", d.Mock.Addr)
}

// Init prepares v: defaults, environment overrides and the config file.
// A missing default config file is not an error; a missing explicit one is.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// LoadDotEnv loads variables from the given .env files, or ./.env when none
// are named. Variables already set in the environment win. It reports
// whether a file was loaded; a missing file is not an error.
func LoadDotEnv(files ...string) (bool, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return false, nil
	}
	if err := godotenv.Load(present...); err != nil {
		return false, fmt.Errorf("load %s: %w", strings.Join(present, ", "), err)
	}
	return true, nil
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "studyplan")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studyplan"
	}
	return filepath.Join(home, ".config", "studyplan")
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
