package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "http://localhost:5000")
	}
	if cfg.API.Timeout != 0 {
		t.Errorf("API.Timeout = %v, want 0", cfg.API.Timeout)
	}
	if cfg.Notify.Duration != 3*time.Second {
		t.Errorf("Notify.Duration = %v, want 3s", cfg.Notify.Duration)
	}
	if cfg.Notify.ErrorDuration != 5*time.Second {
		t.Errorf("Notify.ErrorDuration = %v, want 5s", cfg.Notify.ErrorDuration)
	}
	if cfg.Download.Dir != "." {
		t.Errorf("Download.Dir = %q, want %q", cfg.Download.Dir, ".")
	}
	if cfg.Mock.Addr != ":5000" {
		t.Errorf("Mock.Addr = %q, want %q", cfg.Mock.Addr, ":5000")
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default().Validate() = %v, want no errors", errs)
	}
}

func TestInitWithoutConfigFile(t *testing.T) {
	isolate(t)
	v := viper.New()
	if err := Init(v, ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Notify.ErrorDuration != 5*time.Second {
		t.Errorf("Notify.ErrorDuration = %v", cfg.Notify.ErrorDuration)
	}
}

func TestInitMissingExplicitFile(t *testing.T) {
	isolate(t)
	err := Init(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Init() with a missing explicit file should fail")
	}
}

func TestConfigFileAndEnvPrecedence(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api:
  base_url: http://plans.example:8080
  timeout: 20s
notify:
  duration: 4s
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STUDYPLAN_NOTIFY_DURATION", "7s")
	t.Setenv("STUDYPLAN_DOWNLOAD_DIR", "/tmp/plans")

	v := viper.New()
	if err := Init(v, path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != "http://plans.example:8080" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 20*time.Second {
		t.Errorf("API.Timeout = %v, want 20s", cfg.API.Timeout)
	}
	if cfg.Notify.Duration != 7*time.Second {
		t.Errorf("Notify.Duration = %v, want env override 7s", cfg.Notify.Duration)
	}
	if cfg.Download.Dir != "/tmp/plans" {
		t.Errorf("Download.Dir = %q", cfg.Download.Dir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	isolate(t)
	t.Setenv("STUDYPLAN_API_BASE_URL", "localhost")
	t.Setenv("STUDYPLAN_LOGGING_LEVEL", "chatty")

	v := viper.New()
	if err := Init(v, ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	_, err := Load(v)

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Load() error = %v, want ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Fatalf("got %d validation errors, want 2: %v", len(verrs), verrs)
	}
	if verrs[0].Field != "api.base_url" || verrs[1].Field != "logging.level" {
		t.Errorf("fields = %s, %s", verrs[0].Field, verrs[1].Field)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, "api.timeout"},
		{"zero banner", func(c *Config) { c.Notify.Duration = 0 }, "notify.duration"},
		{"zero error banner", func(c *Config) { c.Notify.ErrorDuration = 0 }, "notify.error_duration"},
		{"blank download dir", func(c *Config) { c.Download.Dir = "  " }, "download.dir"},
		{"no mock addr", func(c *Config) { c.Mock.Addr = "" }, "mock.addr"},
		{"ftp url", func(c *Config) { c.API.BaseURL = "ftp://host" }, "api.base_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if len(errs) != 1 || errs[0].Field != tt.field {
				t.Errorf("Validate() = %v, want one error on %s", errs, tt.field)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "STUDYPLAN_DOTENV_PROBE"
	os.Unsetenv(key)
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=loaded\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadDotEnv(path)
	if err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if !loaded {
		t.Error("LoadDotEnv() reported nothing loaded")
	}
	if got := os.Getenv(key); got != "loaded" {
		t.Errorf("%s = %q, want %q", key, got, "loaded")
	}

	loaded, err = LoadDotEnv(filepath.Join(t.TempDir(), ".env"))
	if err != nil || loaded {
		t.Errorf("LoadDotEnv(missing) = %v, %v; want false, nil", loaded, err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := ConfigFile(), filepath.Join(dir, "studyplan", "config.yaml"); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}
