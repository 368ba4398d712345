package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v3"

	"github.com/ruminaider/job-browser/internal/apperr"
	"github.com/ruminaider/job-browser/internal/batch"
	"github.com/ruminaider/job-browser/internal/browser"
	"github.com/ruminaider/job-browser/internal/render"
	"github.com/ruminaider/job-browser/internal/source"
)

// CurrentVersion is written by Default and config init.
const CurrentVersion = "1"

// Environment overrides.
const (
	EnvSource   = "JOB_BROWSER_SOURCE"
	EnvLogLevel = "JOB_BROWSER_LOG_LEVEL"
)

// Config represents ~/.job-browser/config.yaml.
type Config struct {
	Version         string        `yaml:"version"`
	Source          string        `yaml:"source" validate:"required"`
	Timeout         time.Duration `yaml:"timeout" validate:"gte=0"`
	Batch           BatchConfig   `yaml:"batch"`
	Render          RenderConfig  `yaml:"render"`
	ScrollThreshold int           `yaml:"scroll_threshold" validate:"gte=0,lte=200"`
	Log             LogConfig     `yaml:"log"`
	MetricsAddr     string        `yaml:"metrics_addr,omitempty" validate:"omitempty,hostname_port"`
}

// BatchConfig sizes the incremental list.
type BatchConfig struct {
	Initial int           `yaml:"initial" validate:"gte=0,lte=999"`
	Size    int           `yaml:"size" validate:"gte=0,lte=999"`
	Delay   time.Duration `yaml:"delay" validate:"gte=0"`
}

// RenderConfig times the card transitions.
type RenderConfig struct {
	Transition time.Duration `yaml:"transition" validate:"gte=0"`
	Stagger    time.Duration `yaml:"stagger" validate:"gte=0"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

var validate = validator.New()

// Default returns a config with every field at its default.
func Default() Config {
	return Config{
		Version: CurrentVersion,
		Source:  source.DemoLocation,
		Timeout: source.DefaultTimeout,
		Batch: BatchConfig{
			Initial: batch.DefaultInitialSize,
			Size:    batch.DefaultBatchSize,
			Delay:   batch.DefaultDelay,
		},
		Render: RenderConfig{
			Transition: render.DefaultTransitionDelay,
			Stagger:    render.DefaultStaggerDelay,
		},
		ScrollThreshold: browser.DefaultScrollThreshold,
		Log:             LogConfig{Level: "info"},
	}
}

// Parse parses config.yaml bytes on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks field constraints.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return apperr.InvalidInput("invalid config", err)
	}
	return nil
}

// Load reads the config at path, falling back to defaults when the file does
// not exist, then applies .env files and environment overrides and validates
// the result.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if cfg, err = Parse(data); err != nil {
			return Config{}, apperr.InvalidInput("reading "+path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := LoadEnvFiles(envFiles...); err != nil {
		return Config{}, err
	}
	cfg = ApplyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadEnvFiles loads each existing .env file into the process environment.
// Variables already set are not overwritten; missing files are skipped.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from the environment.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv(EnvSource); v != "" {
		cfg.Source = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	return cfg
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// BatchOptions converts the batch section for the planner.
func (c Config) BatchOptions() batch.Options {
	return batch.Options{InitialSize: c.Batch.Initial, BatchSize: c.Batch.Size, Delay: c.Batch.Delay}
}

// RenderOptions converts the render section for the reconciler.
func (c Config) RenderOptions() render.Options {
	return render.Options{TransitionDelay: c.Render.Transition, StaggerDelay: c.Render.Stagger}
}
