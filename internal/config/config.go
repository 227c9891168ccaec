package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds harness settings shared by the textbench binaries
type Config struct {
	DBPath     string `yaml:"db"        env:"TEXTBENCH_DB"        env-default:"textbench.db"`
	LogLevel   string `yaml:"log_level" env:"TEXTBENCH_LOG_LEVEL" env-default:"info"`
	LFSK       uint   `yaml:"lfs_k"     env:"TEXTBENCH_LFS_K"     env-default:"20"`
	MinN       int    `yaml:"min_n"     env:"TEXTBENCH_MIN_N"     env-default:"10"`
	PreviewLen int    `yaml:"preview"   env:"TEXTBENCH_PREVIEW"   env-default:"80"`
	Spinner    bool   `yaml:"spinner"   env:"TEXTBENCH_SPINNER"   env-default:"true"`
}

// Load reads .env (if present), then an optional YAML file named by
// TEXTBENCH_CONFIG, then environment variables. Priority: ENV > YAML > defaults.
func Load() (*Config, error) {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	var cfg Config

	if path := os.Getenv("TEXTBENCH_CONFIG"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.MinN < 1 {
		return fmt.Errorf("min_n must be positive, got %d", c.MinN)
	}
	if c.PreviewLen < 0 {
		return fmt.Errorf("preview must not be negative, got %d", c.PreviewLen)
	}
	if _, err := log.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// NewLogger builds the stderr logger every binary uses
func NewLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
