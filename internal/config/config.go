package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir     string    `yaml:"data_dir"`
	PlansDir    string    `yaml:"plans_dir"`
	DefaultPlan string    `yaml:"default_plan"`
	Log         LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	JSON   bool   `yaml:"json"`
	Stdout bool   `yaml:"stdout"`
}

// Default returns the configuration used when no file is given. Paths are
// rooted at ~/.workoutsessions.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".workoutsessions")

	return &Config{
		DataDir:  base,
		PlansDir: filepath.Join(base, "plans"),
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(base, "workoutsessions.log"),
		},
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(Default().DataDir, "config.yaml")
}

// Load starts from Default, overlays the YAML file at path if it exists,
// then applies environment variable overrides:
//
//	WORKOUTSESSIONS_DATA_DIR, WORKOUTSESSIONS_PLANS_DIR,
//	WORKOUTSESSIONS_DEFAULT_PLAN, WORKOUTSESSIONS_LOG_LEVEL,
//	WORKOUTSESSIONS_LOG_FILE, WORKOUTSESSIONS_LOG_JSON
//
// A missing file is not an error; an unreadable or malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WORKOUTSESSIONS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("WORKOUTSESSIONS_PLANS_DIR"); v != "" {
		cfg.PlansDir = v
	}
	if v := os.Getenv("WORKOUTSESSIONS_DEFAULT_PLAN"); v != "" {
		cfg.DefaultPlan = v
	}
	if v := os.Getenv("WORKOUTSESSIONS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("WORKOUTSESSIONS_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("WORKOUTSESSIONS_LOG_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.JSON = b
		}
	}
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("log.level %q is not a valid level", c.Log.Level)
	}
	return nil
}
