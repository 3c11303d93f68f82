package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// Artifact sources
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds service settings. Values come from an optional YAML file,
// then environment variables override them.
type Config struct {
	Port string `yaml:"port"`
	Env  string `yaml:"env"`

	Artifact struct {
		Source string `yaml:"source"`
		Path   string `yaml:"path"`
		Name   string `yaml:"name"`
	} `yaml:"artifact"`

	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`

	Prediction struct {
		CacheSize int `yaml:"cache_size"`
	} `yaml:"prediction"`

	Report struct {
		Language string `yaml:"language"`
	} `yaml:"report"`

	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		Port: "8080",
		Env:  "development",
	}
	cfg.Artifact.Source = SourceFile
	cfg.Artifact.Path = "models/ckd_classifier.json"
	cfg.Artifact.Name = "ckd"
	cfg.Prediction.CacheSize = 1024
	cfg.Report.Language = "en"
	cfg.Log.Level = "info"
	return cfg
}

// Load reads the YAML file at path (a missing file is ignored),
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("GO_ENV", cfg.Env)
	cfg.Artifact.Source = getEnv("ARTIFACT_SOURCE", cfg.Artifact.Source)
	cfg.Artifact.Path = getEnv("ARTIFACT_PATH", cfg.Artifact.Path)
	cfg.Artifact.Name = getEnv("ARTIFACT_NAME", cfg.Artifact.Name)
	cfg.Database.URL = getEnv("DATABASE_URL", cfg.Database.URL)
	cfg.Report.Language = getEnv("REPORT_LANG", cfg.Report.Language)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("LOG_FILE", cfg.Log.File)

	if v := os.Getenv("PREDICTION_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: PREDICTION_CACHE_SIZE: %w", err)
		}
		cfg.Prediction.CacheSize = n
	}

	return nil
}

// Validate rejects settings the service cannot start with
func (c *Config) Validate() error {
	switch c.Artifact.Source {
	case SourceFile:
		if c.Artifact.Path == "" {
			return errors.New("config: artifact path is required for file source")
		}
	case SourcePostgres:
		if c.Database.URL == "" {
			return errors.New("config: DATABASE_URL is required for postgres artifact source")
		}
		if c.Artifact.Name == "" {
			return errors.New("config: artifact name is required for postgres source")
		}
	default:
		return fmt.Errorf("config: unknown artifact source %q", c.Artifact.Source)
	}

	if c.Prediction.CacheSize < 0 {
		return errors.New("config: prediction cache size must not be negative")
	}
	if _, err := language.Parse(c.Report.Language); err != nil {
		return fmt.Errorf("config: invalid report language %q: %w", c.Report.Language, err)
	}

	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
