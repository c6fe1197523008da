// Package config provides configuration management for the feedback pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is tried when no -config flag is given.
const DefaultPath = "configs/pipeline.yaml"

// Configuration validation errors.
var (
	ErrInvalidScaleMin         = errors.New("scale.min must be non-negative")
	ErrScaleMinExceedsMax      = errors.New("scale.min must be less than scale.max")
	ErrMissingRawPath          = errors.New("paths.raw is required")
	ErrMissingNormalizedPath   = errors.New("paths.normalized is required")
	ErrMissingProcessedPath    = errors.New("paths.processed is required")
	ErrMissingReportsDir       = errors.New("paths.reports_dir is required")
	ErrInvalidDifficultyTiers  = errors.New("transform difficulty tiers must be strictly increasing")
	ErrInvalidPerformanceTiers = errors.New("transform.performance_good_min must not exceed performance_excellent_min")
	ErrInvalidTopN             = errors.New("analysis.top_n must be at least 1")
	ErrInvalidPageSize         = errors.New("dashboard.page_size must be at least 1")
	ErrInvalidLogLevel         = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Scale     ScaleConfig     `yaml:"scale"`
	Paths     PathsConfig     `yaml:"paths"`
	Transform TransformConfig `yaml:"transform"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ScaleConfig defines the rating scale bounds. Ratings outside [Min, Max]
// are rejected during extraction.
type ScaleConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether v falls within the scale.
func (s ScaleConfig) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// PathsConfig defines the file locations the stages read and write.
type PathsConfig struct {
	Raw        string `yaml:"raw"`
	Normalized string `yaml:"normalized"`
	Processed  string `yaml:"processed"`
	ReportsDir string `yaml:"reports_dir"`
}

// TransformConfig defines cleaning defaults and the derived-field tiers.
type TransformConfig struct {
	DefaultDepartment string `yaml:"default_department"`
	DefaultSemester   string `yaml:"default_semester"`

	DifficultyEasyMax     int `yaml:"difficulty_easy_max"`
	DifficultyModerateMax int `yaml:"difficulty_moderate_max"`
	DifficultyHardMax     int `yaml:"difficulty_hard_max"`

	PerformanceExcellentMin float64 `yaml:"performance_excellent_min"`
	PerformanceGoodMin      float64 `yaml:"performance_good_min"`
}

// AnalysisConfig defines reporting behavior.
type AnalysisConfig struct {
	TopN int `yaml:"top_n"`
}

// DashboardConfig defines interactive display behavior.
type DashboardConfig struct {
	PageSize int `yaml:"page_size"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		Scale: ScaleConfig{Min: 1, Max: 5},
		Paths: PathsConfig{
			Raw:        "data/raw/student_feedback.csv",
			Normalized: "data/normalized/normalized_feedback.csv",
			Processed:  "data/processed/processed_feedback.csv",
			ReportsDir: "reports",
		},
		Transform: TransformConfig{
			DefaultDepartment:       "General",
			DefaultSemester:         "Unknown",
			DifficultyEasyMax:       2,
			DifficultyModerateMax:   3,
			DifficultyHardMax:       4,
			PerformanceExcellentMin: 4.0,
			PerformanceGoodMin:      3.0,
		},
		Analysis:  AnalysisConfig{TopN: 5},
		Dashboard: DashboardConfig{PageSize: 15},
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Load loads configuration from a YAML file. Fields absent from the file
// keep their default values.
func Load(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the file at path when given, falls back to the default
// path when that file exists, and otherwise returns the built-in defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}

	return Default(), nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Scale.Min < 0 {
		return ErrInvalidScaleMin
	}

	if c.Scale.Min >= c.Scale.Max {
		return ErrScaleMinExceedsMax
	}

	if c.Paths.Raw == "" {
		return ErrMissingRawPath
	}

	if c.Paths.Normalized == "" {
		return ErrMissingNormalizedPath
	}

	if c.Paths.Processed == "" {
		return ErrMissingProcessedPath
	}

	if c.Paths.ReportsDir == "" {
		return ErrMissingReportsDir
	}

	t := c.Transform
	if t.DifficultyEasyMax >= t.DifficultyModerateMax || t.DifficultyModerateMax >= t.DifficultyHardMax {
		return ErrInvalidDifficultyTiers
	}

	if t.PerformanceGoodMin > t.PerformanceExcellentMin {
		return ErrInvalidPerformanceTiers
	}

	if c.Analysis.TopN < 1 {
		return ErrInvalidTopN
	}

	if c.Dashboard.PageSize < 1 {
		return ErrInvalidPageSize
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Scale: %d-%d, Raw: %s, Reports: %s}",
		c.Scale.Min,
		c.Scale.Max,
		c.Paths.Raw,
		c.Paths.ReportsDir,
	)
}
