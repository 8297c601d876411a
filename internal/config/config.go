// Package config provides configuration management for the data preparation run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"uidaiprep/internal/models"
)

// Default values used when no configuration file is given.
const (
	DefaultBaseDir         = ".."
	DefaultBiometricDir    = "api_data_aadhar_biometric"
	DefaultDemographicDir  = "api_data_aadhar_demographic"
	DefaultEnrolmentDir    = "api_data_aadhar_enrolment"
	DefaultOutputDir       = "public/data"
	DefaultMaxDailyRecords = 100000
	DefaultSampleSeed      = 42
	DefaultLogLevel        = "info"
)

// Configuration validation errors.
var (
	ErrMissingBaseDir         = errors.New("source.base_dir is required")
	ErrMissingFamilyDir       = errors.New("every family directory is required")
	ErrMissingOutputDir       = errors.New("output.dir is required")
	ErrInvalidMaxDailyRecords = errors.New("sampling.max_daily_records must be at least 1")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete preparation configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Output   OutputConfig   `yaml:"output"`
	Sampling SamplingConfig `yaml:"sampling"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// SourceConfig locates the raw CSV chunks of each family.
type SourceConfig struct {
	BaseDir        string `yaml:"base_dir"`
	BiometricDir   string `yaml:"biometric_dir"`
	DemographicDir string `yaml:"demographic_dir"`
	EnrolmentDir   string `yaml:"enrolment_dir"`
}

// OutputConfig defines where artifacts are written.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// SamplingConfig bounds the size of district_daily.json.
type SamplingConfig struct {
	MaxDailyRecords int    `yaml:"max_daily_records"`
	Seed            uint64 `yaml:"seed"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig defines the optional Prometheus textfile output.
type MetricsConfig struct {
	TextfilePath string `yaml:"textfile_path"`
}

// Default returns the fixed configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			BaseDir:        DefaultBaseDir,
			BiometricDir:   DefaultBiometricDir,
			DemographicDir: DefaultDemographicDir,
			EnrolmentDir:   DefaultEnrolmentDir,
		},
		Output: OutputConfig{
			Dir: DefaultOutputDir,
		},
		Sampling: SamplingConfig{
			MaxDailyRecords: DefaultMaxDailyRecords,
			Seed:            DefaultSampleSeed,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of Default.
func LoadConfig(filepath string) (*Config, error) {
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

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
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
	if c.Source.BaseDir == "" {
		return ErrMissingBaseDir
	}

	for _, family := range models.Families {
		if c.Source.Dir(family) == "" {
			return fmt.Errorf("%w: %s", ErrMissingFamilyDir, family)
		}
	}

	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	if c.Sampling.MaxDailyRecords < 1 {
		return ErrInvalidMaxDailyRecords
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Dir returns the subdirectory name configured for family.
func (s SourceConfig) Dir(family models.Family) string {
	switch family {
	case models.Biometric:
		return s.BiometricDir
	case models.Demographic:
		return s.DemographicDir
	case models.Enrolment:
		return s.EnrolmentDir
	default:
		return ""
	}
}

// Path returns the full source directory of family.
func (s SourceConfig) Path(family models.Family) string {
	return filepath.Join(s.BaseDir, s.Dir(family))
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Source: %s, Output: %s, MaxDailyRecords: %d, Seed: %d}",
		c.Source.BaseDir,
		c.Output.Dir,
		c.Sampling.MaxDailyRecords,
		c.Sampling.Seed,
	)
}
