package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// vidsageYAML represents the complete vidsage.yaml file structure. Every
// section is optional; omitted sections fall back to compiled defaults.
type vidsageYAML struct {
	API       *APIConfig       `yaml:"api"`
	Pipeline  *PipelineConfig  `yaml:"pipeline"`
	Quota     *QuotaConfig     `yaml:"quota"`
	Queue     *QueueConfig     `yaml:"queue"`
	Providers *ProvidersConfig `yaml:"providers"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read vidsage.yaml from configDir (missing file means pure defaults)
//  2. Expand environment variables
//  3. Parse YAML into section structs
//  4. Merge user sections over compiled defaults
//  5. Validate the result
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"tier", cfg.Quota.Tier,
		"max_segment_sec", cfg.Pipeline.MaxSegmentSec,
		"token_estimate_mode", cfg.Quota.TokenEstimateMode,
		"listen_addr", cfg.API.ListenAddr)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	raw, err := readVidsageYAML(configDir)
	if err != nil {
		return nil, NewLoadError("vidsage.yaml", err)
	}

	cfg := &Config{
		configDir: configDir,
		API:       DefaultAPIConfig(),
		Pipeline:  DefaultPipelineConfig(),
		Quota:     DefaultQuotaConfig(),
		Queue:     DefaultQueueConfig(),
		Providers: DefaultProvidersConfig(),
		Retention: DefaultRetentionConfig(),
	}

	// Merge user-provided sections into defaults (non-zero values override).
	sections := []struct {
		name string
		dst  any
		src  any
	}{
		{"api", cfg.API, raw.API},
		{"pipeline", cfg.Pipeline, raw.Pipeline},
		{"quota", cfg.Quota, raw.Quota},
		{"queue", cfg.Queue, raw.Queue},
		{"providers", cfg.Providers, raw.Providers},
		{"retention", cfg.Retention, raw.Retention},
	}
	for _, s := range sections {
		if s.src == nil || isNilPointer(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s config: %w", s.name, err)
		}
	}

	return cfg, nil
}

func isNilPointer(v any) bool {
	switch p := v.(type) {
	case *APIConfig:
		return p == nil
	case *PipelineConfig:
		return p == nil
	case *QuotaConfig:
		return p == nil
	case *QueueConfig:
		return p == nil
	case *ProvidersConfig:
		return p == nil
	case *RetentionConfig:
		return p == nil
	}
	return false
}

// readVidsageYAML loads and parses the config file. A missing file is not
// an error: the compiled defaults describe a fully working single-node
// setup.
func readVidsageYAML(configDir string) (*vidsageYAML, error) {
	var raw vidsageYAML

	path := filepath.Join(configDir, "vidsage.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No config file found, using defaults", "path", path)
			return &raw, nil
		}
		return nil, err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &raw, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	return NewValidator(cfg).ValidateAll()
}
