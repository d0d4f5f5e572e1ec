// Package config loads and validates application configuration from YAML
// files and DOHA_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AnalysisMode selects which classifier backs guideline assessment.
type AnalysisMode string

const (
	// ModeNative uses keyword relevance classification only.
	ModeNative AnalysisMode = "native"
	// ModeEnsemble uses the multi-signal scorer, optionally with embeddings.
	ModeEnsemble AnalysisMode = "ensemble"
)

// Config is the root application configuration.
type Config struct {
	Logging    LoggingConfig    `koanf:"logging"`
	Analysis   AnalysisConfig   `koanf:"analysis"`
	Ensemble   EnsembleConfig   `koanf:"ensemble"`
	Embeddings EmbeddingsConfig `koanf:"embeddings"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// AnalysisConfig selects the assessment pipeline.
type AnalysisConfig struct {
	Mode AnalysisMode `koanf:"mode"`
}

// EnsembleConfig holds signal weights and the relevance threshold.
type EnsembleConfig struct {
	Weights   WeightsConfig `koanf:"weights"`
	Threshold float64       `koanf:"threshold"`
}

// WeightsConfig are the relative signal contributions.
type WeightsConfig struct {
	NGram      float64 `koanf:"ngram"`
	TFIDF      float64 `koanf:"tfidf"`
	Semantic   float64 `koanf:"semantic"`
	Contextual float64 `koanf:"contextual"`
}

// EmbeddingsConfig controls the local embedding provider.
type EmbeddingsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Model     string `koanf:"model"`
	CacheDir  string `koanf:"cache_dir"`
	MaxLength int    `koanf:"max_length"`
}

// applyDefaults fills zero-valued fields with defaults.
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Analysis.Mode == "" {
		c.Analysis.Mode = ModeNative
	}
	if c.Ensemble.Threshold == 0 {
		c.Ensemble.Threshold = 0.35
	}
	w := &c.Ensemble.Weights
	if w.NGram == 0 && w.TFIDF == 0 && w.Semantic == 0 && w.Contextual == 0 {
		w.NGram = 0.30
		w.TFIDF = 0.25
		w.Semantic = 0.25
		w.Contextual = 0.20
	}
	if c.Embeddings.Model == "" {
		c.Embeddings.Model = "sentence-transformers/all-MiniLM-L6-v2"
	}
	if c.Embeddings.CacheDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.Embeddings.CacheDir = filepath.Join(home, ".config", "doha", "models")
		}
	}
	if c.Embeddings.MaxLength == 0 {
		c.Embeddings.MaxLength = 512
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	switch c.Analysis.Mode {
	case ModeNative, ModeEnsemble:
	default:
		return fmt.Errorf("analysis.mode must be native or ensemble, got %q", c.Analysis.Mode)
	}

	if c.Ensemble.Threshold <= 0 || c.Ensemble.Threshold >= 1 {
		return fmt.Errorf("ensemble.threshold must be in (0, 1), got %v", c.Ensemble.Threshold)
	}

	w := c.Ensemble.Weights
	for name, v := range map[string]float64{
		"ngram":      w.NGram,
		"tfidf":      w.TFIDF,
		"semantic":   w.Semantic,
		"contextual": w.Contextual,
	} {
		if v < 0 {
			return fmt.Errorf("ensemble.weights.%s must not be negative, got %v", name, v)
		}
	}
	if w.NGram+w.TFIDF+w.Semantic+w.Contextual <= 0 {
		return fmt.Errorf("ensemble.weights must have a positive sum")
	}

	if c.Embeddings.MaxLength < 0 {
		return fmt.Errorf("embeddings.max_length must not be negative, got %d", c.Embeddings.MaxLength)
	}

	return nil
}
