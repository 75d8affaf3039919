package retrieval

import (
	"testing"

	"linkstash/models"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }},
		{"chunk size over embedding limit", func(c *Config) { c.ChunkSize = embeddingInputLimit + 1 }},
		{"overlap >= chunk size", func(c *Config) { c.ChunkOverlap = c.ChunkSize }},
		{"zero dimension", func(c *Config) { c.Dimension = 0 }},
		{"similarity >= 1", func(c *Config) { c.MinSimilarity = 1 }},
		{"similarity < -1", func(c *Config) { c.MinSimilarity = -1.5 }},
		{"zero topK", func(c *Config) { c.TopK = 0 }},
		{"zero fetch timeout", func(c *Config) { c.FetchTimeout = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			if err := cfg.validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestDefaultConfigReferenceValues(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dimension != 1536 {
		t.Errorf("Dimension = %d, want 1536", cfg.Dimension)
	}
	if cfg.Dimension != models.EmbeddingDimension {
		t.Errorf("Dimension = %d, out of sync with the chunk column's %d", cfg.Dimension, models.EmbeddingDimension)
	}
	if cfg.MinSimilarity != 0.5 {
		t.Errorf("MinSimilarity = %v, want 0.5", cfg.MinSimilarity)
	}
	if cfg.TopK != 4 {
		t.Errorf("TopK = %d, want 4", cfg.TopK)
	}
	if cfg.FetchTimeout <= 0 {
		t.Errorf("FetchTimeout = %v, want positive", cfg.FetchTimeout)
	}
}
