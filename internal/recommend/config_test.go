// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import (
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}

	if cfg.Weights.Content != 0.7 || cfg.Weights.Collaborative != 0.3 {
		t.Errorf("hybrid weights = %v/%v, want 0.7/0.3",
			cfg.Weights.Content, cfg.Weights.Collaborative)
	}
	if cfg.Weights.Interests != 0.6 || cfg.Weights.Skills != 0.4 {
		t.Errorf("matching weights = %v/%v, want 0.6/0.4",
			cfg.Weights.Interests, cfg.Weights.Skills)
	}
	if cfg.Content.MaxFeatures != 5000 {
		t.Errorf("MaxFeatures = %d, want 5000", cfg.Content.MaxFeatures)
	}
	if cfg.Latent.Components != 50 {
		t.Errorf("Components = %d, want 50", cfg.Latent.Components)
	}
	if cfg.Matching.MinScore != 0.1 {
		t.Errorf("MinScore = %v, want 0.1", cfg.Matching.MinScore)
	}
	if cfg.Trends.WindowDays != 180 {
		t.Errorf("WindowDays = %d, want 180", cfg.Trends.WindowDays)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "negative hybrid weight", mutate: func(c *Config) { c.Weights.Content = -0.1 }, wantErr: true},
		{name: "negative matching weight", mutate: func(c *Config) { c.Weights.Skills = -1 }, wantErr: true},
		{name: "zero max features", mutate: func(c *Config) { c.Content.MaxFeatures = 0 }, wantErr: true},
		{name: "zero components", mutate: func(c *Config) { c.Latent.Components = 0 }, wantErr: true},
		{name: "zero similar users", mutate: func(c *Config) { c.Latent.SimilarUsers = 0 }, wantErr: true},
		{name: "min score out of range", mutate: func(c *Config) { c.Matching.MinScore = 1.0 }, wantErr: true},
		{name: "zero window", mutate: func(c *Config) { c.Trends.WindowDays = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWeightsNormalized(t *testing.T) {
	t.Run("already convex weights pass through", func(t *testing.T) {
		w := Weights{Content: 0.7, Collaborative: 0.3}
		c, col := w.HybridNormalized()
		if math.Abs(c-0.7) > 1e-9 || math.Abs(col-0.3) > 1e-9 {
			t.Errorf("HybridNormalized() = %v/%v, want 0.7/0.3", c, col)
		}
	})

	t.Run("unnormalized weights are scaled", func(t *testing.T) {
		w := Weights{Content: 7, Collaborative: 3}
		c, col := w.HybridNormalized()
		if math.Abs(c-0.7) > 1e-9 || math.Abs(col-0.3) > 1e-9 {
			t.Errorf("HybridNormalized() = %v/%v, want 0.7/0.3", c, col)
		}
	})

	t.Run("zero-sum weights fall back to defaults", func(t *testing.T) {
		w := Weights{}
		c, col := w.HybridNormalized()
		if c != 0.7 || col != 0.3 {
			t.Errorf("HybridNormalized() = %v/%v, want 0.7/0.3", c, col)
		}
		in, sk := w.MatchingNormalized()
		if in != 0.6 || sk != 0.4 {
			t.Errorf("MatchingNormalized() = %v/%v, want 0.6/0.4", in, sk)
		}
	})
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.Weights.Content = 0.9
	if cfg.Weights.Content != 0.7 {
		t.Errorf("mutating the clone changed the original: %v", cfg.Weights.Content)
	}
}
