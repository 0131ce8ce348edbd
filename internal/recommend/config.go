// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import "fmt"

// Config contains all tunable parameters of the recommendation core.
// The defaults reproduce the documented policy constants; tests override
// individual fields.
type Config struct {
	// Weights defines the convex fusion and matching weights.
	Weights Weights `json:"weights" koanf:"weights"`

	// Content contains parameters for the TF-IDF vectorizer.
	Content ContentConfig `json:"content" koanf:"content"`

	// Latent contains parameters for the truncated SVD factor engine.
	Latent LatentConfig `json:"latent" koanf:"latent"`

	// Matching contains parameters for user-user matching.
	Matching MatchingConfig `json:"matching" koanf:"matching"`

	// Trends contains parameters for trend analysis.
	Trends TrendsConfig `json:"trends" koanf:"trends"`

	// Display contains truncation limits for display fields.
	Display DisplayConfig `json:"display" koanf:"display"`
}

// Weights defines the relative contribution of each signal.
type Weights struct {
	// Content is the hybrid-mode weight of the content-based ranking.
	// Default: 0.7. Policy constant, not tuned at runtime.
	Content float64 `json:"content" koanf:"content"`

	// Collaborative is the hybrid-mode weight of the collaborative
	// ranking. Default: 0.3.
	Collaborative float64 `json:"collaborative" koanf:"collaborative"`

	// Interests is the user-matching weight of interest overlap.
	// Default: 0.6.
	Interests float64 `json:"interests" koanf:"interests"`

	// Skills is the user-matching weight of skill overlap.
	// Default: 0.4.
	Skills float64 `json:"skills" koanf:"skills"`
}

// HybridNormalized returns the content/collaborative pair scaled to sum
// to 1.0. Falls back to the 0.7/0.3 defaults when both are zero.
func (w Weights) HybridNormalized() (content, collaborative float64) {
	sum := w.Content + w.Collaborative
	if sum == 0 {
		return 0.7, 0.3
	}
	return w.Content / sum, w.Collaborative / sum
}

// MatchingNormalized returns the interests/skills pair scaled to sum to
// 1.0. Falls back to the 0.6/0.4 defaults when both are zero.
func (w Weights) MatchingNormalized() (interests, skills float64) {
	sum := w.Interests + w.Skills
	if sum == 0 {
		return 0.6, 0.4
	}
	return w.Interests / sum, w.Skills / sum
}

// ContentConfig contains parameters for the TF-IDF vectorizer.
type ContentConfig struct {
	// MaxFeatures caps the vocabulary at the most frequent terms.
	// Default: 5000.
	MaxFeatures int `json:"max_features" koanf:"max_features"`
}

// LatentConfig contains parameters for the truncated SVD factor engine.
type LatentConfig struct {
	// Components is the target rank of the decomposition. The effective
	// rank is additionally bounded by the matrix dimensions.
	// Default: 50.
	Components int `json:"components" koanf:"components"`

	// SimilarUsers is how many nearest users feed the collaborative
	// ranking. Default: 10.
	SimilarUsers int `json:"similar_users" koanf:"similar_users"`

	// Iterations is the power-iteration count per component.
	// Default: 60.
	Iterations int `json:"iterations" koanf:"iterations"`
}

// MatchingConfig contains parameters for user-user matching.
type MatchingConfig struct {
	// MinScore is the combined-score threshold a candidate must exceed
	// to be returned. Default: 0.1.
	MinScore float64 `json:"min_score" koanf:"min_score"`
}

// TrendsConfig contains parameters for trend analysis.
type TrendsConfig struct {
	// WindowDays is the trailing window of project creation dates.
	// Default: 180.
	WindowDays int `json:"window_days" koanf:"window_days"`

	// MaxTechnologies caps the technology ranking. Default: 10.
	MaxTechnologies int `json:"max_technologies" koanf:"max_technologies"`

	// MaxTags caps the tag ranking. Default: 15.
	MaxTags int `json:"max_tags" koanf:"max_tags"`

	// MaxGrowthAreas caps the emerging-keyword list. Default: 10.
	MaxGrowthAreas int `json:"max_growth_areas" koanf:"max_growth_areas"`

	// HighGrowthCount is the occurrence count above which a keyword is
	// labeled "high" instead of "medium". Default: 5.
	HighGrowthCount int `json:"high_growth_count" koanf:"high_growth_count"`
}

// DisplayConfig contains truncation limits for display fields.
type DisplayConfig struct {
	// DescriptionLimit truncates project descriptions. Default: 200.
	DescriptionLimit int `json:"description_limit" koanf:"description_limit"`

	// BioLimit truncates user biographies. Default: 150.
	BioLimit int `json:"bio_limit" koanf:"bio_limit"`
}

// DefaultConfig returns a Config with the documented policy defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Content:       0.7,
			Collaborative: 0.3,
			Interests:     0.6,
			Skills:        0.4,
		},
		Content: ContentConfig{
			MaxFeatures: 5000,
		},
		Latent: LatentConfig{
			Components:   50,
			SimilarUsers: 10,
			Iterations:   60,
		},
		Matching: MatchingConfig{
			MinScore: 0.1,
		},
		Trends: TrendsConfig{
			WindowDays:      180,
			MaxTechnologies: 10,
			MaxTags:         15,
			MaxGrowthAreas:  10,
			HighGrowthCount: 5,
		},
		Display: DisplayConfig{
			DescriptionLimit: 200,
			BioLimit:         150,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.Content < 0 || c.Weights.Collaborative < 0 {
		return fmt.Errorf("weights.content and weights.collaborative must be non-negative, got %f/%f",
			c.Weights.Content, c.Weights.Collaborative)
	}
	if c.Weights.Interests < 0 || c.Weights.Skills < 0 {
		return fmt.Errorf("weights.interests and weights.skills must be non-negative, got %f/%f",
			c.Weights.Interests, c.Weights.Skills)
	}
	if c.Content.MaxFeatures < 1 {
		return fmt.Errorf("content.max_features must be positive, got %d", c.Content.MaxFeatures)
	}
	if c.Latent.Components < 1 {
		return fmt.Errorf("latent.components must be positive, got %d", c.Latent.Components)
	}
	if c.Latent.SimilarUsers < 1 {
		return fmt.Errorf("latent.similar_users must be positive, got %d", c.Latent.SimilarUsers)
	}
	if c.Latent.Iterations < 1 {
		return fmt.Errorf("latent.iterations must be positive, got %d", c.Latent.Iterations)
	}
	if c.Matching.MinScore < 0 || c.Matching.MinScore >= 1 {
		return fmt.Errorf("matching.min_score must be in [0, 1), got %f", c.Matching.MinScore)
	}
	if c.Trends.WindowDays < 1 {
		return fmt.Errorf("trends.window_days must be positive, got %d", c.Trends.WindowDays)
	}
	if c.Trends.MaxTechnologies < 1 || c.Trends.MaxTags < 1 || c.Trends.MaxGrowthAreas < 1 {
		return fmt.Errorf("trends list caps must be positive, got %d/%d/%d",
			c.Trends.MaxTechnologies, c.Trends.MaxTags, c.Trends.MaxGrowthAreas)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types
	clone := *c
	return &clone
}
