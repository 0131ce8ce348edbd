// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package api

// Request limit bounds. Out-of-range limits are clamped, not rejected.
const (
	defaultLimit = 10
	maxLimit     = 50
)

// ProjectRecommendationsRequest asks for project recommendations.
type ProjectRecommendationsRequest struct {
	// UserID is the user to recommend projects for.
	UserID string `json:"user_id" validate:"required"`

	// Limit caps the number of recommendations. Default: 10, max: 50.
	Limit int `json:"limit,omitempty"`

	// Algorithm selects the computation. Empty selects hybrid.
	Algorithm string `json:"algorithm,omitempty" validate:"omitempty,oneof=content_based collaborative hybrid"`
}

// UserRecommendationsRequest asks for collaborator matches.
type UserRecommendationsRequest struct {
	// UserID is the user to find collaborators for.
	UserID string `json:"user_id" validate:"required"`

	// Limit caps the number of matches. Default: 10, max: 50.
	Limit int `json:"limit,omitempty"`

	// Filters narrows the candidate pool.
	Filters UserRecommendationsFilters `json:"filters,omitempty"`
}

// UserRecommendationsFilters narrows collaborator candidates.
type UserRecommendationsFilters struct {
	// Role keeps only candidates with this role when non-empty.
	Role string `json:"role,omitempty" validate:"omitempty,oneof=student professor"`
}

// clampLimit normalizes a requested limit into [1, maxLimit], applying
// the default when unset or non-positive.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
