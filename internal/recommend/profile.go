// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import (
	"strings"

	"github.com/ciconnect/recommender/internal/models"
)

// BuildUserProfile flattens a user into a single text for vectorization.
// Field order is fixed (bio, interests, skills, research areas) so that
// vectorization weighting is reproducible across runs; absent fields
// contribute nothing.
func BuildUserProfile(u *models.User) string {
	if u == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	if u.Bio != "" {
		parts = append(parts, u.Bio)
	}
	if len(u.Interests) > 0 {
		parts = append(parts, strings.Join(u.Interests, " "))
	}
	if len(u.Skills) > 0 {
		parts = append(parts, strings.Join(u.Skills, " "))
	}
	if len(u.ResearchAreas) > 0 {
		parts = append(parts, strings.Join(u.ResearchAreas, " "))
	}
	return strings.Join(parts, " ")
}

// BuildProjectProfile flattens a project into a single text for
// vectorization. Field order is fixed: title, description, tags,
// technology names, methodology.
func BuildProjectProfile(p *models.Project) string {
	if p == nil {
		return ""
	}
	parts := make([]string, 0, 5)
	if p.Title != "" {
		parts = append(parts, p.Title)
	}
	if p.Description != "" {
		parts = append(parts, p.Description)
	}
	if len(p.Tags) > 0 {
		parts = append(parts, strings.Join(p.Tags, " "))
	}
	if len(p.Technologies) > 0 {
		names := make([]string, 0, len(p.Technologies))
		for _, t := range p.Technologies {
			if t.Name != "" {
				names = append(names, t.Name)
			}
		}
		if len(names) > 0 {
			parts = append(parts, strings.Join(names, " "))
		}
	}
	if p.Methodology != "" {
		parts = append(parts, p.Methodology)
	}
	return strings.Join(parts, " ")
}
