// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import (
	"fmt"
	"time"

	"github.com/ciconnect/recommender/internal/models"
)

// Algorithm selects how project recommendations are computed.
type Algorithm string

const (
	// AlgorithmContentBased ranks public projects by TF-IDF similarity
	// between the user's text profile and each project's text profile.
	AlgorithmContentBased Algorithm = "content_based"

	// AlgorithmCollaborative ranks projects by the participation history of
	// users close to the requester in latent factor space.
	AlgorithmCollaborative Algorithm = "collaborative"

	// AlgorithmHybrid fuses the content-based and collaborative rankings
	// with convex weights.
	AlgorithmHybrid Algorithm = "hybrid"
)

// String returns the algorithm identifier.
func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm validates an algorithm identifier. An empty string
// selects the hybrid default.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmContentBased, AlgorithmCollaborative, AlgorithmHybrid:
		return Algorithm(s), nil
	case "":
		return AlgorithmHybrid, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q", s)
	}
}

// ProjectRecommendation is a single recommended project.
type ProjectRecommendation struct {
	// ProjectID identifies the recommended project.
	ProjectID string `json:"project_id"`

	// Title is the project title.
	Title string `json:"title"`

	// Description is the project description, truncated for display.
	Description string `json:"description,omitempty"`

	// Score is the similarity score. Content-based scores are cosine
	// similarities in [0, 1]; hybrid scores are convex combinations.
	Score float64 `json:"score"`

	// Tags are the project's topic tags.
	Tags []string `json:"tags,omitempty"`

	// Technologies are the project's technology names.
	Technologies []string `json:"technologies,omitempty"`

	// Status is the project lifecycle state.
	Status string `json:"status,omitempty"`

	// MemberCount is the number of project members.
	MemberCount int `json:"member_count"`
}

// UserMatch is a single recommended collaborator.
type UserMatch struct {
	// UserID identifies the matched user.
	UserID string `json:"user_id"`

	// Name is the user's display name.
	Name string `json:"name"`

	// Role is student or professor.
	Role models.Role `json:"role"`

	// Bio is the user's biography, truncated for display.
	Bio string `json:"bio,omitempty"`

	// Score is the combined Jaccard score over interests and skills.
	Score float64 `json:"score"`

	// CommonInterests are interests shared with the requesting user.
	CommonInterests []string `json:"common_interests,omitempty"`

	// CommonSkills are skills shared with the requesting user.
	CommonSkills []string `json:"common_skills,omitempty"`

	// Institution is the user's institution.
	Institution string `json:"institution,omitempty"`
}

// TrendEntry is one label with its occurrence count in the trend window.
type TrendEntry struct {
	// Label is the technology name or tag.
	Label string `json:"label"`

	// Count is the number of projects carrying the label in the window.
	Count int `json:"count"`
}

// GrowthArea is an emerging keyword found in project descriptions.
type GrowthArea struct {
	// Keyword is the matched phrase.
	Keyword string `json:"keyword"`

	// Count is the number of occurrences across descriptions.
	Count int `json:"count"`

	// GrowthRate is "high" or "medium" depending on the count.
	GrowthRate string `json:"growth_rate"`
}

// TrendReport summarizes technology and topic activity over a trailing
// window of recently created projects.
type TrendReport struct {
	// Technologies are the most used technologies, most frequent first.
	Technologies []TrendEntry `json:"trending_technologies"`

	// Tags are the most used tags, most frequent first.
	Tags []TrendEntry `json:"trending_topics"`

	// GrowthAreas are emerging keywords found in descriptions.
	GrowthAreas []GrowthArea `json:"growth_areas"`

	// WindowDays is the trailing window length the report covers.
	WindowDays int `json:"window_days"`

	// ProjectCount is the number of projects inside the window.
	ProjectCount int `json:"project_count"`

	// AsOf is the analysis timestamp the window is anchored to.
	AsOf time.Time `json:"as_of"`
}

// truncateText shortens s to at most limit characters, appending "..."
// when anything was cut. Counts runes, not bytes, so multibyte text is
// never split mid-character.
func truncateText(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
