// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import (
	"testing"
	"time"

	"github.com/ciconnect/recommender/internal/models"
)

func testTrendsConfig() TrendsConfig {
	return TrendsConfig{
		WindowDays:      180,
		MaxTechnologies: 10,
		MaxTags:         15,
		MaxGrowthAreas:  10,
		HighGrowthCount: 5,
	}
}

func TestAnalyzeTrends(t *testing.T) {
	asOf := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	daysAgo := func(d int) time.Time { return asOf.AddDate(0, 0, -d) }

	tests := []struct {
		name     string
		projects []*models.Project
		verify   func(t *testing.T, r TrendReport)
	}{
		{
			name:     "no projects yields empty lists",
			projects: nil,
			verify: func(t *testing.T, r TrendReport) {
				if r.ProjectCount != 0 {
					t.Errorf("ProjectCount = %d, want 0", r.ProjectCount)
				}
				if r.Technologies == nil || r.Tags == nil || r.GrowthAreas == nil {
					t.Error("report lists must be empty, not nil")
				}
				if len(r.Technologies) != 0 || len(r.Tags) != 0 || len(r.GrowthAreas) != 0 {
					t.Errorf("report lists not empty: %+v", r)
				}
			},
		},
		{
			name: "projects outside the window are ignored",
			projects: []*models.Project{
				{ID: "old", CreatedAt: daysAgo(200), Tags: []string{"ai"}},
				{ID: "recent", CreatedAt: daysAgo(30), Tags: []string{"ai"}},
			},
			verify: func(t *testing.T, r TrendReport) {
				if r.ProjectCount != 1 {
					t.Errorf("ProjectCount = %d, want 1", r.ProjectCount)
				}
				if len(r.Tags) != 1 || r.Tags[0].Count != 1 {
					t.Errorf("Tags = %+v, want one entry with count 1", r.Tags)
				}
			},
		},
		{
			name: "technologies and tags counted across projects",
			projects: []*models.Project{
				{
					ID:        "p1",
					CreatedAt: daysAgo(10),
					Tags:      []string{"nlp", "health"},
					Technologies: []models.Technology{
						{Name: "python"}, {Name: "pytorch"},
					},
				},
				{
					ID:        "p2",
					CreatedAt: daysAgo(20),
					Tags:      []string{"nlp"},
					Technologies: []models.Technology{
						{Name: "python"},
					},
				},
			},
			verify: func(t *testing.T, r TrendReport) {
				if r.Technologies[0].Label != "python" || r.Technologies[0].Count != 2 {
					t.Errorf("top technology = %+v, want python x2", r.Technologies[0])
				}
				if r.Tags[0].Label != "nlp" || r.Tags[0].Count != 2 {
					t.Errorf("top tag = %+v, want nlp x2", r.Tags[0])
				}
			},
		},
		{
			name: "growth areas match whole words case-insensitively",
			projects: []*models.Project{
				{
					ID:          "p1",
					CreatedAt:   daysAgo(5),
					Description: "Applying Machine Learning and AI to maintain railways",
				},
			},
			verify: func(t *testing.T, r TrendReport) {
				byKeyword := make(map[string]GrowthArea)
				for _, ga := range r.GrowthAreas {
					byKeyword[ga.Keyword] = ga
				}
				if ga, ok := byKeyword["machine learning"]; !ok || ga.Count != 1 {
					t.Errorf("machine learning = %+v, want count 1", ga)
				}
				if ga, ok := byKeyword["ai"]; !ok || ga.Count != 1 {
					t.Errorf("ai = %+v, want count 1", ga)
				}
				// "maintain" and "railways" must not trip the "ai" matcher.
				if ga := byKeyword["ai"]; ga.Count > 1 {
					t.Errorf("ai matched inside other words: %+v", ga)
				}
			},
		},
		{
			name: "growth rate is high above the threshold",
			projects: []*models.Project{
				{
					ID:        "p1",
					CreatedAt: daysAgo(5),
					Description: "blockchain blockchain blockchain blockchain blockchain blockchain" +
						" and one iot sensor",
				},
			},
			verify: func(t *testing.T, r TrendReport) {
				byKeyword := make(map[string]GrowthArea)
				for _, ga := range r.GrowthAreas {
					byKeyword[ga.Keyword] = ga
				}
				if ga := byKeyword["blockchain"]; ga.Count != 6 || ga.GrowthRate != "high" {
					t.Errorf("blockchain = %+v, want count 6 rate high", ga)
				}
				if ga := byKeyword["iot"]; ga.Count != 1 || ga.GrowthRate != "medium" {
					t.Errorf("iot = %+v, want count 1 rate medium", ga)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := AnalyzeTrends(tt.projects, asOf, testTrendsConfig())
			if r.WindowDays != 180 {
				t.Errorf("WindowDays = %d, want 180", r.WindowDays)
			}
			if !r.AsOf.Equal(asOf) {
				t.Errorf("AsOf = %v, want %v", r.AsOf, asOf)
			}
			tt.verify(t, r)
		})
	}
}

func TestAnalyzeTrendsListCaps(t *testing.T) {
	asOf := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	cfg := testTrendsConfig()
	cfg.MaxTechnologies = 2

	project := &models.Project{
		ID:        "p1",
		CreatedAt: asOf.AddDate(0, 0, -1),
		Technologies: []models.Technology{
			{Name: "python"}, {Name: "go"}, {Name: "rust"},
		},
	}

	r := AnalyzeTrends([]*models.Project{project}, asOf, cfg)
	if len(r.Technologies) != 2 {
		t.Errorf("len(Technologies) = %d, want 2", len(r.Technologies))
	}
}
