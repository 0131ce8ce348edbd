// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import (
	"math"
	"testing"

	"github.com/ciconnect/recommender/internal/models"
)

func testLatentConfig() LatentConfig {
	return LatentConfig{Components: 10, SimilarUsers: 10, Iterations: 60}
}

func TestUserFactors(t *testing.T) {
	t.Run("empty input returns nil", func(t *testing.T) {
		if got := userFactors(nil, 5, 10); got != nil {
			t.Errorf("userFactors(nil) = %v, want nil", got)
		}
		if got := userFactors([][]float64{{}}, 5, 10); got != nil {
			t.Errorf("userFactors(zero cols) = %v, want nil", got)
		}
	})

	t.Run("rank bounded by dimensions", func(t *testing.T) {
		cells := [][]float64{
			{1, 0, 1},
			{0, 1, 0},
		}
		factors := userFactors(cells, 50, 60)
		if len(factors) != 2 {
			t.Fatalf("len(factors) = %d, want 2", len(factors))
		}
		for i, f := range factors {
			if len(f) > 2 {
				t.Errorf("factors[%d] width = %d, want <= 2", i, len(f))
			}
		}
	})

	t.Run("identical rows map to identical factors", func(t *testing.T) {
		cells := [][]float64{
			{1, 1, 0, 0},
			{1, 1, 0, 0},
			{0, 0, 1, 1},
		}
		factors := userFactors(cells, 3, 60)
		if sim := cosineSimilarity(factors[0], factors[1]); math.Abs(sim-1.0) > 1e-6 {
			t.Errorf("similarity of identical rows = %v, want ~1.0", sim)
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		cells := [][]float64{
			{1, 0, 1, 0},
			{0, 1, 1, 0},
			{1, 1, 0, 1},
		}
		first := userFactors(cells, 3, 60)
		second := userFactors(cells, 3, 60)
		for i := range first {
			for j := range first[i] {
				if first[i][j] != second[i][j] {
					t.Fatalf("factors[%d][%d] differs across runs: %v vs %v",
						i, j, first[i][j], second[i][j])
				}
			}
		}
	})
}

func TestSimilarUsers(t *testing.T) {
	users := []*models.User{
		{ID: "u1"}, {ID: "u2"}, {ID: "u3"}, {ID: "u4"},
	}
	// u2 shares both of u1's projects; u3 shares one; u4 shares none.
	projects := []*models.Project{
		{ID: "p1", Members: []models.Member{{UserID: "u1"}, {UserID: "u2"}, {UserID: "u3"}}},
		{ID: "p2", Members: []models.Member{{UserID: "u1"}, {UserID: "u2"}}},
		{ID: "p3", Members: []models.Member{{UserID: "u4"}}},
	}
	matrix := BuildParticipationMatrix(users, projects)

	tests := []struct {
		name   string
		m      *ParticipationMatrix
		target string
		topK   int
		verify func(t *testing.T, got []UserScore)
	}{
		{
			name:   "closest user ranks first",
			m:      matrix,
			target: "u1",
			topK:   10,
			verify: func(t *testing.T, got []UserScore) {
				if len(got) != 3 {
					t.Fatalf("len = %d, want 3", len(got))
				}
				if got[0].UserID != "u2" {
					t.Errorf("top user = %s, want u2", got[0].UserID)
				}
				if math.Abs(got[0].Score-1.0) > 1e-6 {
					t.Errorf("top score = %v, want ~1.0", got[0].Score)
				}
			},
		},
		{
			name:   "topK truncates",
			m:      matrix,
			target: "u1",
			topK:   1,
			verify: func(t *testing.T, got []UserScore) {
				if len(got) != 1 {
					t.Errorf("len = %d, want 1", len(got))
				}
			},
		},
		{
			name:   "target without row yields empty",
			m:      matrix,
			target: "ghost",
			topK:   10,
			verify: func(t *testing.T, got []UserScore) {
				if len(got) != 0 {
					t.Errorf("len = %d, want 0", len(got))
				}
			},
		},
		{
			name:   "empty matrix yields empty",
			m:      BuildParticipationMatrix(nil, nil),
			target: "u1",
			topK:   10,
			verify: func(t *testing.T, got []UserScore) {
				if len(got) != 0 {
					t.Errorf("len = %d, want 0", len(got))
				}
			},
		},
		{
			name:   "non-positive topK yields empty",
			m:      matrix,
			target: "u1",
			topK:   0,
			verify: func(t *testing.T, got []UserScore) {
				if len(got) != 0 {
					t.Errorf("len = %d, want 0", len(got))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, SimilarUsers(tt.m, tt.target, tt.topK, testLatentConfig()))
		})
	}
}
