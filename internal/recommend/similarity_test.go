// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import (
	"math"
	"reflect"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{
			name: "identical vectors",
			a:    []float64{1, 2, 3},
			b:    []float64{1, 2, 3},
			want: 1.0,
		},
		{
			name: "orthogonal vectors",
			a:    []float64{1, 0},
			b:    []float64{0, 1},
			want: 0.0,
		},
		{
			name: "opposite vectors",
			a:    []float64{1, 0},
			b:    []float64{-1, 0},
			want: -1.0,
		},
		{
			name: "zero vector scores zero",
			a:    []float64{0, 0, 0},
			b:    []float64{1, 2, 3},
			want: 0.0,
		},
		{
			name: "mismatched lengths score zero",
			a:    []float64{1, 2},
			b:    []float64{1, 2, 3},
			want: 0.0,
		},
		{
			name: "empty vectors score zero",
			a:    nil,
			b:    nil,
			want: 0.0,
		},
		{
			name: "scaled vectors keep similarity",
			a:    []float64{1, 2, 3},
			b:    []float64{2, 4, 6},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJaccardSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{
			name: "identical sets",
			a:    []string{"ml", "ai"},
			b:    []string{"ml", "ai"},
			want: 1.0,
		},
		{
			name: "disjoint sets",
			a:    []string{"ml"},
			b:    []string{"biology"},
			want: 0.0,
		},
		{
			name: "partial overlap",
			a:    []string{"machine learning", "ai", "nlp"},
			b:    []string{"machine learning", "ai", "computer vision"},
			want: 0.5,
		},
		{
			name: "both empty score zero not NaN",
			a:    nil,
			b:    nil,
			want: 0.0,
		},
		{
			name: "one empty",
			a:    []string{"ml"},
			b:    nil,
			want: 0.0,
		},
		{
			name: "duplicates collapse",
			a:    []string{"ml", "ml", "ai"},
			b:    []string{"ml", "ai", "ai"},
			want: 1.0,
		},
		{
			name: "order does not matter",
			a:    []string{"b", "a"},
			b:    []string{"a", "b"},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JaccardSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("JaccardSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommonElements(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want []string
	}{
		{
			name: "sorted intersection",
			a:    []string{"nlp", "ai", "ml"},
			b:    []string{"ml", "ai", "vision"},
			want: []string{"ai", "ml"},
		},
		{
			name: "no overlap returns nil",
			a:    []string{"a"},
			b:    []string{"b"},
			want: nil,
		},
		{
			name: "duplicates appear once",
			a:    []string{"ml", "ml"},
			b:    []string{"ml"},
			want: []string{"ml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commonElements(tt.a, tt.b)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("commonElements() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJaccardSimilaritySymmetric(t *testing.T) {
	a := []string{"robotics", "nlp", "vision"}
	b := []string{"nlp", "databases"}

	if ab, ba := JaccardSimilarity(a, b), JaccardSimilarity(b, a); ab != ba {
		t.Errorf("JaccardSimilarity not symmetric: %v vs %v", ab, ba)
	}
}

// Weighted interest/skill matching combines the two Jaccard scores with
// the 0.6/0.4 defaults: interests {robotics} vs {robotics,ai} is 0.5,
// skills {python,ml} vs {python,web} is 1/3, so 0.6*0.5 + 0.4/3 = 0.433.
func TestWeightedJaccardCombination(t *testing.T) {
	wInterests, wSkills := DefaultConfig().Weights.MatchingNormalized()

	interests := JaccardSimilarity(
		[]string{"robotics"},
		[]string{"robotics", "ai"},
	)
	skills := JaccardSimilarity(
		[]string{"python", "ml"},
		[]string{"python", "web"},
	)

	got := wInterests*interests + wSkills*skills
	if math.Abs(got-(0.6*0.5+0.4/3)) > 1e-9 {
		t.Errorf("weighted score = %v, want ~0.433", got)
	}
}
