// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import "sort"

// ScoredItem pairs an item identifier with a score.
type ScoredItem struct {
	ID    string
	Score float64
}

// WeightedList is one ranked list with its fusion weight.
type WeightedList struct {
	Items  []ScoredItem
	Weight float64
}

// CombineRankings merges ranked lists into one by summing weight×score
// per item across the lists it appears in; absence from a list simply
// contributes nothing. The merged list is sorted by combined score
// descending. Score ties preserve the order of first appearance across
// the lists, with the first (primary) list scanned first, so the output
// is deterministic.
func CombineRankings(lists []WeightedList, limit int) []ScoredItem {
	combined := make(map[string]float64)
	firstSeen := make(map[string]int)
	order := 0

	for _, list := range lists {
		for _, item := range list.Items {
			if _, seen := firstSeen[item.ID]; !seen {
				firstSeen[item.ID] = order
				order++
			}
			combined[item.ID] += list.Weight * item.Score
		}
	}

	merged := make([]ScoredItem, 0, len(combined))
	for id, score := range combined {
		merged = append(merged, ScoredItem{ID: id, Score: score})
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Score != merged[j].Score {
			return merged[i].Score > merged[j].Score
		}
		return firstSeen[merged[i].ID] < firstSeen[merged[j].ID]
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
