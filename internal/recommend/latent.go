// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import "sort"

// UserScore pairs a user identifier with a similarity score.
type UserScore struct {
	UserID string
	Score  float64
}

// SimilarUsers finds the users closest to the target in latent factor
// space. The participation matrix is factorized fresh on every call via
// truncated SVD and similarity is cosine over the factor rows.
//
// Returns an empty sequence when the matrix is empty or the target user
// has no row in it; a user without participation history simply has no
// collaborative signal yet.
func SimilarUsers(m *ParticipationMatrix, targetUserID string, topK int, cfg LatentConfig) []UserScore {
	if m.IsEmpty() || topK <= 0 {
		return nil
	}

	target, ok := m.RowIndex(targetUserID)
	if !ok {
		return nil
	}

	factors := userFactors(m.Cells, cfg.Components, cfg.Iterations)
	if factors == nil {
		return nil
	}

	scores := make([]UserScore, 0, len(m.UserIDs)-1)
	for i, id := range m.UserIDs {
		if i == target {
			continue
		}
		scores = append(scores, UserScore{
			UserID: id,
			Score:  cosineSimilarity(factors[target], factors[i]),
		})
	}

	// Stable sort keeps row order on score ties for determinism.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if len(scores) > topK {
		scores = scores[:topK]
	}
	return scores
}
