// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

// Package recommend implements the recommendation core: content-based
// project matching (TF-IDF over text profiles), collaborative filtering
// (truncated SVD over the user-project participation matrix), user-user
// matching (Jaccard overlap of interests and skills), hybrid score fusion,
// and technology trend analysis.
//
// # Computation Model
//
// Every operation is a pure function of a database snapshot. Nothing is
// trained ahead of time and nothing is cached between calls: each request
// rebuilds its vectorizer, matrix, and factors from scratch. Concurrent
// requests therefore share no mutable state and need no locking.
//
// # Failure Model
//
// Three failure classes are kept distinct:
//
//   - Input absence (unknown user, empty candidate pool, empty matrix)
//     resolves to an Ok result with no items.
//   - Computation failure inside an algorithm is caught at the service
//     boundary, logged, and surfaced as a degraded result that still
//     carries an empty item list.
//   - Data-access failure is returned as an ordinary error and never
//     converted into an empty result.
package recommend
