// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

// Package store implements the read-only persistence layer behind the
// recommendation core. The backing database is the platform's MongoDB
// instance; an in-memory implementation backs tests and local runs.
//
// All implementations satisfy recommend.DataProvider: absence is
// reported as (nil, nil), errors strictly mean data-access failure.
package store

import "context"

// Pinger reports data-store liveness for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}
