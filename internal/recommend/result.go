// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

// Result distinguishes "nothing found" from "computation broke" without
// forcing callers to treat degradation as a hard failure. A Result is
// either Ok (possibly with zero items) or degraded with a reason; degraded
// results always carry an empty item list.
type Result[T any] struct {
	items []T
	err   error
}

// Ok returns a successful result with the given items. A nil or empty
// slice means no recommendations were found.
func Ok[T any](items []T) Result[T] {
	return Result[T]{items: items}
}

// Empty returns a successful result with no items.
func Empty[T any]() Result[T] {
	return Result[T]{}
}

// Degraded returns a result marking that the computation failed. The
// reason is retained for logging and response metadata.
func Degraded[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Items returns the recommended items. Never nil for Ok results with
// items; empty for Empty and Degraded results.
func (r Result[T]) Items() []T {
	if r.items == nil {
		return []T{}
	}
	return r.items
}

// IsDegraded reports whether the computation failed.
func (r Result[T]) IsDegraded() bool {
	return r.err != nil
}

// Err returns the computation failure, or nil for Ok results.
func (r Result[T]) Err() error {
	return r.err
}
