// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/ciconnect/recommender/internal/logging"
)

// APIKeyHeader carries the caller's API key.
const APIKeyHeader = "X-API-Key"

// APIKey rejects requests whose X-API-Key header does not match the
// configured key. Comparison is constant-time. An empty configured key
// disables authentication; the router logs a warning in that case at
// startup.
//
// The rejection body is written by the provided func so the middleware
// stays decoupled from the response envelope.
func APIKey(key string, reject func(w http.ResponseWriter, r *http.Request)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				logging.Ctx(r.Context()).Warn().
					Str("path", r.URL.Path).
					Str("remote", r.RemoteAddr).
					Msg("Rejected request with invalid API key")
				reject(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
