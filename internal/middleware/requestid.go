// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

// Package middleware provides HTTP middleware for the API: request
// identification, API-key authentication, and Prometheus
// instrumentation.
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ciconnect/recommender/internal/logging"
)

// RequestID assigns each request a unique ID, exposed in the
// X-Request-ID response header and the request context for log
// correlation. An incoming X-Request-ID from an upstream proxy is
// preserved.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithNewCorrelationID(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
