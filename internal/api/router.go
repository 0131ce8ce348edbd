// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/ciconnect/recommender/internal/logging"
	"github.com/ciconnect/recommender/internal/middleware"
)

// RouterConfig carries the HTTP policies the router needs.
type RouterConfig struct {
	// APIKey authenticates /api/v1 callers. Empty disables auth.
	APIKey string

	// RateLimitRequests is the per-IP request budget per minute for
	// /api/v1. Zero disables rate limiting.
	RateLimitRequests int

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string
}

// NewRouter builds the route table.
//
//	GET  /health
//	GET  /metrics
//	POST /api/v1/recommendations/projects
//	POST /api/v1/recommendations/users
//	GET  /api/v1/analytics/project-trends
//
// Health and metrics sit outside the authenticated group so probes and
// scrapers need no API key.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics(h.metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.APIKeyHeader, "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	if cfg.APIKey == "" {
		logging.Warn().Msg("API key not configured, /api/v1 is unauthenticated")
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimitRequests > 0 {
			r.Use(httprate.Limit(
				cfg.RateLimitRequests,
				time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, req *http.Request) {
					NewResponseWriter(w, req).TooManyRequests("rate limit exceeded")
				}),
			))
		}
		r.Use(middleware.APIKey(cfg.APIKey, func(w http.ResponseWriter, req *http.Request) {
			NewResponseWriter(w, req).Unauthorized("invalid or missing API key")
		}))

		r.Post("/recommendations/projects", h.RecommendProjects)
		r.Post("/recommendations/users", h.RecommendUsers)
		r.Get("/analytics/project-trends", h.ProjectTrends)
	})

	return r
}
