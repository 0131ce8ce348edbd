// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/ciconnect/recommender/internal/logging"
	"github.com/ciconnect/recommender/internal/metrics"
	"github.com/ciconnect/recommender/internal/models"
	"github.com/ciconnect/recommender/internal/recommend"
	"github.com/ciconnect/recommender/internal/store"
	"github.com/ciconnect/recommender/internal/validation"
)

// Recommender is the recommendation surface the handlers consume.
// *recommend.Service satisfies it.
type Recommender interface {
	RecommendProjects(ctx context.Context, userID string, limit int, alg recommend.Algorithm) (recommend.Result[recommend.ProjectRecommendation], error)
	RecommendUsers(ctx context.Context, userID string, limit int, role models.Role) (recommend.Result[recommend.UserMatch], error)
	AnalyzeTrends(ctx context.Context) (recommend.TrendReport, error)
}

// Handler holds the dependencies shared by all endpoints.
type Handler struct {
	recommender    Recommender
	pinger         store.Pinger
	metrics        *metrics.Metrics
	requestTimeout time.Duration
}

// NewHandler creates the endpoint handler set.
func NewHandler(rec Recommender, pinger store.Pinger, m *metrics.Metrics, requestTimeout time.Duration) *Handler {
	return &Handler{
		recommender:    rec,
		pinger:         pinger,
		metrics:        m,
		requestTimeout: requestTimeout,
	}
}

// Health reports service and database health. The endpoint stays 200
// with status "degraded" when the database ping fails, so orchestrators
// can distinguish "down" from "up but impaired".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	status := "ok"
	database := "ok"
	if err := h.pinger.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check: database ping failed")
		status = "degraded"
		database = "unreachable"
	}

	rw.Success(map[string]string{
		"status":   status,
		"database": database,
	})
}

// RecommendProjects handles POST /api/v1/recommendations/projects.
func (h *Handler) RecommendProjects(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req ProjectRecommendationsRequest
	if !h.decode(rw, r, &req) {
		return
	}

	alg, err := recommend.ParseAlgorithm(req.Algorithm)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	limit := clampLimit(req.Limit)

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	result, err := h.recommender.RecommendProjects(ctx, req.UserID, limit, alg)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	recs := result.Items()
	h.observe(r.Context(), "recommend_projects", alg.String(), len(recs), result.IsDegraded())

	rw.SuccessDegraded(map[string]interface{}{
		"user_id":         req.UserID,
		"algorithm":       alg.String(),
		"count":           len(recs),
		"recommendations": recs,
	}, result.IsDegraded())
}

// RecommendUsers handles POST /api/v1/recommendations/users.
func (h *Handler) RecommendUsers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req UserRecommendationsRequest
	if !h.decode(rw, r, &req) {
		return
	}
	limit := clampLimit(req.Limit)

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	result, err := h.recommender.RecommendUsers(ctx, req.UserID, limit, models.Role(req.Filters.Role))
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	matches := result.Items()
	h.observe(r.Context(), "recommend_users", "jaccard", len(matches), result.IsDegraded())

	rw.SuccessDegraded(map[string]interface{}{
		"user_id": req.UserID,
		"count":   len(matches),
		"matches": matches,
	}, result.IsDegraded())
}

// ProjectTrends handles GET /api/v1/analytics/project-trends.
func (h *Handler) ProjectTrends(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	report, err := h.recommender.AnalyzeTrends(ctx)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	rw.Success(report)
}

// decode parses and validates a JSON request body, writing the error
// response itself. Returns false when the request was rejected.
func (h *Handler) decode(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return false
	}

	if err := validation.ValidateStruct(dst); err != nil {
		var ve *validation.RequestValidationError
		if errors.As(err, &ve) {
			rw.ValidationError("request validation failed", ve.Details())
		} else {
			rw.BadRequest(err.Error())
		}
		return false
	}
	return true
}

// observe records recommendation metrics for one served request.
func (h *Handler) observe(ctx context.Context, operation, algorithm string, count int, degraded bool) {
	if h.metrics == nil {
		return
	}
	h.metrics.RecommendationsServed.WithLabelValues(operation, algorithm).Add(float64(count))
	if degraded {
		h.metrics.DegradedResults.WithLabelValues(operation).Inc()
		logging.Ctx(ctx).Warn().
			Str("operation", operation).
			Str("algorithm", algorithm).
			Msg("Served degraded result")
	}
	logging.Ctx(ctx).Debug().
		Str("operation", operation).
		Str("algorithm", algorithm).
		Int("count", count).
		Msg("Served recommendations")
}
