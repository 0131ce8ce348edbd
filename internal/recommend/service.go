// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ciconnect/recommender/internal/logging"
	"github.com/ciconnect/recommender/internal/models"
)

// UserFilter narrows user queries to the data provider.
type UserFilter struct {
	// Role keeps only users with the given role when non-empty.
	Role models.Role

	// ExcludeID drops the user with this identifier when non-empty.
	ExcludeID string
}

// ProjectFilter narrows project queries to the data provider.
type ProjectFilter struct {
	// Visibility keeps only projects with the given visibility when
	// non-empty.
	Visibility models.Visibility

	// CreatedAfter keeps only projects created at or after this time
	// when non-zero.
	CreatedAfter time.Time
}

// DataProvider is the read-only persistence interface the service
// consumes. Implementations must return (nil, nil) from UserByID when no
// user matches; errors are reserved for data-access failures and are
// propagated to the caller untouched.
type DataProvider interface {
	// UserByID fetches one user, or nil when absent.
	UserByID(ctx context.Context, id string) (*models.User, error)

	// Users fetches users matching the filter.
	Users(ctx context.Context, f UserFilter) ([]*models.User, error)

	// Projects fetches projects matching the filter.
	Projects(ctx context.Context, f ProjectFilter) ([]*models.Project, error)

	// ProjectsForUser fetches the projects a user is a member of.
	ProjectsForUser(ctx context.Context, userID string) ([]*models.Project, error)
}

// Service orchestrates the recommendation core. It owns no state beyond
// its configuration and data provider; every call recomputes from a
// fresh snapshot, so a single Service is safe for arbitrary concurrent
// callers.
type Service struct {
	data DataProvider
	cfg  *Config
}

// NewService creates a recommendation service. A nil config selects the
// documented defaults.
func NewService(data DataProvider, cfg *Config) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Service{data: data, cfg: cfg.Clone()}
}

// RecommendProjects returns up to limit projects for the user, computed
// with the selected algorithm. An unknown user yields an empty result; a
// computation failure yields a degraded result; only data-access
// failures are returned as errors.
func (s *Service) RecommendProjects(ctx context.Context, userID string, limit int, alg Algorithm) (Result[ProjectRecommendation], error) {
	user, err := s.data.UserByID(ctx, userID)
	if err != nil {
		return Empty[ProjectRecommendation](), fmt.Errorf("fetch user %s: %w", userID, err)
	}
	if user == nil {
		logging.Ctx(ctx).Debug().Str("user_id", userID).Msg("Unknown user, no project recommendations")
		return Empty[ProjectRecommendation](), nil
	}

	switch alg {
	case AlgorithmContentBased:
		return guard(ctx, "content_based", func() ([]ProjectRecommendation, error) {
			return s.contentBasedProjects(ctx, user, limit)
		})
	case AlgorithmCollaborative:
		return guard(ctx, "collaborative", func() ([]ProjectRecommendation, error) {
			return s.collaborativeProjects(ctx, user, limit)
		})
	case AlgorithmHybrid:
		return s.hybridProjects(ctx, user, limit)
	default:
		return Empty[ProjectRecommendation](), fmt.Errorf("unknown algorithm %q", alg)
	}
}

// RecommendUsers returns up to limit collaborator matches for the user,
// scored by weighted Jaccard overlap of interests and skills. Only
// candidates whose combined score exceeds the configured threshold are
// returned.
func (s *Service) RecommendUsers(ctx context.Context, userID string, limit int, role models.Role) (Result[UserMatch], error) {
	user, err := s.data.UserByID(ctx, userID)
	if err != nil {
		return Empty[UserMatch](), fmt.Errorf("fetch user %s: %w", userID, err)
	}
	if user == nil {
		logging.Ctx(ctx).Debug().Str("user_id", userID).Msg("Unknown user, no user recommendations")
		return Empty[UserMatch](), nil
	}

	candidates, err := s.data.Users(ctx, UserFilter{Role: role, ExcludeID: userID})
	if err != nil {
		return Empty[UserMatch](), fmt.Errorf("fetch candidate users: %w", err)
	}

	return guard(ctx, "user_matching", func() ([]UserMatch, error) {
		return s.matchUsers(user, candidates, limit), nil
	})
}

// AnalyzeTrends aggregates technology and topic activity over recently
// created projects. Data-access failures are returned as errors; the
// analysis itself degrades to an empty report if it fails.
func (s *Service) AnalyzeTrends(ctx context.Context) (TrendReport, error) {
	asOf := time.Now().UTC()
	cutoff := asOf.AddDate(0, 0, -s.cfg.Trends.WindowDays)

	projects, err := s.data.Projects(ctx, ProjectFilter{CreatedAfter: cutoff})
	if err != nil {
		return TrendReport{}, fmt.Errorf("fetch recent projects: %w", err)
	}

	report := func() (r TrendReport) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.Ctx(ctx).Error().Interface("panic", rec).Msg("Trend analysis failed")
				r = TrendReport{
					Technologies: []TrendEntry{},
					Tags:         []TrendEntry{},
					GrowthAreas:  []GrowthArea{},
					WindowDays:   s.cfg.Trends.WindowDays,
					AsOf:         asOf,
				}
			}
		}()
		return AnalyzeTrends(projects, asOf, s.cfg.Trends)
	}()
	return report, nil
}

// guard runs a recommendation computation, converting panics into a
// degraded result at the orchestration boundary. Errors returned by fn
// are data-access failures and pass through untouched.
func guard[T any](ctx context.Context, op string, fn func() ([]T, error)) (res Result[T], err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Ctx(ctx).Error().
				Str("operation", op).
				Interface("panic", rec).
				Msg("Recommendation computation failed")
			res = Degraded[T](fmt.Errorf("%s: %v", op, rec))
			err = nil
		}
	}()

	items, err := fn()
	if err != nil {
		return Empty[T](), err
	}
	if len(items) == 0 {
		return Empty[T](), nil
	}
	return Ok(items), nil
}

// contentBasedProjects ranks public projects by TF-IDF similarity
// against the user's text profile, excluding projects the user is
// already a member of.
func (s *Service) contentBasedProjects(ctx context.Context, user *models.User, limit int) ([]ProjectRecommendation, error) {
	projects, err := s.data.Projects(ctx, ProjectFilter{Visibility: models.VisibilityPublic})
	if err != nil {
		return nil, fmt.Errorf("fetch public projects: %w", err)
	}

	own, err := s.ownProjectIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	candidates := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if _, member := own[p.ID]; member || p.HasMember(user.ID) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	profiles := make([]string, len(candidates))
	for i, p := range candidates {
		profiles[i] = BuildProjectProfile(p)
	}

	scores := RankByContent(BuildUserProfile(user), profiles, s.cfg.Content.MaxFeatures)

	recs := make([]ProjectRecommendation, len(candidates))
	for i, p := range candidates {
		recs[i] = s.projectRecommendation(p, scores[i])
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// collaborativeProjects finds users near the requester in latent factor
// space and unions their memberships, keeping the first-seen similarity
// score per project and excluding the requester's own projects.
func (s *Service) collaborativeProjects(ctx context.Context, user *models.User, limit int) ([]ProjectRecommendation, error) {
	users, err := s.data.Users(ctx, UserFilter{})
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	projects, err := s.data.Projects(ctx, ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}

	matrix := BuildParticipationMatrix(users, projects)
	similar := SimilarUsers(matrix, user.ID, s.cfg.Latent.SimilarUsers, s.cfg.Latent)
	if len(similar) == 0 {
		return nil, nil
	}

	own, err := s.ownProjectIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// First-seen wins: similar users are visited in descending
	// similarity order, so each project keeps its best score.
	seen := make(map[string]struct{})
	var recs []ProjectRecommendation
	for _, su := range similar {
		memberships, err := s.data.ProjectsForUser(ctx, su.UserID)
		if err != nil {
			return nil, fmt.Errorf("fetch projects for user %s: %w", su.UserID, err)
		}
		for _, p := range memberships {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			if _, member := own[p.ID]; member {
				continue
			}
			recs = append(recs, s.projectRecommendation(p, su.Score))
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// hybridProjects fuses the content-based and collaborative rankings with
// the configured convex weights. Either branch failing degrades only
// that branch; the fusion runs over whatever survived.
func (s *Service) hybridProjects(ctx context.Context, user *models.User, limit int) (Result[ProjectRecommendation], error) {
	contentRes, err := guard(ctx, "content_based", func() ([]ProjectRecommendation, error) {
		return s.contentBasedProjects(ctx, user, limit)
	})
	if err != nil {
		return Empty[ProjectRecommendation](), err
	}

	collabRes, err := guard(ctx, "collaborative", func() ([]ProjectRecommendation, error) {
		return s.collaborativeProjects(ctx, user, limit)
	})
	if err != nil {
		return Empty[ProjectRecommendation](), err
	}

	if contentRes.IsDegraded() && collabRes.IsDegraded() {
		return Degraded[ProjectRecommendation](fmt.Errorf("hybrid: both branches failed: %v; %v",
			contentRes.Err(), collabRes.Err())), nil
	}

	content, collab := contentRes.Items(), collabRes.Items()

	byID := make(map[string]ProjectRecommendation, len(content)+len(collab))
	contentList := make([]ScoredItem, 0, len(content))
	for _, rec := range content {
		byID[rec.ProjectID] = rec
		contentList = append(contentList, ScoredItem{ID: rec.ProjectID, Score: rec.Score})
	}
	collabList := make([]ScoredItem, 0, len(collab))
	for _, rec := range collab {
		if _, ok := byID[rec.ProjectID]; !ok {
			byID[rec.ProjectID] = rec
		}
		collabList = append(collabList, ScoredItem{ID: rec.ProjectID, Score: rec.Score})
	}

	wContent, wCollab := s.cfg.Weights.HybridNormalized()
	merged := CombineRankings([]WeightedList{
		{Items: contentList, Weight: wContent},
		{Items: collabList, Weight: wCollab},
	}, limit)

	if len(merged) == 0 {
		return Empty[ProjectRecommendation](), nil
	}

	recs := make([]ProjectRecommendation, 0, len(merged))
	for _, item := range merged {
		rec := byID[item.ID]
		rec.Score = item.Score
		recs = append(recs, rec)
	}
	return Ok(recs), nil
}

// matchUsers scores each candidate by weighted Jaccard overlap and keeps
// those above the threshold, best first.
func (s *Service) matchUsers(user *models.User, candidates []*models.User, limit int) []UserMatch {
	wInterests, wSkills := s.cfg.Weights.MatchingNormalized()

	matches := make([]UserMatch, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == user.ID {
			continue
		}
		score := wInterests*JaccardSimilarity(user.Interests, c.Interests) +
			wSkills*JaccardSimilarity(user.Skills, c.Skills)
		if score <= s.cfg.Matching.MinScore {
			continue
		}
		matches = append(matches, UserMatch{
			UserID:          c.ID,
			Name:            c.Name,
			Role:            c.Role,
			Bio:             truncateText(c.Bio, s.cfg.Display.BioLimit),
			Score:           score,
			CommonInterests: commonElements(user.Interests, c.Interests),
			CommonSkills:    commonElements(user.Skills, c.Skills),
			Institution:     c.Institution,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// ownProjectIDs returns the set of project identifiers the user is a
// member of.
func (s *Service) ownProjectIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	own, err := s.data.ProjectsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch projects for user %s: %w", userID, err)
	}
	ids := make(map[string]struct{}, len(own))
	for _, p := range own {
		ids[p.ID] = struct{}{}
	}
	return ids, nil
}

// projectRecommendation builds the display item for a project.
func (s *Service) projectRecommendation(p *models.Project, score float64) ProjectRecommendation {
	techs := make([]string, 0, len(p.Technologies))
	for _, t := range p.Technologies {
		if t.Name != "" {
			techs = append(techs, t.Name)
		}
	}
	return ProjectRecommendation{
		ProjectID:    p.ID,
		Title:        p.Title,
		Description:  truncateText(p.Description, s.cfg.Display.DescriptionLimit),
		Score:        score,
		Tags:         p.Tags,
		Technologies: techs,
		Status:       p.Status,
		MemberCount:  len(p.Members),
	}
}
