// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package store

import (
	"context"

	"github.com/ciconnect/recommender/internal/models"
	"github.com/ciconnect/recommender/internal/recommend"
)

// Memory is an in-memory store backing tests and local development. It
// preserves insertion order, which stands in for the sorted order the
// Mongo implementation guarantees.
type Memory struct {
	users    []*models.User
	projects []*models.Project
}

// Interface guards.
var (
	_ recommend.DataProvider = (*Memory)(nil)
	_ Pinger                 = (*Memory)(nil)
)

// NewMemory creates an in-memory store with the given snapshot.
func NewMemory(users []*models.User, projects []*models.Project) *Memory {
	return &Memory{users: users, projects: projects}
}

// Ping always succeeds.
func (m *Memory) Ping(_ context.Context) error {
	return nil
}

// UserByID fetches one user, or (nil, nil) when absent.
func (m *Memory) UserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Users fetches users matching the filter, in insertion order.
func (m *Memory) Users(_ context.Context, f recommend.UserFilter) ([]*models.User, error) {
	var users []*models.User
	for _, u := range m.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.ExcludeID != "" && u.ID == f.ExcludeID {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// ProjectByID fetches one project, or (nil, nil) when absent.
func (m *Memory) ProjectByID(_ context.Context, id string) (*models.Project, error) {
	for _, p := range m.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Projects fetches projects matching the filter, in insertion order.
func (m *Memory) Projects(_ context.Context, f recommend.ProjectFilter) ([]*models.Project, error) {
	var projects []*models.Project
	for _, p := range m.projects {
		if f.Visibility != "" && p.Visibility != f.Visibility {
			continue
		}
		if !f.CreatedAfter.IsZero() && p.CreatedAt.Before(f.CreatedAfter) {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// ProjectsForUser fetches the projects a user is a member of.
func (m *Memory) ProjectsForUser(_ context.Context, userID string) ([]*models.Project, error) {
	var projects []*models.Project
	for _, p := range m.projects {
		if p.HasMember(userID) {
			projects = append(projects, p)
		}
	}
	return projects, nil
}
