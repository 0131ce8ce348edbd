// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package store

import (
	"context"
	"testing"
	"time"

	"github.com/ciconnect/recommender/internal/models"
	"github.com/ciconnect/recommender/internal/recommend"
)

func testMemory() *Memory {
	return NewMemory(
		[]*models.User{
			{ID: "u1", Role: models.RoleStudent},
			{ID: "u2", Role: models.RoleProfessor},
			{ID: "u3", Role: models.RoleStudent},
		},
		[]*models.Project{
			{
				ID:         "p1",
				Visibility: models.VisibilityPublic,
				Members:    []models.Member{{UserID: "u1"}},
				CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:         "p2",
				Visibility: models.VisibilityPrivate,
				Members:    []models.Member{{UserID: "u1"}, {UserID: "u2"}},
				CreatedAt:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	)
}

func TestMemoryUserByID(t *testing.T) {
	m := testMemory()

	u, err := m.UserByID(context.Background(), "u2")
	if err != nil {
		t.Fatalf("UserByID() error = %v", err)
	}
	if u == nil || u.ID != "u2" {
		t.Errorf("UserByID(u2) = %+v, want u2", u)
	}

	u, err = m.UserByID(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("UserByID(ghost) error = %v", err)
	}
	if u != nil {
		t.Errorf("UserByID(ghost) = %+v, want nil", u)
	}
}

func TestMemoryUsers(t *testing.T) {
	tests := []struct {
		name    string
		filter  recommend.UserFilter
		wantIDs []string
	}{
		{
			name:    "no filter returns all",
			wantIDs: []string{"u1", "u2", "u3"},
		},
		{
			name:    "role filter",
			filter:  recommend.UserFilter{Role: models.RoleStudent},
			wantIDs: []string{"u1", "u3"},
		},
		{
			name:    "exclude id",
			filter:  recommend.UserFilter{ExcludeID: "u1"},
			wantIDs: []string{"u2", "u3"},
		},
		{
			name:    "role and exclusion combined",
			filter:  recommend.UserFilter{Role: models.RoleStudent, ExcludeID: "u1"},
			wantIDs: []string{"u3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := testMemory().Users(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("Users() error = %v", err)
			}
			if len(users) != len(tt.wantIDs) {
				t.Fatalf("len(users) = %d, want %d", len(users), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if users[i].ID != want {
					t.Errorf("users[%d].ID = %s, want %s", i, users[i].ID, want)
				}
			}
		})
	}
}

func TestMemoryProjectByID(t *testing.T) {
	m := testMemory()

	p, err := m.ProjectByID(context.Background(), "p2")
	if err != nil {
		t.Fatalf("ProjectByID() error = %v", err)
	}
	if p == nil || p.ID != "p2" {
		t.Errorf("ProjectByID(p2) = %+v, want p2", p)
	}

	p, err = m.ProjectByID(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("ProjectByID(ghost) error = %v", err)
	}
	if p != nil {
		t.Errorf("ProjectByID(ghost) = %+v, want nil", p)
	}
}

func TestMemoryProjects(t *testing.T) {
	tests := []struct {
		name    string
		filter  recommend.ProjectFilter
		wantIDs []string
	}{
		{
			name:    "no filter returns all",
			wantIDs: []string{"p1", "p2"},
		},
		{
			name:    "visibility filter",
			filter:  recommend.ProjectFilter{Visibility: models.VisibilityPublic},
			wantIDs: []string{"p1"},
		},
		{
			name: "created after filter",
			filter: recommend.ProjectFilter{
				CreatedAfter: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			wantIDs: []string{"p2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects, err := testMemory().Projects(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("Projects() error = %v", err)
			}
			if len(projects) != len(tt.wantIDs) {
				t.Fatalf("len(projects) = %d, want %d", len(projects), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if projects[i].ID != want {
					t.Errorf("projects[%d].ID = %s, want %s", i, projects[i].ID, want)
				}
			}
		})
	}
}

func TestMemoryProjectsForUser(t *testing.T) {
	projects, err := testMemory().ProjectsForUser(context.Background(), "u2")
	if err != nil {
		t.Fatalf("ProjectsForUser() error = %v", err)
	}
	if len(projects) != 1 || projects[0].ID != "p2" {
		t.Errorf("ProjectsForUser(u2) = %+v, want [p2]", projects)
	}

	projects, err = testMemory().ProjectsForUser(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("ProjectsForUser(ghost) error = %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("ProjectsForUser(ghost) = %+v, want none", projects)
	}
}

func TestMemoryPing(t *testing.T) {
	if err := testMemory().Ping(context.Background()); err != nil {
		t.Errorf("Ping() = %v, want nil", err)
	}
}
