// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import "github.com/ciconnect/recommender/internal/models"

// ParticipationMatrix is a dense user-by-project membership matrix.
// Cells hold 1 where the row user is a member of the column project and 0
// elsewhere. The identifier slices are kept alongside the cells so factor-
// space indices can be mapped back to identifiers; their order is fixed
// for the lifetime of the matrix.
type ParticipationMatrix struct {
	// UserIDs are the row identifiers, in row order.
	UserIDs []string

	// ProjectIDs are the column identifiers, in column order.
	ProjectIDs []string

	// Cells is the row-major 0/1 matrix.
	Cells [][]float64

	rowIndex map[string]int
}

// BuildParticipationMatrix builds the membership matrix from full user
// and project snapshots. Membership is read off each project's member
// list. Zero users or zero projects produce an explicitly empty matrix,
// not an error; downstream collaborative filtering treats that as "no
// signal available".
func BuildParticipationMatrix(users []*models.User, projects []*models.Project) *ParticipationMatrix {
	m := &ParticipationMatrix{
		UserIDs:    make([]string, 0, len(users)),
		ProjectIDs: make([]string, 0, len(projects)),
		rowIndex:   make(map[string]int, len(users)),
	}

	for _, u := range users {
		if _, dup := m.rowIndex[u.ID]; dup {
			continue
		}
		m.rowIndex[u.ID] = len(m.UserIDs)
		m.UserIDs = append(m.UserIDs, u.ID)
	}
	for _, p := range projects {
		m.ProjectIDs = append(m.ProjectIDs, p.ID)
	}

	if len(m.UserIDs) == 0 || len(m.ProjectIDs) == 0 {
		return m
	}

	m.Cells = make([][]float64, len(m.UserIDs))
	for i := range m.Cells {
		m.Cells[i] = make([]float64, len(m.ProjectIDs))
	}

	for col, p := range projects {
		for _, member := range p.Members {
			if row, ok := m.rowIndex[member.UserID]; ok {
				m.Cells[row][col] = 1
			}
		}
	}
	return m
}

// IsEmpty reports whether the matrix has no rows or no columns.
func (m *ParticipationMatrix) IsEmpty() bool {
	return len(m.UserIDs) == 0 || len(m.ProjectIDs) == 0
}

// RowIndex returns the row position of a user identifier.
func (m *ParticipationMatrix) RowIndex(userID string) (int, bool) {
	i, ok := m.rowIndex[userID]
	return i, ok
}

// Row returns the membership vector of the given row.
func (m *ParticipationMatrix) Row(i int) []float64 {
	return m.Cells[i]
}
