// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

// Package models defines the domain entities the recommender operates on.
// All entities are read-only snapshots owned by the platform backend; this
// service never writes them.
package models

// Role identifies the kind of platform account.
type Role string

const (
	// RoleStudent is a student account.
	RoleStudent Role = "student"

	// RoleProfessor is a professor account. Professors additionally carry
	// research areas.
	RoleProfessor Role = "professor"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleProfessor
}

// String returns the role as a string.
func (r Role) String() string {
	return string(r)
}

// User is a platform account as stored by the backend.
type User struct {
	// ID is the opaque user identifier.
	ID string `bson:"_id" json:"id"`

	// Name is the display name.
	Name string `bson:"name" json:"name"`

	// Email is the account email address.
	Email string `bson:"email" json:"email,omitempty"`

	// Role is student or professor.
	Role Role `bson:"role" json:"role"`

	// Bio is the free-text biography.
	Bio string `bson:"bio" json:"bio,omitempty"`

	// Interests are self-declared topic interests.
	Interests []string `bson:"interests" json:"interests,omitempty"`

	// Skills are self-declared technical skills.
	Skills []string `bson:"skills" json:"skills,omitempty"`

	// ResearchAreas are declared research areas (professors only).
	ResearchAreas []string `bson:"researchAreas" json:"research_areas,omitempty"`

	// Institution is the affiliated institution.
	Institution string `bson:"institution" json:"institution,omitempty"`

	// Department is the course or department within the institution.
	Department string `bson:"department" json:"department,omitempty"`
}
