// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package models

import "time"

// Visibility controls who can see a project.
type Visibility string

const (
	// VisibilityPublic projects are visible to everyone and eligible for
	// content-based recommendation.
	VisibilityPublic Visibility = "public"

	// VisibilityRestricted projects are visible to institution members only.
	VisibilityRestricted Visibility = "restricted"

	// VisibilityPrivate projects are visible to members only.
	VisibilityPrivate Visibility = "private"
)

// String returns the visibility as a string.
func (v Visibility) String() string {
	return string(v)
}

// Technology is a tool or language a project uses.
type Technology struct {
	// Name is the technology name, e.g. "python".
	Name string `bson:"name" json:"name"`

	// Category classifies the technology: language, framework, library,
	// tool, database, or platform.
	Category string `bson:"category" json:"category,omitempty"`
}

// Member is a user's membership in a project.
type Member struct {
	// UserID is the member's user identifier.
	UserID string `bson:"user" json:"user_id"`

	// Role is the member's role in the project: leader, member, or advisor.
	Role string `bson:"role" json:"role,omitempty"`

	// JoinedAt is when the user joined the project.
	JoinedAt time.Time `bson:"joinedAt" json:"joined_at,omitempty"`
}

// Project is a research project as stored by the backend.
type Project struct {
	// ID is the opaque project identifier.
	ID string `bson:"_id" json:"id"`

	// Title is the project title.
	Title string `bson:"title" json:"title"`

	// Description is the free-text project description.
	Description string `bson:"description" json:"description,omitempty"`

	// Status is the lifecycle state, e.g. "Planning" or "Ongoing".
	Status string `bson:"status" json:"status,omitempty"`

	// Visibility controls recommendation eligibility.
	Visibility Visibility `bson:"visibility" json:"visibility"`

	// Tags are lowercase topic tags.
	Tags []string `bson:"tags" json:"tags,omitempty"`

	// Technologies is the ordered list of technologies the project uses.
	Technologies []Technology `bson:"technologies" json:"technologies,omitempty"`

	// Methodology is the free-text research methodology.
	Methodology string `bson:"methodology" json:"methodology,omitempty"`

	// Members are the project's members.
	Members []Member `bson:"members" json:"members,omitempty"`

	// CreatedAt is the project creation timestamp.
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

// MemberIDs returns the user identifiers of all members.
func (p *Project) MemberIDs() []string {
	ids := make([]string, 0, len(p.Members))
	for _, m := range p.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}

// HasMember reports whether the given user is a member of the project.
func (p *Project) HasMember(userID string) bool {
	for _, m := range p.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
