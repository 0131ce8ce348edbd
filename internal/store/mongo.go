// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ciconnect/recommender/internal/models"
	"github.com/ciconnect/recommender/internal/recommend"
)

const (
	usersCollection    = "users"
	projectsCollection = "projects"
)

// Mongo reads users and projects from the platform's MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Interface guards.
var (
	_ recommend.DataProvider = (*Mongo)(nil)
	_ Pinger                 = (*Mongo)(nil)
)

// Connect establishes a MongoDB connection and verifies it with a ping.
// The caller owns the context deadline for the connection attempt.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping verifies database liveness.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// UserByID fetches one user by identifier. Returns (nil, nil) when no
// user matches.
func (m *Mongo) UserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := m.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return &user, nil
}

// ProjectByID fetches one project by identifier. Returns (nil, nil) when
// no project matches.
func (m *Mongo) ProjectByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := m.db.Collection(projectsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find project %s: %w", id, err)
	}
	return &project, nil
}

// Users fetches users matching the filter, sorted by identifier so
// participation matrix row order is reproducible across calls.
func (m *Mongo) Users(ctx context.Context, f recommend.UserFilter) ([]*models.User, error) {
	filter := bson.M{}
	if f.Role != "" {
		filter["role"] = f.Role
	}
	if f.ExcludeID != "" {
		filter["_id"] = bson.M{"$ne": f.ExcludeID}
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := m.db.Collection(usersCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, &u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// Projects fetches projects matching the filter, sorted by identifier
// for reproducible column order.
func (m *Mongo) Projects(ctx context.Context, f recommend.ProjectFilter) ([]*models.Project, error) {
	filter := bson.M{}
	if f.Visibility != "" {
		filter["visibility"] = f.Visibility
	}
	if !f.CreatedAfter.IsZero() {
		filter["createdAt"] = bson.M{"$gte": f.CreatedAfter}
	}

	return m.findProjects(ctx, filter)
}

// ProjectsForUser fetches the projects a user is a member of.
func (m *Mongo) ProjectsForUser(ctx context.Context, userID string) ([]*models.Project, error) {
	return m.findProjects(ctx, bson.M{"members.user": userID})
}

func (m *Mongo) findProjects(ctx context.Context, filter bson.M) ([]*models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := m.db.Collection(projectsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*models.Project
	for cursor.Next(ctx) {
		var p models.Project
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}
