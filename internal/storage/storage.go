// Package storage defines the persistence interfaces the HTTP layer depends
// on. Handlers receive these interfaces so tests can substitute in-memory
// fakes for the real backends.
package storage

import (
	"context"
	"errors"

	"taskedge/internal/models"
)

// ErrNotFound is returned when no record matches the given identifier.
var ErrNotFound = errors.New("record not found")

// TaskStore persists tasks in the relational backend.
type TaskStore interface {
	// ListTasks returns all tasks ordered by creation time, newest first.
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, t models.Task) error
	GetTask(ctx context.Context, id string) (models.Task, error)
	// UpdateTask overwrites the stored record with t. Returns ErrNotFound
	// when no task exists with t.ID.
	UpdateTask(ctx context.Context, t models.Task) error
	DeleteTask(ctx context.Context, id string) error
}

// PreferenceStore persists per-deployment key-value preferences.
type PreferenceStore interface {
	// GetPreference returns the stored value, or "" when the key is unset.
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
}

// Store is the full persistence surface a backend must provide.
type Store interface {
	TaskStore
	PreferenceStore
	Close() error
}
