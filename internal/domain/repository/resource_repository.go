// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"ucsbapi/internal/domain/resource"
	"ucsbapi/internal/errors"
)

var (
	// ErrRecordNotFound is returned when no record matches the key.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a create collides with an existing key.
	ErrDuplicateKey = errors.New("duplicate key")
)

// ResourceRepository is the persistence contract shared by every CRUD resource.
type ResourceRepository[T any, K resource.Key] interface {
	// FindAll returns every record ordered by key.
	FindAll(ctx context.Context) ([]*T, error)

	// FindByID returns ErrRecordNotFound when no record has the key.
	FindByID(ctx context.Context, key K) (*T, error)

	// Create persists a new record and returns it with its stored key.
	Create(ctx context.Context, record *T) (*T, error)

	// Update replaces every non-key field of the record with the given key.
	Update(ctx context.Context, record *T) (*T, error)

	// Delete removes the record, or returns ErrRecordNotFound.
	Delete(ctx context.Context, key K) error
}
