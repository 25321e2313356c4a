// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ucsbapi/internal/domain/resource"
)

// ResourceUsecase is the CRUD engine for one resource type.
type ResourceUsecase[T any, K resource.Key] interface {
	// Descriptor returns the resource this engine serves.
	Descriptor() resource.Descriptor[T, K]

	// List returns every record ordered by key.
	List(ctx context.Context) ([]*T, error)

	// Get returns the record or an EntityNotFoundError.
	Get(ctx context.Context, key K) (*T, error)

	// Create validates and stores a new record. Store-assigned keys in the input are ignored.
	Create(ctx context.Context, record *T) (*T, error)

	// Update replaces every non-key field of the record with the given key.
	Update(ctx context.Context, key K, record *T) (*T, error)

	// Delete removes the record or returns an EntityNotFoundError.
	Delete(ctx context.Context, key K) error
}
