package repository

import (
	"context"

	"ucsbapi/internal/domain/entity"
)

// UserRepository adds sign-in lookups to the generic user store.
type UserRepository interface {
	ResourceRepository[entity.User, int64]

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Upsert inserts the user or refreshes the existing row with the same email.
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
}
