package usecase

import (
	"context"

	"ucsbapi/internal/domain/entity"
)

// GrantedAuthoritiesUsecase decides which roles a user holds.
type GrantedAuthoritiesUsecase interface {
	Roles(user *entity.User) entity.Roles
}

// CurrentUserUsecase resolves the signed-in account for the frontend.
type CurrentUserUsecase interface {
	Get(ctx context.Context, principal *entity.Principal) (*entity.CurrentUser, error)
}

// SystemInfoUsecase reports build and environment details.
type SystemInfoUsecase interface {
	Get(ctx context.Context) *entity.SystemInfo
}
