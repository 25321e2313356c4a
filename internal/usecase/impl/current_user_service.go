package impl

import (
	"context"
	"log/slog"

	deliverycontext "ucsbapi/internal/delivery/context"
	"ucsbapi/internal/domain/entity"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/domain/repository"
	"ucsbapi/internal/errors"
	"ucsbapi/internal/usecase"
)

type currentUserService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewCurrentUserService is the constructor for currentUserService.
func NewCurrentUserService(userRepo repository.UserRepository, logger *slog.Logger) usecase.CurrentUserUsecase {
	return &currentUserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Get loads the principal's account. Roles were resolved from the same account when the request authenticated.
func (srv *currentUserService) Get(ctx context.Context, principal *entity.Principal) (*entity.CurrentUser, error) {
	if principal == nil {
		return nil, domainerrors.ErrForbidden
	}

	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Token refers to a deleted account",
				slog.Int64("user_id", principal.UserID))

			return nil, domainerrors.ErrUnauthorized.WithMessage("Account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return entity.NewCurrentUser(user, principal.Roles), nil
}
