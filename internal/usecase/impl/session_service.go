package impl

import (
	"context"
	"log/slog"
	"strings"

	"ucsbapi/config"
	deliverycontext "ucsbapi/internal/delivery/context"
	"ucsbapi/internal/domain/entity"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/domain/repository"
	"ucsbapi/internal/domain/service"
	"ucsbapi/internal/errors"
	"ucsbapi/internal/usecase"

	"go.uber.org/fx"
)

// SessionParams holds dependencies for sessionService, injected by Fx
type SessionParams struct {
	fx.In

	Config       *config.Config
	UserRepo     repository.UserRepository
	TokenService service.TokenService
	OAuthService service.OAuthAuthService
	Authorities  usecase.GrantedAuthoritiesUsecase
	Logger       *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth         config.AuthConfig
	userRepo     repository.UserRepository
	tokenService service.TokenService
	oauthService service.OAuthAuthService
	authorities  usecase.GrantedAuthoritiesUsecase
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionParams) usecase.SessionUsecase {
	return &sessionService{
		auth:         params.Config.Auth,
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		oauthService: params.OAuthService,
		authorities:  params.Authorities,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) LoginWithGoogle(ctx context.Context, idToken string) (*usecase.Session, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("idToken is required")
	}

	oauthUser, err := srv.oauthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google sign-in rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrIdentityTokenInvalid, err.Error())
	}

	user, err := srv.userRepo.Upsert(ctx, &entity.User{
		Email:         oauthUser.Email,
		GoogleSub:     oauthUser.ID,
		PictureURL:    oauthUser.AvatarURL,
		FullName:      oauthUser.Name,
		GivenName:     oauthUser.GivenName,
		FamilyName:    oauthUser.FamilyName,
		EmailVerified: oauthUser.EmailVerified,
		Locale:        oauthUser.Locale,
		HostedDomain:  oauthUser.HostedDomain,
		Admin:         srv.auth.IsAdminEmail(oauthUser.Email),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save user")
	}

	srv.log(ctx).Info("User signed in", slog.Int64("user_id", user.ID), slog.String("email", user.Email))

	return srv.newSession(user)
}

func (srv *sessionService) IssueToken(ctx context.Context, email string, admin bool) (*usecase.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("email is required")
	}

	user := &entity.User{Email: email, EmailVerified: true, Admin: admin || srv.auth.IsAdminEmail(email)}
	if at := strings.LastIndex(email, "@"); at >= 0 {
		user.HostedDomain = email[at+1:]
	}

	saved, err := srv.userRepo.Upsert(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save user")
	}

	return srv.newSession(saved)
}

// Authenticate validates the token and resolves roles from the stored account,
// so a deleted or demoted user loses access before the token expires.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.Principal, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			srv.log(ctx).Warn("Token refers to a deleted account", slog.Int64("user_id", claims.UserID))

			return nil, domainerrors.ErrUnauthorized.WithMessage("Account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token owner")
	}

	return &entity.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Roles:  srv.authorities.Roles(user),
	}, nil
}

func (srv *sessionService) newSession(user *entity.User) (*usecase.Session, error) {
	roles := srv.authorities.Roles(user)

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.Session{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		CurrentUser: entity.NewCurrentUser(user, roles),
	}, nil
}
