package impl

import (
	"context"
	"net/http"
	"runtime/debug"
	"testing"
	"time"

	"ucsbapi/config"
	"ucsbapi/internal/domain/entity"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/domain/repository"
	"ucsbapi/internal/domain/service"
	"ucsbapi/internal/errors"
	mockRepo "ucsbapi/internal/mocks/repository"
	mockService "ucsbapi/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.AdminEmails = []string{"phtcon@ucsb.edu"}
	cfg.Auth.MemberHostedDomain = "ucsb.edu"
	cfg.Env.ServiceName = "ucsbapi"
	cfg.Env.Env = "develop"
	cfg.SystemInfo.SourceRepo = "https://github.com/ucsb-cs156/demo"

	return cfg
}

func TestGrantedAuthorities_Roles(t *testing.T) {
	svc := NewGrantedAuthoritiesService(newAuthConfig())

	tests := []struct {
		name string
		user *entity.User
		want entity.Roles
	}{
		{name: "nil user", user: nil, want: entity.Roles{entity.RoleUser}},
		{name: "consumer account", user: &entity.User{Email: "someone@gmail.com"}, want: entity.Roles{entity.RoleUser}},
		{name: "member", user: &entity.User{Email: "cgaucho@ucsb.edu", HostedDomain: "ucsb.edu"}, want: entity.Roles{entity.RoleUser, entity.RoleMember}},
		{name: "admin flag", user: &entity.User{Email: "x@gmail.com", Admin: true}, want: entity.Roles{entity.RoleUser, entity.RoleAdmin}},
		{name: "admin email", user: &entity.User{Email: "phtcon@ucsb.edu", HostedDomain: "UCSB.edu"}, want: entity.Roles{entity.RoleUser, entity.RoleAdmin, entity.RoleMember}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Roles(tt.user))
		})
	}
}

func TestCurrentUserService_Get(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCurrentUserService(userRepo, discardLogger())
	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "cgaucho@ucsb.edu"}

	userRepo.On("FindByID", ctx, int64(7)).Return(user, nil)

	current, err := svc.Get(ctx, &entity.Principal{UserID: 7, Roles: entity.Roles{entity.RoleUser, entity.RoleMember}})
	require.NoError(t, err)
	assert.Equal(t, user, current.User)
	assert.Equal(t, []entity.GrantedAuthority{{Authority: "ROLE_USER"}, {Authority: "ROLE_MEMBER"}}, current.Roles)
}

func TestCurrentUserService_DeletedAccount(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCurrentUserService(userRepo, discardLogger())
	ctx := context.Background()

	userRepo.On("FindByID", ctx, int64(7)).Return(nil, repository.ErrRecordNotFound)

	_, err := svc.Get(ctx, &entity.Principal{UserID: 7})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestCurrentUserService_NoPrincipal(t *testing.T) {
	svc := NewCurrentUserService(mockRepo.NewMockUserRepository(t), discardLogger())

	_, err := svc.Get(context.Background(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSystemInfoService(t *testing.T) {
	info := NewSystemInfoService(newAuthConfig()).Get(context.Background())

	assert.Equal(t, "ucsbapi", info.ServiceName)
	assert.Equal(t, "develop", info.Env)
	assert.Equal(t, "https://github.com/ucsb-cs156/demo", info.SourceRepo)
	assert.NotEmpty(t, info.CommitID)
	assert.False(t, info.StartedAt.IsZero())
}

func TestCommitID(t *testing.T) {
	withRevision := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}}}, true
	}
	noInfo := func() (*debug.BuildInfo, bool) { return nil, false }

	assert.Equal(t, "abc123", commitID(withRevision))
	assert.Equal(t, "unknown", commitID(noInfo))
}

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service      *sessionService
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockService.MockTokenService
	oauthService *mockService.MockOAuthAuthService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	cfg := newAuthConfig()
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	oauthService := mockService.NewMockOAuthAuthService(t)

	svc := NewSessionService(SessionParams{
		Config:       cfg,
		UserRepo:     userRepo,
		TokenService: tokenService,
		OAuthService: oauthService,
		Authorities:  NewGrantedAuthoritiesService(cfg),
		Logger:       discardLogger(),
	})

	return sessionServiceFixtures{
		service:      svc.(*sessionService),
		userRepo:     userRepo,
		tokenService: tokenService,
		oauthService: oauthService,
	}
}

func TestSessionService_LoginWithGoogle(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	fx.oauthService.On("VerifyIDToken", ctx, "id-token").Return(&service.OAuthUser{
		ID:            "sub-1",
		Email:         "phtcon@ucsb.edu",
		Name:          "Phill Conrad",
		EmailVerified: true,
		HostedDomain:  "ucsb.edu",
	}, nil)
	fx.userRepo.On("Upsert", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "phtcon@ucsb.edu" && u.GoogleSub == "sub-1" && u.Admin
	})).Return(&entity.User{ID: 1, Email: "phtcon@ucsb.edu", HostedDomain: "ucsb.edu", Admin: true}, nil)
	fx.tokenService.On("GenerateAccessToken", int64(1), "phtcon@ucsb.edu", []string{"ROLE_USER", "ROLE_ADMIN", "ROLE_MEMBER"}).
		Return("jwt", expiresAt, nil)

	session, err := fx.service.LoginWithGoogle(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, "jwt", session.AccessToken)
	assert.Equal(t, expiresAt, session.ExpiresAt)
	assert.Equal(t, int64(1), session.CurrentUser.User.ID)
	assert.Len(t, session.CurrentUser.Roles, 3)
}

func TestSessionService_LoginWithGoogle_Rejected(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.oauthService.On("VerifyIDToken", ctx, "bad").Return(nil, errors.New("token expired"))

	_, err := fx.service.LoginWithGoogle(ctx, "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityTokenInvalid))
}

func TestSessionService_LoginWithGoogle_EmptyToken(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.LoginWithGoogle(context.Background(), " ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSessionService_IssueToken(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.userRepo.On("Upsert", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "dev@ucsb.edu" && u.Admin && u.HostedDomain == "ucsb.edu"
	})).Return(&entity.User{ID: 3, Email: "dev@ucsb.edu", HostedDomain: "ucsb.edu", Admin: true}, nil)
	fx.tokenService.On("GenerateAccessToken", int64(3), "dev@ucsb.edu", mock.Anything).Return("jwt", time.Now(), nil)

	session, err := fx.service.IssueToken(ctx, "dev@ucsb.edu", true)
	require.NoError(t, err)
	assert.Equal(t, "jwt", session.AccessToken)
}

func TestSessionService_Authenticate(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.tokenService.On("ValidateToken", "good").Return(&service.Claims{
		UserID: 9,
		Email:  "cgaucho@ucsb.edu",
		Roles:  []string{"ROLE_USER", "ROLE_ADMIN"},
	}, nil)
	fx.tokenService.On("ValidateToken", "bad").Return(nil, errors.New("signature is invalid"))
	fx.userRepo.On("FindByID", ctx, int64(9)).
		Return(&entity.User{ID: 9, Email: "cgaucho@ucsb.edu", HostedDomain: "ucsb.edu"}, nil)

	principal, err := fx.service.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, int64(9), principal.UserID)
	// The stored account is no longer an admin, so the claim is not honored.
	assert.Equal(t, entity.Roles{entity.RoleUser, entity.RoleMember}, principal.Roles)

	_, err = fx.service.Authenticate(ctx, "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestSessionService_Authenticate_DeletedAccount(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.tokenService.On("ValidateToken", "orphan").Return(&service.Claims{
		UserID: 4,
		Email:  "gone@ucsb.edu",
		Roles:  []string{"ROLE_USER", "ROLE_ADMIN"},
	}, nil)
	fx.userRepo.On("FindByID", ctx, int64(4)).Return(nil, repository.ErrRecordNotFound)

	_, err := fx.service.Authenticate(ctx, "orphan")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}
