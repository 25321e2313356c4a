package usecase

import (
	"context"
	"time"

	"ucsbapi/internal/domain/entity"
)

// Session is the result of a successful sign-in.
type Session struct {
	AccessToken string              `json:"accessToken"`
	ExpiresAt   time.Time           `json:"expiresAt"`
	CurrentUser *entity.CurrentUser `json:"currentUser"`
}

// SessionUsecase defines sign-in and token authentication.
type SessionUsecase interface {
	// LoginWithGoogle verifies the Google ID token, upserts the user and issues an access token.
	LoginWithGoogle(ctx context.Context, idToken string) (*Session, error)

	// IssueToken mints an access token for an existing or new account without Google.
	IssueToken(ctx context.Context, email string, admin bool) (*Session, error)

	// Authenticate resolves an access token to the calling principal.
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)
}
