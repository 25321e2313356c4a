// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"ucsbapi/config"
	"ucsbapi/internal/domain/service"
	"ucsbapi/internal/errors"

	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService against Google's public keys.
type AuthServiceImpl struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks signature, audience, expiry and issuer, then maps the claims.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google oauth client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		GivenName:     claimString(payload.Claims, "given_name"),
		FamilyName:    claimString(payload.Claims, "family_name"),
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
		Locale:        claimString(payload.Claims, "locale"),
		HostedDomain:  claimString(payload.Claims, "hd"),
	}
	if user.Email == "" {
		return nil, errors.New("ID token has no email claim")
	}

	s.logger.InfoContext(ctx, "Google ID token verified",
		slog.String("sub", user.ID),
		slog.String("email", user.Email))

	return user, nil
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

// claimBool accepts both JSON booleans and the "true"/"false" strings older tokens carry.
func claimBool(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
