package service

import "context"

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string // Provider-specific user ID (Google's 'sub' claim)
	Email         string
	Name          string
	GivenName     string
	FamilyName    string
	AvatarURL     string // URL to user's profile picture
	EmailVerified bool   // Whether the email is verified by the provider
	Locale        string
	HostedDomain  string // Google Workspace domain ('hd' claim), empty for consumer accounts
}

// OAuthAuthService defines the interface for OAuth authentication operations
// This is specifically for ID token verification (like Google ID tokens)
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
