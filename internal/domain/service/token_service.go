package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID int64    `json:"uid"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the user and returns its expiry.
	GenerateAccessToken(userID int64, email string, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration
}
