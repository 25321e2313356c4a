// Package service provides testify mocks of the domain service interfaces.
package service

import (
	"context"
	"testing"
	"time"

	"ucsbapi/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates the mock and asserts its expectations on cleanup.
func NewMockEventPublisher(t *testing.T) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishResourceEvent(ctx context.Context, event *service.ResourceEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates the mock and asserts its expectations on cleanup.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateAccessToken(userID int64, email string, roles []string) (string, time.Time, error) {
	args := m.Called(userID, email, roles)
	expiresAt, _ := args.Get(1).(time.Time)

	return args.String(0), expiresAt, args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) AccessTokenDuration() time.Duration {
	d, _ := m.Called().Get(0).(time.Duration)

	return d
}

// MockOAuthAuthService is a mock of service.OAuthAuthService.
type MockOAuthAuthService struct {
	mock.Mock
}

// NewMockOAuthAuthService creates the mock and asserts its expectations on cleanup.
func NewMockOAuthAuthService(t *testing.T) *MockOAuthAuthService {
	m := &MockOAuthAuthService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOAuthAuthService) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	args := m.Called(ctx, idToken)
	user, _ := args.Get(0).(*service.OAuthUser)

	return user, args.Error(1)
}
