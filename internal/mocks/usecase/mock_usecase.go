// Package usecase provides testify mocks of the usecase interfaces.
package usecase

import (
	"context"
	"testing"

	"ucsbapi/internal/domain/entity"
	"ucsbapi/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockSessionUsecase is a mock of usecase.SessionUsecase.
type MockSessionUsecase struct {
	mock.Mock
}

var _ usecase.SessionUsecase = (*MockSessionUsecase)(nil)

// NewMockSessionUsecase creates the mock and asserts its expectations on cleanup.
func NewMockSessionUsecase(t *testing.T) *MockSessionUsecase {
	m := &MockSessionUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionUsecase) LoginWithGoogle(ctx context.Context, idToken string) (*usecase.Session, error) {
	args := m.Called(ctx, idToken)
	session, _ := args.Get(0).(*usecase.Session)

	return session, args.Error(1)
}

func (m *MockSessionUsecase) IssueToken(ctx context.Context, email string, admin bool) (*usecase.Session, error) {
	args := m.Called(ctx, email, admin)
	session, _ := args.Get(0).(*usecase.Session)

	return session, args.Error(1)
}

func (m *MockSessionUsecase) Authenticate(ctx context.Context, token string) (*entity.Principal, error) {
	args := m.Called(ctx, token)
	principal, _ := args.Get(0).(*entity.Principal)

	return principal, args.Error(1)
}
