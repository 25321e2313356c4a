// Package repository provides testify mocks of the domain repository interfaces.
package repository

import (
	"context"
	"testing"

	"ucsbapi/internal/domain/entity"
	"ucsbapi/internal/domain/resource"

	"github.com/stretchr/testify/mock"
)

// MockResourceRepository is a mock of repository.ResourceRepository.
type MockResourceRepository[T any, K resource.Key] struct {
	mock.Mock
}

// NewMockResourceRepository creates the mock and asserts its expectations on cleanup.
func NewMockResourceRepository[T any, K resource.Key](t *testing.T) *MockResourceRepository[T, K] {
	m := &MockResourceRepository[T, K]{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockResourceRepository[T, K]) FindAll(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]*T)

	return records, args.Error(1)
}

func (m *MockResourceRepository[T, K]) FindByID(ctx context.Context, key K) (*T, error) {
	args := m.Called(ctx, key)
	record, _ := args.Get(0).(*T)

	return record, args.Error(1)
}

func (m *MockResourceRepository[T, K]) Create(ctx context.Context, record *T) (*T, error) {
	args := m.Called(ctx, record)
	created, _ := args.Get(0).(*T)

	return created, args.Error(1)
}

func (m *MockResourceRepository[T, K]) Update(ctx context.Context, record *T) (*T, error) {
	args := m.Called(ctx, record)
	updated, _ := args.Get(0).(*T)

	return updated, args.Error(1)
}

func (m *MockResourceRepository[T, K]) Delete(ctx context.Context, key K) error {
	return m.Called(ctx, key).Error(0)
}

// MockUserRepository is a mock of repository.UserRepository.
type MockUserRepository struct {
	MockResourceRepository[entity.User, int64]
}

// NewMockUserRepository creates the mock and asserts its expectations on cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	args := m.Called(ctx, user)
	saved, _ := args.Get(0).(*entity.User)

	return saved, args.Error(1)
}

// PassthroughTransactionManager runs fn directly with the caller's context.
type PassthroughTransactionManager struct {
	Calls int
}

func (m *PassthroughTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++

	return fn(ctx)
}
