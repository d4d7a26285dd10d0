package mocks

import (
	"context"

	"github.com/you/currencysvc/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	ExistsFunc      func(ctx context.Context, email string) (bool, error)
	UpsertFunc      func(ctx context.Context, email, passwordHash string) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Exists reports whether a user with the given email exists
func (m *MockUserRepository) Exists(ctx context.Context, email string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, email)
	}
	// Default behavior: not found
	return false, nil
}

// Upsert creates or updates a user
func (m *MockUserRepository) Upsert(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, email, passwordHash)
	}
	// Default behavior: create
	return &domain.User{ID: 1, Email: email, PasswordHash: passwordHash, IsActive: true}, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
