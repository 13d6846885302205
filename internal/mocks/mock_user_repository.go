package mocks

import (
	"context"

	"github.com/suk-6/pickr-server/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *domain.User) error
	FindByLoginIDFunc func(ctx context.Context, loginID string) (*domain.User, error)
	FindByIDFunc      func(ctx context.Context, id string) (*domain.User, error)
	UpdatePhoneFunc   func(ctx context.Context, userID, phone string) error
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

// FindByLoginID finds a user by login id
func (m *MockUserRepository) FindByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	if m.FindByLoginIDFunc != nil {
		return m.FindByLoginIDFunc(ctx, loginID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdatePhone commits a verified phone number to the user record
func (m *MockUserRepository) UpdatePhone(ctx context.Context, userID, phone string) error {
	if m.UpdatePhoneFunc != nil {
		return m.UpdatePhoneFunc(ctx, userID, phone)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
