package mocks

import (
	"context"
	"time"

	"github.com/suk-6/pickr-server/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	LoginFunc           func(ctx context.Context, loginID, password string) (*domain.TokenPair, error)
	RegisterFunc        func(ctx context.Context, loginID, password string) (*domain.TokenPair, error)
	LogoutFunc          func(ctx context.Context, userID string) error
	RefreshFunc         func(ctx context.Context, userID string) (*domain.TokenPair, error)
	RequestPhoneOTPFunc func(ctx context.Context, userID, phone string) (*domain.PhoneChallenge, error)
	RegisterPhoneFunc   func(ctx context.Context, userID, phoneToken, otp string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Login authenticates a user by credentials
func (m *MockAuthService) Login(ctx context.Context, loginID, password string) (*domain.TokenPair, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, loginID, password)
	}
	return nil, domain.ErrUserNotFound
}

// Register creates a new user
func (m *MockAuthService) Register(ctx context.Context, loginID, password string) (*domain.TokenPair, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, loginID, password)
	}
	return &domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

// Logout revokes the user's refresh token
func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	return nil
}

// Refresh issues a new token pair
func (m *MockAuthService) Refresh(ctx context.Context, userID string) (*domain.TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, userID)
	}
	return &domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

// RequestPhoneOTP starts a phone verification challenge
func (m *MockAuthService) RequestPhoneOTP(ctx context.Context, userID, phone string) (*domain.PhoneChallenge, error) {
	if m.RequestPhoneOTPFunc != nil {
		return m.RequestPhoneOTPFunc(ctx, userID, phone)
	}
	return &domain.PhoneChallenge{
		PhoneToken: "phone_token",
		ExpiresAt:  time.Now().Add(3 * time.Minute),
	}, nil
}

// RegisterPhone confirms a phone verification challenge
func (m *MockAuthService) RegisterPhone(ctx context.Context, userID, phoneToken, otp string) error {
	if m.RegisterPhoneFunc != nil {
		return m.RegisterPhoneFunc(ctx, userID, phoneToken, otp)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
