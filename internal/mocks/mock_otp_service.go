package mocks

import (
	"context"
	"time"

	"github.com/suk-6/pickr-server/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	RequestFunc func(ctx context.Context, userID, phone string) (*domain.PhoneChallenge, error)
	ConfirmFunc func(ctx context.Context, userID, phoneToken, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Request starts a phone verification challenge
func (m *MockOTPService) Request(ctx context.Context, userID, phone string) (*domain.PhoneChallenge, error) {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, userID, phone)
	}
	return &domain.PhoneChallenge{
		PhoneToken: "phone_token_" + userID,
		ExpiresAt:  time.Now().Add(3 * time.Minute),
	}, nil
}

// Confirm validates a claimed code against a challenge
func (m *MockOTPService) Confirm(ctx context.Context, userID, phoneToken, code string) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, userID, phoneToken, code)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
