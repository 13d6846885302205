package mocks

import (
	"context"

	"github.com/suk-6/pickr-server/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueAccessTokenFunc   func(userID string) (string, error)
	IssueRefreshTokenFunc  func(ctx context.Context, userID string) (string, error)
	IssueTokenPairFunc     func(ctx context.Context, userID string) (*domain.TokenPair, error)
	DecodeAccessTokenFunc  func(token string) (*domain.AuthTokenClaims, error)
	DecodeRefreshTokenFunc func(token string) (*domain.AuthTokenClaims, error)
	VerifyAccessTokenFunc  func(userID, token string) bool
	VerifyRefreshTokenFunc func(ctx context.Context, userID, token string) (bool, error)
	RevokeRefreshTokenFunc func(ctx context.Context, userID string) error
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// IssueAccessToken issues an access token
func (m *MockTokenService) IssueAccessToken(userID string) (string, error) {
	if m.IssueAccessTokenFunc != nil {
		return m.IssueAccessTokenFunc(userID)
	}
	return "access_" + userID, nil
}

// IssueRefreshToken issues a refresh token
func (m *MockTokenService) IssueRefreshToken(ctx context.Context, userID string) (string, error) {
	if m.IssueRefreshTokenFunc != nil {
		return m.IssueRefreshTokenFunc(ctx, userID)
	}
	return "refresh_" + userID, nil
}

// IssueTokenPair issues an access/refresh token pair
func (m *MockTokenService) IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error) {
	if m.IssueTokenPairFunc != nil {
		return m.IssueTokenPairFunc(ctx, userID)
	}
	return &domain.TokenPair{
		AccessToken:  "access_" + userID,
		RefreshToken: "refresh_" + userID,
	}, nil
}

// DecodeAccessToken decodes and verifies an access token
func (m *MockTokenService) DecodeAccessToken(token string) (*domain.AuthTokenClaims, error) {
	if m.DecodeAccessTokenFunc != nil {
		return m.DecodeAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// DecodeRefreshToken decodes and verifies a refresh token
func (m *MockTokenService) DecodeRefreshToken(token string) (*domain.AuthTokenClaims, error) {
	if m.DecodeRefreshTokenFunc != nil {
		return m.DecodeRefreshTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// VerifyAccessToken verifies an access token for a subject
func (m *MockTokenService) VerifyAccessToken(userID, token string) bool {
	if m.VerifyAccessTokenFunc != nil {
		return m.VerifyAccessTokenFunc(userID, token)
	}
	return false
}

// VerifyRefreshToken verifies a refresh token against the stored slot
func (m *MockTokenService) VerifyRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	if m.VerifyRefreshTokenFunc != nil {
		return m.VerifyRefreshTokenFunc(ctx, userID, token)
	}
	return false, nil
}

// RevokeRefreshToken deletes the stored refresh token
func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, userID string) error {
	if m.RevokeRefreshTokenFunc != nil {
		return m.RevokeRefreshTokenFunc(ctx, userID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
