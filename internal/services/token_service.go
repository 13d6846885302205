package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/suk-6/pickr-server/domain"
)

// TokenServiceImpl implements domain.TokenService. Signed tokens are
// stateless except for the refresh token, which also lives in a single
// per-user slot in the volatile store; only the stored copy is considered
// live, so reissuing invalidates the previous one before it expires.
type TokenServiceImpl struct {
	signer     domain.TokenSigner
	store      domain.VolatileStore
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(signer domain.TokenSigner, store domain.VolatileStore, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &TokenServiceImpl{
		signer:     signer,
		store:      store,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func refreshKey(userID string) string {
	return "REFRESH/" + userID
}

// IssueAccessToken implements domain.TokenService
func (s *TokenServiceImpl) IssueAccessToken(userID string) (string, error) {
	return s.signer.SignAuthToken(userID, domain.TokenKindAccess, s.accessTTL)
}

// IssueRefreshToken implements domain.TokenService. The new token overwrites
// whatever the user's slot held before.
func (s *TokenServiceImpl) IssueRefreshToken(ctx context.Context, userID string) (string, error) {
	token, err := s.signer.SignAuthToken(userID, domain.TokenKindRefresh, s.refreshTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.store.Set(ctx, refreshKey(userID), token, 0); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return token, nil
}

// IssueTokenPair implements domain.TokenService
func (s *TokenServiceImpl) IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error) {
	accessToken, err := s.IssueAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := s.IssueRefreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// DecodeAccessToken implements domain.TokenService
func (s *TokenServiceImpl) DecodeAccessToken(token string) (*domain.AuthTokenClaims, error) {
	claims, err := s.signer.VerifyAuthToken(token)
	if err != nil {
		return nil, err
	}
	if claims.Kind != domain.TokenKindAccess {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// DecodeRefreshToken implements domain.TokenService
func (s *TokenServiceImpl) DecodeRefreshToken(token string) (*domain.AuthTokenClaims, error) {
	claims, err := s.signer.VerifyAuthToken(token)
	if err != nil {
		return nil, err
	}
	if claims.Kind != domain.TokenKindRefresh {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// VerifyAccessToken implements domain.TokenService. Validity is determined
// purely by the signature, expiry and the embedded subject.
func (s *TokenServiceImpl) VerifyAccessToken(userID, token string) bool {
	claims, err := s.DecodeAccessToken(token)
	if err != nil {
		return false
	}
	return claims.UserID == userID
}

// VerifyRefreshToken implements domain.TokenService. The stored slot is the
// source of truth: the presented token must exactly equal the stored copy.
func (s *TokenServiceImpl) VerifyRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	stored, err := s.store.Get(ctx, refreshKey(userID))
	if errors.Is(err, domain.ErrValueNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read refresh token slot: %w", err)
	}
	return stored == token, nil
}

// RevokeRefreshToken implements domain.TokenService
func (s *TokenServiceImpl) RevokeRefreshToken(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, refreshKey(userID))
}
