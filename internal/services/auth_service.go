package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/suk-6/pickr-server/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
	}
}

// Login implements domain.AuthService. An unknown login id and a wrong
// password both surface as ErrUserNotFound.
func (s *AuthServiceImpl) Login(ctx context.Context, loginID, password string) (*domain.TokenPair, error) {
	user, err := s.userRepo.FindByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrUserNotFound
	}

	return s.tokenSvc.IssueTokenPair(ctx, user.ID)
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, loginID, password string) (*domain.TokenPair, error) {
	_, err := s.userRepo.FindByLoginID(ctx, loginID)
	if err == nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		LoginID:      loginID,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.tokenSvc.IssueTokenPair(ctx, user.ID)
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	return s.tokenSvc.RevokeRefreshToken(ctx, userID)
}

// Refresh implements domain.AuthService. A full new pair is issued on every
// refresh; the previous refresh token stops verifying the moment its slot is
// overwritten.
func (s *AuthServiceImpl) Refresh(ctx context.Context, userID string) (*domain.TokenPair, error) {
	return s.tokenSvc.IssueTokenPair(ctx, userID)
}

// RequestPhoneOTP implements domain.AuthService
func (s *AuthServiceImpl) RequestPhoneOTP(ctx context.Context, userID, phone string) (*domain.PhoneChallenge, error) {
	return s.otpSvc.Request(ctx, userID, phone)
}

// RegisterPhone implements domain.AuthService
func (s *AuthServiceImpl) RegisterPhone(ctx context.Context, userID, phoneToken, otp string) error {
	return s.otpSvc.Confirm(ctx, userID, phoneToken, otp)
}
