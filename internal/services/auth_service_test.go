package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/suk-6/pickr-server/domain"
	"github.com/suk-6/pickr-server/internal/mocks"
)

func createValidUser() *domain.User {
	return &domain.User{
		ID:           "user-1",
		LoginID:      "alice",
		PasswordHash: "hashed_pw",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		loginID       string
		password      string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService)
		expectedError error
		wantPair      bool
	}{
		{
			name:     "successful login",
			loginID:  "alice",
			password: "pw",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByLoginIDFunc = func(ctx context.Context, loginID string) (*domain.User, error) {
					return createValidUser(), nil
				}
			},
			expectedError: nil,
			wantPair:      true,
		},
		{
			name:     "unknown login id",
			loginID:  "bob",
			password: "pw",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByLoginIDFunc = func(ctx context.Context, loginID string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			// The caller cannot tell a wrong password from an unknown id.
			name:     "wrong password collapses into not found",
			loginID:  "alice",
			password: "wrong",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByLoginIDFunc = func(ctx context.Context, loginID string) (*domain.User, error) {
					return createValidUser(), nil
				}
			},
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tokenSvc := mocks.NewMockTokenService()
			otpSvc := mocks.NewMockOTPService()
			tt.setupMocks(userRepo, passwordSvc)

			svc := NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc)

			pair, err := svc.Login(context.Background(), tt.loginID, tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if tt.wantPair && (pair == nil || pair.AccessToken == "" || pair.RefreshToken == "") {
				t.Errorf("expected a full token pair, got %+v", pair)
			}
		})
	}
}

func TestAuthServiceImpl_Register(t *testing.T) {
	tests := []struct {
		name          string
		loginID       string
		password      string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService)
		expectedError error
	}{
		{
			name:     "successful registration",
			loginID:  "newuser",
			password: "securepw",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					if user.LoginID != "newuser" {
						t.Errorf("expected login id newuser, got %s", user.LoginID)
					}
					if user.PasswordHash != "hashed_securepw" {
						t.Errorf("expected password hash hashed_securepw, got %s", user.PasswordHash)
					}
					user.ID = "user-2"
					return nil
				}
			},
		},
		{
			name:     "login id already taken",
			loginID:  "alice",
			password: "pw",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByLoginIDFunc = func(ctx context.Context, loginID string) (*domain.User, error) {
					return createValidUser(), nil
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
		},
		{
			name:     "password hashing fails",
			loginID:  "newuser",
			password: "pw",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				passwordSvc.HashFunc = func(password string) (string, error) {
					return "", errors.New("hashing failed")
				}
			},
			expectedError: errors.New("failed to hash password"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tokenSvc := mocks.NewMockTokenService()
			otpSvc := mocks.NewMockOTPService()
			tt.setupMocks(userRepo, passwordSvc)

			svc := NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc)

			pair, err := svc.Register(context.Background(), tt.loginID, tt.password)

			if tt.expectedError != nil {
				if err == nil {
					t.Fatal("expected an error")
				}
				if errors.Is(tt.expectedError, domain.ErrUserAlreadyExists) && !errors.Is(err, domain.ErrUserAlreadyExists) {
					t.Errorf("expected ErrUserAlreadyExists, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if pair == nil || pair.AccessToken == "" || pair.RefreshToken == "" {
				t.Errorf("expected a full token pair, got %+v", pair)
			}
		})
	}
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	passwordSvc := mocks.NewMockPasswordService()
	tokenSvc := mocks.NewMockTokenService()
	otpSvc := mocks.NewMockOTPService()

	var revoked string
	tokenSvc.RevokeRefreshTokenFunc = func(ctx context.Context, userID string) error {
		revoked = userID
		return nil
	}

	svc := NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc)

	if err := svc.Logout(context.Background(), "u1"); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if revoked != "u1" {
		t.Errorf("expected refresh token for u1 revoked, got %q", revoked)
	}
}

func TestAuthServiceImpl_RefreshIssuesNewPair(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	passwordSvc := mocks.NewMockPasswordService()
	tokenSvc := mocks.NewMockTokenService()
	otpSvc := mocks.NewMockOTPService()

	issued := 0
	tokenSvc.IssueTokenPairFunc = func(ctx context.Context, userID string) (*domain.TokenPair, error) {
		issued++
		return &domain.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
	}

	svc := NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc)

	if _, err := svc.Refresh(context.Background(), "u1"); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if issued != 1 {
		t.Errorf("expected one pair issued, got %d", issued)
	}
}

func TestAuthServiceImpl_PhoneFlowsDelegate(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	passwordSvc := mocks.NewMockPasswordService()
	tokenSvc := mocks.NewMockTokenService()
	otpSvc := mocks.NewMockOTPService()

	otpSvc.RequestFunc = func(ctx context.Context, userID, phone string) (*domain.PhoneChallenge, error) {
		if userID != "u1" || phone != "010-1234-5678" {
			t.Errorf("Request(%s, %s), want (u1, 010-1234-5678)", userID, phone)
		}
		return &domain.PhoneChallenge{PhoneToken: "pt"}, nil
	}
	otpSvc.ConfirmFunc = func(ctx context.Context, userID, phoneToken, code string) error {
		return domain.ErrOTPMismatch
	}

	svc := NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc)

	challenge, err := svc.RequestPhoneOTP(context.Background(), "u1", "010-1234-5678")
	if err != nil {
		t.Fatalf("RequestPhoneOTP() error = %v", err)
	}
	if challenge.PhoneToken != "pt" {
		t.Errorf("expected phone token pt, got %s", challenge.PhoneToken)
	}

	if err := svc.RegisterPhone(context.Background(), "u1", "pt", "123456"); !errors.Is(err, domain.ErrOTPMismatch) {
		t.Errorf("expected ErrOTPMismatch passed through, got %v", err)
	}
}
