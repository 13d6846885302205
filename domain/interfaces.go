package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByLoginID(ctx context.Context, loginID string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdatePhone(ctx context.Context, userID, phone string) error
}

// VolatileStore is a keyed store for transient per-user state. A zero TTL
// means the value never expires on its own.
type VolatileStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns ErrValueNotFound for absent or expired keys.
	Get(ctx context.Context, key string) (string, error)
	// Delete is idempotent; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// TokenSigner signs and verifies compact claim sets with a shared secret
type TokenSigner interface {
	SignAuthToken(userID string, kind TokenKind, ttl time.Duration) (string, error)
	VerifyAuthToken(token string) (*AuthTokenClaims, error)
	SignPhoneToken(userID, phone string, ttl time.Duration) (string, error)
	VerifyPhoneToken(token string) (*PhoneBindingClaims, error)
}

// TokenService defines the token lifecycle operations
type TokenService interface {
	IssueAccessToken(userID string) (string, error)
	IssueRefreshToken(ctx context.Context, userID string) (string, error)
	IssueTokenPair(ctx context.Context, userID string) (*TokenPair, error)
	DecodeAccessToken(token string) (*AuthTokenClaims, error)
	DecodeRefreshToken(token string) (*AuthTokenClaims, error)
	VerifyAccessToken(userID, token string) bool
	VerifyRefreshToken(ctx context.Context, userID, token string) (bool, error)
	RevokeRefreshToken(ctx context.Context, userID string) error
}

// OTPService defines the phone verification challenge operations
type OTPService interface {
	Request(ctx context.Context, userID, phone string) (*PhoneChallenge, error)
	Confirm(ctx context.Context, userID, phoneToken, code string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Login(ctx context.Context, loginID, password string) (*TokenPair, error)
	Register(ctx context.Context, loginID, password string) (*TokenPair, error)
	Logout(ctx context.Context, userID string) error
	Refresh(ctx context.Context, userID string) (*TokenPair, error)
	RequestPhoneOTP(ctx context.Context, userID, phone string) (*PhoneChallenge, error)
	RegisterPhone(ctx context.Context, userID, phoneToken, otp string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// NotificationService defines the outbound SMS channel
type NotificationService interface {
	SendSMS(to, message string) error
}
