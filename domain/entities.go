package domain

import "time"

// TokenKind distinguishes the two signed credential types issued to clients.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "ACCESS"
	TokenKindRefresh TokenKind = "REFRESH"
)

// User represents an account in the system
type User struct {
	ID           string
	LoginID      string
	PasswordHash string `gorm:"column:password"`
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TokenPair holds a freshly issued access/refresh token pair
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthTokenClaims represents the decoded claim set of an access or refresh token
type AuthTokenClaims struct {
	UserID    string
	Kind      TokenKind
	IssuedAt  int64
	ExpiresAt int64
}

// PhoneBindingClaims binds one user id to one phone number for the duration
// of a single OTP challenge
type PhoneBindingClaims struct {
	UserID    string
	Phone     string
	IssuedAt  int64
	ExpiresAt int64
}

// PhoneChallenge is what a caller gets back from an OTP request. The code
// itself travels only over the notification channel, never the API response.
type PhoneChallenge struct {
	PhoneToken string
	ExpiresAt  time.Time
}
