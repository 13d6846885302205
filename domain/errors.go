package domain

import "errors"

// Authentication errors
var (
	// ErrUserNotFound covers both an unknown login id and a wrong password
	// so a caller cannot tell which part was wrong.
	ErrUserNotFound      = errors.New("login id or password is incorrect")
	ErrUserAlreadyExists = errors.New("a user with this login id already exists")
)

// Phone verification errors
var (
	ErrPhoneBindingMismatch = errors.New("verification was not requested by this account")
	ErrOTPMismatch          = errors.New("verification code does not match")
	ErrPhoneUpdateFailed    = errors.New("failed to register phone number")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Store errors
var (
	ErrValueNotFound = errors.New("value not found")
)
