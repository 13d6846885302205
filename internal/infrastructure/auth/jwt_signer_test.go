package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/suk-6/pickr-server/domain"
)

func TestJWTSigner_AuthTokenRoundTrip(t *testing.T) {
	signer := NewJWTSigner("secret", "pickr-test")

	token, err := signer.SignAuthToken("u1", domain.TokenKindAccess, time.Minute)
	if err != nil {
		t.Fatalf("SignAuthToken() error = %v", err)
	}

	claims, err := signer.VerifyAuthToken(token)
	if err != nil {
		t.Fatalf("VerifyAuthToken() error = %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("expected subject u1, got %s", claims.UserID)
	}
	if claims.Kind != domain.TokenKindAccess {
		t.Errorf("expected kind ACCESS, got %s", claims.Kind)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Errorf("expiry %d not after issuance %d", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestJWTSigner_ExpiredAuthToken(t *testing.T) {
	signer := NewJWTSigner("secret", "pickr-test")

	token, err := signer.SignAuthToken("u1", domain.TokenKindAccess, -time.Minute)
	if err != nil {
		t.Fatalf("SignAuthToken() error = %v", err)
	}

	if _, err := signer.VerifyAuthToken(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTSigner_WrongSecret(t *testing.T) {
	signer := NewJWTSigner("secret", "pickr-test")
	other := NewJWTSigner("another-secret", "pickr-test")

	token, err := signer.SignAuthToken("u1", domain.TokenKindRefresh, time.Minute)
	if err != nil {
		t.Fatalf("SignAuthToken() error = %v", err)
	}

	if _, err := other.VerifyAuthToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTSigner_MalformedToken(t *testing.T) {
	signer := NewJWTSigner("secret", "pickr-test")

	if _, err := signer.VerifyAuthToken("not-a-jwt"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTSigner_PhoneTokenRoundTrip(t *testing.T) {
	signer := NewJWTSigner("secret", "pickr-test")

	token, err := signer.SignPhoneToken("u1", "010-1234-5678", 3*time.Minute)
	if err != nil {
		t.Fatalf("SignPhoneToken() error = %v", err)
	}

	claims, err := signer.VerifyPhoneToken(token)
	if err != nil {
		t.Fatalf("VerifyPhoneToken() error = %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("expected subject u1, got %s", claims.UserID)
	}
	if claims.Phone != "010-1234-5678" {
		t.Errorf("expected phone 010-1234-5678, got %s", claims.Phone)
	}
}

func TestJWTSigner_PhoneTokenExpires(t *testing.T) {
	signer := NewJWTSigner("secret", "pickr-test")

	token, err := signer.SignPhoneToken("u1", "010-1234-5678", -time.Second)
	if err != nil {
		t.Fatalf("SignPhoneToken() error = %v", err)
	}

	if _, err := signer.VerifyPhoneToken(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}
