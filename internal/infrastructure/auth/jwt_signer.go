package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/suk-6/pickr-server/domain"
)

// JWTSigner implements domain.TokenSigner on HS256 with a shared secret
type JWTSigner struct {
	secretKey []byte
	issuer    string
}

// NewJWTSigner creates a new JWT signer
func NewJWTSigner(secretKey, issuer string) domain.TokenSigner {
	return &JWTSigner{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// SignAuthToken implements domain.TokenSigner
func (j *JWTSigner) SignAuthToken(userID string, kind domain.TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   userID,
		"type": string(kind),
		"iss":  j.issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// VerifyAuthToken implements domain.TokenSigner
func (j *JWTSigner) VerifyAuthToken(tokenString string) (*domain.AuthTokenClaims, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}

	userID, ok := claims["id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	kind, ok := claims["type"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.AuthTokenClaims{
		UserID:    userID,
		Kind:      domain.TokenKind(kind),
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}

// SignPhoneToken implements domain.TokenSigner
func (j *JWTSigner) SignPhoneToken(userID, phone string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    userID,
		"phone": phone,
		"iss":   j.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// VerifyPhoneToken implements domain.TokenSigner
func (j *JWTSigner) VerifyPhoneToken(tokenString string) (*domain.PhoneBindingClaims, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}

	userID, ok := claims["id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	phone, ok := claims["phone"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.PhoneBindingClaims{
		UserID:    userID,
		Phone:     phone,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}

// parse verifies the signature and standard claims of a compact JWT
func (j *JWTSigner) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	return claims, nil
}
