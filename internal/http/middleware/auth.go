package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/suk-6/pickr-server/domain"
)

// AuthMW wraps the token service for the bearer-token guards
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithAccessToken guards a route with a valid access token and stores the
// token's subject in the gin context as "user_id".
func (mw *AuthMW) WithAccessToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		claims, err := mw.tokenSvc.DecodeAccessToken(token)
		if err != nil {
			abortForTokenError(c, err)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// WithRefreshToken guards a route with a refresh token. Beyond signature and
// expiry, the presented token must exactly match the subject's stored slot;
// a reissued token invalidates the one before it.
func (mw *AuthMW) WithRefreshToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		claims, err := mw.tokenSvc.DecodeRefreshToken(token)
		if err != nil {
			abortForTokenError(c, err)
			return
		}

		live, err := mw.tokenSvc.VerifyRefreshToken(c.Request.Context(), claims.UserID, token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token verification failed"})
			c.Abort()
			return
		}
		if !live {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is no longer valid"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		c.Abort()
		return "", false
	}

	tokenParts := strings.SplitN(authHeader, " ", 2)
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		c.Abort()
		return "", false
	}

	return tokenParts[1], true
}

func abortForTokenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
	case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenMalformed):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token validation failed"})
	}
	c.Abort()
}
