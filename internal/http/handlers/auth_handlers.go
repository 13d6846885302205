package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suk-6/pickr-server/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents login request
type LoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RequestPhoneOTPRequest represents a phone verification challenge request
type RequestPhoneOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// RegisterPhoneRequest represents a phone verification confirmation
type RegisterPhoneRequest struct {
	PhoneToken string `json:"phone_token" binding:"required"`
	OTP        string `json:"otp" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.authSvc.Register(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "A user with this login id already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, tokenPairResponse(pair))
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.authSvc.Login(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Login id or password is incorrect"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, tokenPairResponse(pair))
}

// Refresh handles token refresh; the refresh guard has already verified the
// presented token against the stored slot.
func (h *AuthHandlers) Refresh(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pair, err := h.authSvc.Refresh(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		return
	}

	c.JSON(http.StatusOK, tokenPairResponse(pair))
}

// Logout handles user logout
func (h *AuthHandlers) Logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Logged out"}})
}

// RequestPhoneOTP handles a phone verification challenge request
func (h *AuthHandlers) RequestPhoneOTP(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RequestPhoneOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := h.authSvc.RequestPhoneOTP(c.Request.Context(), userID, req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"phone_token": challenge.PhoneToken}})
}

// RegisterPhone handles a phone verification confirmation
func (h *AuthHandlers) RegisterPhone(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RegisterPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.RegisterPhone(c.Request.Context(), userID, req.PhoneToken, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPhoneBindingMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Verification was not requested by this account"})
		case errors.Is(err, domain.ErrOTPMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Verification code does not match"})
		case errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenMalformed):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired phone token"})
		case errors.Is(err, domain.ErrPhoneUpdateFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register phone number"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Phone verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"success": true}})
}

func tokenPairResponse(pair *domain.TokenPair) gin.H {
	return gin.H{
		"data": gin.H{
			"access_token":  pair.AccessToken,
			"refresh_token": pair.RefreshToken,
			"token_type":    "Bearer",
		},
	}
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return "", false
	}
	return userID.(string), true
}
