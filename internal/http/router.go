package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/suk-6/pickr-server/internal/http/handlers"
	"github.com/suk-6/pickr-server/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, mw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.GET("/refresh", mw.WithRefreshToken(), ah.Refresh)

	protected := auth.Group("").Use(mw.WithAccessToken())
	protected.GET("/logout", ah.Logout)
	protected.POST("/phone", ah.RequestPhoneOTP)
	protected.PUT("/phone", ah.RegisterPhone)

	return r
}
