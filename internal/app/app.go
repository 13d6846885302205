package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suk-6/pickr-server/internal/config"
	httpx "github.com/suk-6/pickr-server/internal/http"
	"github.com/suk-6/pickr-server/internal/http/handlers"
	"github.com/suk-6/pickr-server/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	authMW := middleware.NewAuthMW(c.TokenSvc)

	r := httpx.BuildRouter(authH, authMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
