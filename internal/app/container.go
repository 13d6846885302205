package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/suk-6/pickr-server/domain"
	"github.com/suk-6/pickr-server/internal/config"
	"github.com/suk-6/pickr-server/internal/infrastructure/auth"
	"github.com/suk-6/pickr-server/internal/infrastructure/cache"
	"github.com/suk-6/pickr-server/internal/infrastructure/database"
	"github.com/suk-6/pickr-server/internal/infrastructure/notifications"
	"github.com/suk-6/pickr-server/internal/infrastructure/repositories"
	"github.com/suk-6/pickr-server/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo domain.UserRepository
	Store    domain.VolatileStore

	PasswordSvc     domain.PasswordService
	Signer          domain.TokenSigner
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	c.RedisClient = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	c.Store = cache.NewRedisStore(c.RedisClient)

	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.PasswordSvc = auth.NewPasswordService()
	c.Signer = auth.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)
	c.NotificationSvc = notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)

	c.TokenSvc = services.NewTokenService(c.Signer, c.Store, cfg.AccessTTL, cfg.RefreshTTL)
	c.OTPSvc = services.NewOTPService(c.Signer, c.Store, c.NotificationSvc, c.UserRepo, cfg.OTPTTL)
	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.OTPSvc)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
