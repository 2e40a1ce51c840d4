package app

import (
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/estospaces/realtysvc/domain"
	"github.com/estospaces/realtysvc/internal/config"
	"github.com/estospaces/realtysvc/internal/infrastructure/auth"
	"github.com/estospaces/realtysvc/internal/infrastructure/database"
	"github.com/estospaces/realtysvc/internal/infrastructure/notifications"
	"github.com/estospaces/realtysvc/internal/infrastructure/repositories"
	"github.com/estospaces/realtysvc/internal/services"
)

// Container holds all dependencies. Everything process-scoped (DB
// pool, Redis client, mail dialer) is constructed exactly once here
// and injected; nothing lives in package globals.
type Container struct {
	Config *config.Config
	Logger *zerolog.Logger

	DB          *gorm.DB
	RedisClient *redis.Client
	Enforcer    domain.PolicyEnforcer

	UserRepo     domain.UserRepository
	OTPRepo      domain.OTPRepository
	PropertyRepo domain.PropertyRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Mailer      domain.Mailer
	AuthSvc     domain.AuthService
	ResetSvc    domain.PasswordResetService
	PropertySvc domain.PropertyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "realtysvc").Logger()

	container := &Container{Config: cfg, Logger: &logger}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()

	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Enforcer = cas.E
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.OTPRepo = repositories.NewOTPRepository(c.RedisClient)
	c.PropertyRepo = repositories.NewPropertyRepository(c.DB)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.SessionTTL,
		c.Config.VerificationTTL,
	)

	mailer, err := notifications.NewMailerService(c.Logger)
	if err != nil {
		return err
	}
	c.Mailer = mailer

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.Mailer,
		c.Config.ServerURL,
		c.Logger,
	)

	c.ResetSvc = services.NewPasswordResetService(
		c.UserRepo,
		c.OTPRepo,
		c.PasswordSvc,
		c.Mailer,
		services.OTPConfig{Length: c.Config.OTPLength, TTL: c.Config.OTPTTL},
		c.Logger,
	)

	c.PropertySvc = services.NewPropertyService(c.PropertyRepo)

	return nil
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
