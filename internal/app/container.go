package app

import (
	"gorm.io/gorm"

	"github.com/you/currencysvc/domain"
	"github.com/you/currencysvc/internal/config"
	"github.com/you/currencysvc/internal/infrastructure/auth"
	"github.com/you/currencysvc/internal/infrastructure/database"
	"github.com/you/currencysvc/internal/infrastructure/notifications"
	"github.com/you/currencysvc/internal/infrastructure/rates"
	"github.com/you/currencysvc/internal/infrastructure/repositories"
	"github.com/you/currencysvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB *gorm.DB

	UserRepo domain.UserRepository
	OtpRepo  domain.OtpRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	RateClient      domain.RateClient
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

	c.UserRepo = repositories.NewUserRepository(db)
	c.OtpRepo = repositories.NewOtpRepository(db)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	c.NotificationSvc = notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	c.RateClient = rates.NewClient(cfg.RatesBaseURL, cfg.RatesAPIKey, cfg.RatesSymbol)

	c.OTPSvc = services.NewOTPService(c.UserRepo, c.OtpRepo, services.OTPConfig{})
	c.AuthSvc = services.NewAuthService(c.UserRepo, c.OTPSvc, c.PasswordSvc, c.TokenSvc, c.NotificationSvc)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
