package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	Exists(ctx context.Context, email string) (bool, error)
	// Upsert creates the user if absent, otherwise overwrites the stored
	// password hash. Registration is idempotent and doubles as a password
	// reset; see AuthService.Register.
	Upsert(ctx context.Context, email, passwordHash string) (*User, error)
}

// OtpRepository defines one-time code data access operations
type OtpRepository interface {
	Create(ctx context.Context, code *OtpCode) error
	// FindValid returns an unused, unexpired code row matching the
	// email+code pair, or ErrOTPInvalid when none exists.
	FindValid(ctx context.Context, email, code string, now time.Time) (*OtpCode, error)
	MarkUsed(ctx context.Context, id uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, password string) (*User, error)
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (bool, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// OTPService defines OTP generation and validation
type OTPService interface {
	GenerateAndStore(ctx context.Context, email string) (string, error)
	Validate(ctx context.Context, email, code string) (bool, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	Generate(email string) (string, time.Time, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendEmail(to, subject, htmlBody string) error
}

// RateClient fetches exchange rates and computes conversions
type RateClient interface {
	Convert(ctx context.Context, amountUsd float64) (*Conversion, error)
}
