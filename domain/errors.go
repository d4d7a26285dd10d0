package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrEmailConflict      = errors.New("email already registered")
)

// OTP errors
var (
	ErrOTPInvalid = errors.New("invalid or expired otp code")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Exchange rate errors
var (
	ErrRateUpstream    = errors.New("exchange rate service unavailable")
	ErrRateUnavailable = errors.New("rate unavailable for symbol")
)
