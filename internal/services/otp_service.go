package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/you/currencysvc/domain"
)

// OTPServiceImpl implements domain.OTPService on top of the relational store
type OTPServiceImpl struct {
	userRepo domain.UserRepository
	otpRepo  domain.OtpRepository
	config   OTPConfig
}

type OTPConfig struct {
	TTL time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(userRepo domain.UserRepository, otpRepo domain.OtpRepository, config OTPConfig) domain.OTPService {
	if config.TTL == 0 {
		config.TTL = 5 * time.Minute
	}
	return &OTPServiceImpl{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		config:   config,
	}
}

// GenerateAndStore implements domain.OTPService. A shell user with no
// password hash is created when the email is unseen; register and internal
// flows create users on the fly while request-otp gates on existence first.
// The caller is responsible for delivering the returned code.
func (s *OTPServiceImpl) GenerateAndStore(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		user = &domain.User{Email: email, IsActive: true}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return "", fmt.Errorf("failed to create user for otp: %w", err)
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to look up user for otp: %w", err)
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}

	now := time.Now().UTC()
	record := &domain.OtpCode{
		UserID:    user.ID,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.TTL),
		IsUsed:    false,
	}

	// Older unused codes stay live; issuance never invalidates them.
	if err := s.otpRepo.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to store otp code: %w", err)
	}

	return code, nil
}

// Validate implements domain.OTPService. Validation is single-use: a matched
// code is marked used, so a second attempt with the same code fails even if
// still unexpired. Store errors propagate; a non-match is false, nil.
func (s *OTPServiceImpl) Validate(ctx context.Context, email, code string) (bool, error) {
	record, err := s.otpRepo.FindValid(ctx, email, code, time.Now().UTC())
	if errors.Is(err, domain.ErrOTPInvalid) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up otp code: %w", err)
	}

	if err := s.otpRepo.MarkUsed(ctx, record.ID); err != nil {
		return false, fmt.Errorf("failed to mark otp code used: %w", err)
	}

	return true, nil
}

// generateSecureCode draws a uniformly random 6-digit code in
// [100000, 999999] from crypto/rand. Always six characters.
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", 100000+n.Int64()), nil
}
