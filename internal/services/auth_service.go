package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/you/currencysvc/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	otpSvc          domain.OTPService
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	notificationSvc domain.NotificationService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	otpSvc domain.OTPService,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notificationSvc domain.NotificationService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		otpSvc:          otpSvc,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		notificationSvc: notificationSvc,
	}
}

// Register implements domain.AuthService. Registering an existing email
// overwrites the stored hash: register doubles as an explicit password
// reset with no proof of prior ownership. A verification OTP is emailed
// after the upsert.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Upsert(ctx, email, hashedPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	code, err := s.otpSvc.GenerateAndStore(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp: %w", err)
	}

	body := fmt.Sprintf("<p>Your code is <b>%s</b>. Expires in 5 minutes.</p>", code)
	if err := s.notificationSvc.SendEmail(email, "Your Registration OTP", body); err != nil {
		return nil, fmt.Errorf("failed to send otp email: %w", err)
	}

	return user, nil
}

// RequestOTP implements domain.AuthService. Unlike Register, an unknown
// email is rejected rather than created on the fly.
func (s *AuthServiceImpl) RequestOTP(ctx context.Context, email string) error {
	exists, err := s.userRepo.Exists(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return domain.ErrUserNotFound
	}

	code, err := s.otpSvc.GenerateAndStore(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	body := fmt.Sprintf("<p>Your code is <b>%s</b>. Expires in 5 minutes.</p>", code)
	if err := s.notificationSvc.SendEmail(email, "Your OTP Code", body); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	return nil
}

// VerifyOTP implements domain.AuthService
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, code string) (bool, error) {
	return s.otpSvc.Validate(ctx, email, code)
}

// Login implements domain.AuthService. Unknown users and bad passwords are
// indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenSvc.Generate(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
