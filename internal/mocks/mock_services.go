package mocks

import (
	"context"
	"time"

	"github.com/you/currencysvc/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: deterministic fake hash
	return "hashed_" + password, nil
}

// Verify verifies a password against a hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	// Default behavior: match against the fake hash scheme
	return hashedPassword == "hashed_"+password
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(email string) (string, time.Time, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate issues a token for the email
func (m *MockTokenService) Generate(email string) (string, time.Time, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(email)
	}
	// Default behavior: fixed token, one hour out
	return "test_token", time.Now().Add(time.Hour), nil
}

// Validate validates a token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	if token == "test_token" {
		return &domain.TokenClaims{Email: "test@example.com"}, nil
	}
	return nil, domain.ErrTokenInvalid
}

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendEmailFunc func(to, subject, htmlBody string) error

	// Sent records every delivered email for assertions
	Sent []SentEmail
}

// SentEmail captures one SendEmail call
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail records the email and optionally delegates
func (m *MockNotificationService) SendEmail(to, subject, htmlBody string) error {
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, Body: htmlBody})
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, htmlBody)
	}
	// Default behavior: success
	return nil
}

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	GenerateAndStoreFunc func(ctx context.Context, email string) (string, error)
	ValidateFunc         func(ctx context.Context, email, code string) (bool, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// GenerateAndStore generates and persists a code
func (m *MockOTPService) GenerateAndStore(ctx context.Context, email string) (string, error) {
	if m.GenerateAndStoreFunc != nil {
		return m.GenerateAndStoreFunc(ctx, email)
	}
	// Default behavior: fixed code
	return "123456", nil
}

// Validate checks a code
func (m *MockOTPService) Validate(ctx context.Context, email, code string) (bool, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, email, code)
	}
	// Default behavior: reject
	return false, nil
}

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc   func(ctx context.Context, email, password string) (*domain.User, error)
	RequestOTPFunc func(ctx context.Context, email string) error
	VerifyOTPFunc  func(ctx context.Context, email, code string) (bool, error)
	LoginFunc      func(ctx context.Context, email, password string) (*domain.AuthResult, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers or resets a user
func (m *MockAuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	return &domain.User{ID: 1, Email: email, IsActive: true}, nil
}

// RequestOTP issues an OTP for an existing user
func (m *MockAuthService) RequestOTP(ctx context.Context, email string) error {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, email)
	}
	return nil
}

// VerifyOTP validates a code
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) (bool, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	return false, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// MockRateClient implements domain.RateClient for testing
type MockRateClient struct {
	ConvertFunc func(ctx context.Context, amountUsd float64) (*domain.Conversion, error)

	// Calls counts Convert invocations
	Calls int
}

// NewMockRateClient creates a new MockRateClient with default behaviors
func NewMockRateClient() *MockRateClient {
	return &MockRateClient{}
}

// Convert fetches a rate and converts the amount
func (m *MockRateClient) Convert(ctx context.Context, amountUsd float64) (*domain.Conversion, error) {
	m.Calls++
	if m.ConvertFunc != nil {
		return m.ConvertFunc(ctx, amountUsd)
	}
	return &domain.Conversion{
		AmountUsd:    amountUsd,
		AmountSll:    amountUsd * 22.5,
		ExchangeRate: 22.5,
		Timestamp:    time.Now().UTC(),
	}, nil
}

// Compile-time interface compliance verification
var (
	_ domain.PasswordService     = (*MockPasswordService)(nil)
	_ domain.TokenService        = (*MockTokenService)(nil)
	_ domain.NotificationService = (*MockNotificationService)(nil)
	_ domain.OTPService          = (*MockOTPService)(nil)
	_ domain.AuthService         = (*MockAuthService)(nil)
	_ domain.RateClient          = (*MockRateClient)(nil)
)
