package mocks

import (
	"context"
	"time"

	"github.com/you/currencysvc/domain"
)

// MockOtpRepository implements domain.OtpRepository for testing
type MockOtpRepository struct {
	CreateFunc    func(ctx context.Context, code *domain.OtpCode) error
	FindValidFunc func(ctx context.Context, email, code string, now time.Time) (*domain.OtpCode, error)
	MarkUsedFunc  func(ctx context.Context, id uint) error
}

// NewMockOtpRepository creates a new MockOtpRepository with default behaviors
func NewMockOtpRepository() *MockOtpRepository {
	return &MockOtpRepository{}
}

// Create stores a new OTP code row
func (m *MockOtpRepository) Create(ctx context.Context, code *domain.OtpCode) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, code)
	}
	// Default behavior: success
	return nil
}

// FindValid looks up an unused, unexpired code for the email+code pair
func (m *MockOtpRepository) FindValid(ctx context.Context, email, code string, now time.Time) (*domain.OtpCode, error) {
	if m.FindValidFunc != nil {
		return m.FindValidFunc(ctx, email, code, now)
	}
	// Default behavior: no match
	return nil, domain.ErrOTPInvalid
}

// MarkUsed flips a code's is_used flag
func (m *MockOtpRepository) MarkUsed(ctx context.Context, id uint) error {
	if m.MarkUsedFunc != nil {
		return m.MarkUsedFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.OtpRepository = (*MockOtpRepository)(nil)
