package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/you/currencysvc/domain"
	"github.com/you/currencysvc/internal/mocks"
)

func TestOTPServiceImpl_GenerateAndStore(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMocks    func(userRepo *mocks.MockUserRepository, otpRepo *mocks.MockOtpRepository)
		expectErr     bool
		checkUserRepo func(t *testing.T, userRepo *mocks.MockUserRepository)
	}{
		{
			name:  "existing user gets a new code",
			email: "known@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpRepo *mocks.MockOtpRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{ID: 7, Email: email, IsActive: true}, nil
				}
				otpRepo.CreateFunc = func(ctx context.Context, code *domain.OtpCode) error {
					if code.UserID != 7 {
						t.Errorf("expected code bound to user 7, got %d", code.UserID)
					}
					return nil
				}
			},
		},
		{
			name:  "unseen email creates a shell user",
			email: "new@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpRepo *mocks.MockOtpRepository) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					if user.PasswordHash != "" {
						t.Errorf("shell user should have no password hash, got %q", user.PasswordHash)
					}
					if !user.IsActive {
						t.Error("shell user should be active")
					}
					user.ID = 9
					return nil
				}
			},
		},
		{
			name:  "store failure propagates",
			email: "known@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpRepo *mocks.MockOtpRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{ID: 7, Email: email, IsActive: true}, nil
				}
				otpRepo.CreateFunc = func(ctx context.Context, code *domain.OtpCode) error {
					return errors.New("store unavailable")
				}
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			otpRepo := mocks.NewMockOtpRepository()
			tt.setupMocks(userRepo, otpRepo)

			svc := NewOTPService(userRepo, otpRepo, OTPConfig{})

			code, err := svc.GenerateAndStore(context.Background(), tt.email)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateAndStore returned error: %v", err)
			}

			if len(code) != 6 {
				t.Fatalf("expected 6-digit code, got %q", code)
			}
			n, err := strconv.Atoi(code)
			if err != nil {
				t.Fatalf("code is not numeric: %q", code)
			}
			if n < 100000 || n > 999999 {
				t.Errorf("code %d outside [100000, 999999]", n)
			}
		})
	}
}

func TestOTPServiceImpl_GenerateAndStore_ExpirySetFromTTL(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	otpRepo := mocks.NewMockOtpRepository()

	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: 1, Email: email, IsActive: true}, nil
	}

	var stored *domain.OtpCode
	otpRepo.CreateFunc = func(ctx context.Context, code *domain.OtpCode) error {
		stored = code
		return nil
	}

	svc := NewOTPService(userRepo, otpRepo, OTPConfig{})

	if _, err := svc.GenerateAndStore(context.Background(), "test@example.com"); err != nil {
		t.Fatalf("GenerateAndStore returned error: %v", err)
	}
	if stored == nil {
		t.Fatal("expected a stored code row")
	}
	if stored.IsUsed {
		t.Error("new code should be unused")
	}
	if got := stored.ExpiresAt.Sub(stored.CreatedAt); got != 5*time.Minute {
		t.Errorf("expected expiry = creation + 5m, got %v", got)
	}
}

func TestOTPServiceImpl_Validate(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(otpRepo *mocks.MockOtpRepository)
		wantValid  bool
		wantErr    bool
		wantUsed   bool
	}{
		{
			name: "matching code is consumed",
			setupMocks: func(otpRepo *mocks.MockOtpRepository) {
				otpRepo.FindValidFunc = func(ctx context.Context, email, code string, now time.Time) (*domain.OtpCode, error) {
					return &domain.OtpCode{ID: 3, Code: code}, nil
				}
			},
			wantValid: true,
			wantUsed:  true,
		},
		{
			name:       "no matching code",
			setupMocks: func(otpRepo *mocks.MockOtpRepository) {},
			wantValid:  false,
		},
		{
			name: "store failure is an infrastructure error",
			setupMocks: func(otpRepo *mocks.MockOtpRepository) {
				otpRepo.FindValidFunc = func(ctx context.Context, email, code string, now time.Time) (*domain.OtpCode, error) {
					return nil, errors.New("store unavailable")
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			otpRepo := mocks.NewMockOtpRepository()

			var markedID uint
			otpRepo.MarkUsedFunc = func(ctx context.Context, id uint) error {
				markedID = id
				return nil
			}
			tt.setupMocks(otpRepo)

			svc := NewOTPService(userRepo, otpRepo, OTPConfig{})

			valid, err := svc.Validate(context.Background(), "test@example.com", "123456")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate returned error: %v", err)
			}
			if valid != tt.wantValid {
				t.Errorf("expected valid=%v, got %v", tt.wantValid, valid)
			}
			if tt.wantUsed && markedID == 0 {
				t.Error("expected the matched code to be marked used")
			}
			if !tt.wantUsed && markedID != 0 {
				t.Error("no code should be marked used on a miss")
			}
		})
	}
}
