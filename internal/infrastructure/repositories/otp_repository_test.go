package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/you/currencysvc/domain"
)

func seedUserWithCode(t *testing.T, db *gorm.DB, email, code string, expiresAt time.Time, used bool) uint {
	t.Helper()

	user := &DBUser{Email: email, IsActive: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	row := &DBOtpCode{
		UserID:    user.ID,
		Code:      code,
		CreatedAt: expiresAt.Add(-5 * time.Minute),
		ExpiresAt: expiresAt,
		IsUsed:    used,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to seed otp code: %v", err)
	}
	return row.ID
}

func TestOtpRepositoryImpl_FindValid(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name          string
		setupData     func(t *testing.T, db *gorm.DB)
		email         string
		code          string
		expectedError error
	}{
		{
			name: "matching unused unexpired code",
			setupData: func(t *testing.T, db *gorm.DB) {
				seedUserWithCode(t, db, "test@example.com", "123456", now.Add(5*time.Minute), false)
			},
			email:         "test@example.com",
			code:          "123456",
			expectedError: nil,
		},
		{
			name: "wrong code",
			setupData: func(t *testing.T, db *gorm.DB) {
				seedUserWithCode(t, db, "test@example.com", "123456", now.Add(5*time.Minute), false)
			},
			email:         "test@example.com",
			code:          "654321",
			expectedError: domain.ErrOTPInvalid,
		},
		{
			name: "code belongs to a different user",
			setupData: func(t *testing.T, db *gorm.DB) {
				seedUserWithCode(t, db, "other@example.com", "123456", now.Add(5*time.Minute), false)
			},
			email:         "test@example.com",
			code:          "123456",
			expectedError: domain.ErrOTPInvalid,
		},
		{
			name: "already used code",
			setupData: func(t *testing.T, db *gorm.DB) {
				seedUserWithCode(t, db, "test@example.com", "123456", now.Add(5*time.Minute), true)
			},
			email:         "test@example.com",
			code:          "123456",
			expectedError: domain.ErrOTPInvalid,
		},
		{
			name: "expired code",
			setupData: func(t *testing.T, db *gorm.DB) {
				seedUserWithCode(t, db, "test@example.com", "123456", now.Add(-time.Minute), false)
			},
			email:         "test@example.com",
			code:          "123456",
			expectedError: domain.ErrOTPInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			tt.setupData(t, db)
			repo := NewOtpRepository(db)

			record, err := repo.FindValid(context.Background(), tt.email, tt.code, now)
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
			if tt.expectedError == nil {
				if record == nil || record.Code != tt.code {
					t.Errorf("expected matching record for code %s, got %+v", tt.code, record)
				}
			}
		})
	}
}

func TestOtpRepositoryImpl_MultipleLiveCodesCoexist(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOtpRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	user := &DBUser{Email: "test@example.com", IsActive: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	// Issuing a second code must not invalidate the first.
	for _, code := range []string{"111111", "222222"} {
		err := repo.Create(ctx, &domain.OtpCode{
			UserID:    user.ID,
			Code:      code,
			CreatedAt: now,
			ExpiresAt: now.Add(5 * time.Minute),
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	for _, code := range []string{"111111", "222222"} {
		if _, err := repo.FindValid(ctx, "test@example.com", code, now); err != nil {
			t.Errorf("code %s should still be valid: %v", code, err)
		}
	}
}

func TestOtpRepositoryImpl_MarkUsed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOtpRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	id := seedUserWithCode(t, db, "test@example.com", "123456", now.Add(5*time.Minute), false)

	if err := repo.MarkUsed(ctx, id); err != nil {
		t.Fatalf("MarkUsed returned error: %v", err)
	}

	// The row survives but is no longer valid.
	var row DBOtpCode
	if err := db.First(&row, id).Error; err != nil {
		t.Fatalf("used row should not be deleted: %v", err)
	}
	if !row.IsUsed {
		t.Error("expected is_used to be true")
	}

	if _, err := repo.FindValid(ctx, "test@example.com", "123456", now); !errors.Is(err, domain.ErrOTPInvalid) {
		t.Errorf("used code should be invalid, got %v", err)
	}
}
