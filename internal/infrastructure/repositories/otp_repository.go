package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/you/currencysvc/domain"
)

// OtpRepositoryImpl implements domain.OtpRepository using GORM
type OtpRepositoryImpl struct {
	db *gorm.DB
}

// DBOtpCode represents the database model for OtpCode. Rows are append-only:
// consumption flips is_used, nothing is ever deleted.
type DBOtpCode struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Code      string    `gorm:"size:6;index"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
	IsUsed    bool
}

// TableName returns the table name for GORM
func (DBOtpCode) TableName() string {
	return "otp_codes"
}

// NewOtpRepository creates a new OTP repository
func NewOtpRepository(db *gorm.DB) domain.OtpRepository {
	return &OtpRepositoryImpl{db: db}
}

// Create implements domain.OtpRepository
func (r *OtpRepositoryImpl) Create(ctx context.Context, code *domain.OtpCode) error {
	dbCode := &DBOtpCode{
		UserID:    code.UserID,
		Code:      code.Code,
		CreatedAt: code.CreatedAt,
		ExpiresAt: code.ExpiresAt,
		IsUsed:    code.IsUsed,
	}
	if err := r.db.WithContext(ctx).Create(dbCode).Error; err != nil {
		return err
	}
	code.ID = dbCode.ID
	return nil
}

// FindValid implements domain.OtpRepository. Matches any unused, unexpired
// row belonging to the email's user; older outstanding codes stay live.
func (r *OtpRepositoryImpl) FindValid(ctx context.Context, email, code string, now time.Time) (*domain.OtpCode, error) {
	var dbCode DBOtpCode
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = otp_codes.user_id").
		Where("users.email = ? AND otp_codes.code = ? AND otp_codes.is_used = ? AND otp_codes.expires_at > ?",
			email, code, false, now).
		First(&dbCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOTPInvalid
		}
		return nil, err
	}

	return &domain.OtpCode{
		ID:        dbCode.ID,
		UserID:    dbCode.UserID,
		Code:      dbCode.Code,
		CreatedAt: dbCode.CreatedAt,
		ExpiresAt: dbCode.ExpiresAt,
		IsUsed:    dbCode.IsUsed,
	}, nil
}

// MarkUsed implements domain.OtpRepository
func (r *OtpRepositoryImpl) MarkUsed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&DBOtpCode{}).Where("id = ?", id).Update("is_used", true).Error
}
