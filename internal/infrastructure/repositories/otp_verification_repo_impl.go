package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"medishare.backend/internal/domain/entities"
	domainerrors "medishare.backend/internal/domain/errors"
	"medishare.backend/internal/infrastructure/models"
)

// OtpVerificationRepository implements the storage and expiry contract for
// one-time phone verification codes
type OtpVerificationRepository struct {
	db       *gorm.DB
	validity time.Duration
}

// NewOtpVerificationRepository creates a new OTP verification repository
func NewOtpVerificationRepository(db *gorm.DB, validity time.Duration) *OtpVerificationRepository {
	return &OtpVerificationRepository{db: db, validity: validity}
}

// Create persists a new verification code with its validity window
func (r *OtpVerificationRepository) Create(ctx context.Context, otp *entities.OtpVerification) error {
	now := time.Now()
	m := &models.OtpVerification{
		ID:        otp.ID,
		AccountID: otp.AccountID,
		Phone:     otp.Phone,
		Code:      otp.Code,
		Attempts:  otp.Attempts,
		ExpiresAt: now.Add(r.validity),
		CreatedAt: now,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	otp.ID = m.ID
	otp.ExpiresAt = m.ExpiresAt
	otp.CreatedAt = m.CreatedAt
	return nil
}

// GetActiveByPhone returns the newest unexpired, unverified code for a phone
func (r *OtpVerificationRepository) GetActiveByPhone(ctx context.Context, phone string) (*entities.OtpVerification, error) {
	var m models.OtpVerification
	err := r.db.WithContext(ctx).
		Where("phone = ? AND verified_at IS NULL AND expires_at > ?", phone, time.Now()).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toOtpEntity(&m), nil
}

// IncrementAttempts bumps the attempt counter for a code
func (r *OtpVerificationRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.OtpVerification{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkVerified stamps the code as confirmed, once
func (r *OtpVerificationRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.OtpVerification{}).
		Where("id = ? AND verified_at IS NULL", id).
		Update("verified_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteExpired removes codes past their validity window
func (r *OtpVerificationRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&models.OtpVerification{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func toOtpEntity(m *models.OtpVerification) *entities.OtpVerification {
	return &entities.OtpVerification{
		ID:         m.ID,
		AccountID:  m.AccountID,
		Phone:      m.Phone,
		Code:       m.Code,
		Attempts:   m.Attempts,
		VerifiedAt: null.TimeFromPtr(m.VerifiedAt),
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
	}
}
