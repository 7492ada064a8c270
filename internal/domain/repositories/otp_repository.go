package repositories

import (
	"context"

	"github.com/google/uuid"
	"medishare.backend/internal/domain/entities"
)

// OtpVerificationRepository defines the storage and expiry contract for
// one-time phone verification codes
type OtpVerificationRepository interface {
	Create(ctx context.Context, otp *entities.OtpVerification) error
	// GetActiveByPhone returns the newest unexpired, unverified code for a phone.
	GetActiveByPhone(ctx context.Context, phone string) (*entities.OtpVerification, error)
	IncrementAttempts(ctx context.Context, id uuid.UUID) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes codes past their validity window and returns
	// how many were deleted.
	DeleteExpired(ctx context.Context) (int64, error)
}
