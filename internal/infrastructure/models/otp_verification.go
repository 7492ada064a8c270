package models

import (
	"time"

	"github.com/google/uuid"
)

type OtpVerification struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Phone      string    `gorm:"type:varchar(20);not null;index"`
	Code       string    `gorm:"type:varchar(10);not null"`
	Attempts   int       `gorm:"not null;default:0"`
	VerifiedAt *time.Time
	ExpiresAt  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
}
