package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// OtpVerification represents a one-time phone verification code. The record
// is valid for ten minutes from creation; no operation in the current
// surface creates or checks codes, only the storage and expiry contract is
// implemented.
type OtpVerification struct {
	ID         uuid.UUID `json:"id"`
	AccountID  uuid.UUID `json:"accountId"`
	Phone      string    `json:"phone"`
	Code       string    `json:"-"`
	Attempts   int       `json:"attempts"`
	VerifiedAt null.Time `json:"verifiedAt,omitempty"`
	ExpiresAt  time.Time `json:"expiresAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Expired reports whether the code is past its validity window
func (o *OtpVerification) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// Verified reports whether the code has been confirmed
func (o *OtpVerification) Verified() bool {
	return o.VerifiedAt.Valid
}
