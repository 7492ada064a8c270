package entities

import (
	"time"

	"github.com/google/uuid"
)

// DonationCondition represents the condition of donated medicine
type DonationCondition string

const (
	ConditionUnopened DonationCondition = "unopened"
	ConditionSealed   DonationCondition = "sealed"
	ConditionPartial  DonationCondition = "partial"
)

// Valid reports whether the condition is one of the enumerated values
func (c DonationCondition) Valid() bool {
	switch c {
	case ConditionUnopened, ConditionSealed, ConditionPartial:
		return true
	}
	return false
}

// DonationStatus represents the disposition status of a donation
type DonationStatus string

const (
	StatusPending     DonationStatus = "pending"
	StatusApproved    DonationStatus = "approved"
	StatusCollected   DonationStatus = "collected"
	StatusDistributed DonationStatus = "distributed"
	StatusRejected    DonationStatus = "rejected"
)

// Valid reports whether the status is one of the enumerated values.
// The set is enumerated only: any status may move to any other, there
// is no ordering and no terminal state.
func (s DonationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCollected, StatusDistributed, StatusRejected:
		return true
	}
	return false
}

// Donation represents a medicine donation record. The contact fields are a
// snapshot taken at submission time; there is no stored link to an account.
type Donation struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	PhoneVerified   bool              `json:"phoneVerified"`
	Address         string            `json:"address"`
	MedicineName    string            `json:"medicineName"`
	Quantity        string            `json:"quantity"`
	ExpiryDate      time.Time         `json:"expiryDate"`
	Condition       DonationCondition `json:"condition"`
	AdditionalInfo  string            `json:"additionalInfo,omitempty"`
	Status          DonationStatus    `json:"status"`
	StatusUpdatedAt time.Time         `json:"statusUpdatedAt"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// CreateDonationInput represents input for submitting a donation
type CreateDonationInput struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required,e164"`
	Address        string `json:"address" binding:"required"`
	MedicineName   string `json:"medicineName" binding:"required"`
	Quantity       string `json:"quantity" binding:"required"`
	ExpiryDate     string `json:"expiryDate" binding:"required,datetime=2006-01-02"`
	Condition      string `json:"condition" binding:"omitempty,oneof=unopened sealed partial"`
	AdditionalInfo string `json:"additionalInfo"`
}

// UpdateStatusInput represents input for progressing a donation's status
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}
