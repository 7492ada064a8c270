package models

import (
	"time"

	"github.com/google/uuid"
)

// Donation stores the contact snapshot and medication details of a
// submission. Email and phone are indexed because ownership is resolved by
// exact value match against them on every authorization check.
type Donation struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Email           string    `gorm:"type:varchar(255);not null;index"`
	Phone           string    `gorm:"type:varchar(20);not null;index"`
	PhoneVerified   bool      `gorm:"not null;default:false"`
	Address         string    `gorm:"type:text;not null"`
	MedicineName    string    `gorm:"type:varchar(255);not null"`
	Quantity        string    `gorm:"type:varchar(100);not null"`
	ExpiryDate      time.Time `gorm:"not null"`
	Condition       string    `gorm:"type:varchar(20);not null;default:'unopened'"`
	AdditionalInfo  string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	StatusUpdatedAt time.Time `gorm:"not null"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}
