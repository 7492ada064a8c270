package repositories

import (
	"context"

	"github.com/google/uuid"
	"medishare.backend/internal/domain/entities"
)

// DonationRepository defines donation record data operations
type DonationRepository interface {
	Create(ctx context.Context, donation *entities.Donation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Donation, error)
	// List returns all donations, newest-created-first.
	List(ctx context.Context) ([]*entities.Donation, error)
	// ListByContact returns donations whose stored email or phone exactly
	// equals the given values, newest-created-first. Ownership is derived
	// from this match on every call, never from a stored relation.
	ListByContact(ctx context.Context, email, phone string) ([]*entities.Donation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.DonationStatus) (*entities.Donation, error)
}
