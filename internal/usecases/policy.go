package usecases

import (
	"medishare.backend/internal/domain/entities"
	domainerrors "medishare.backend/internal/domain/errors"
)

// Policy decides, per operation, whether a resolved identity may act on a
// donation record. Decisions are pure: every call re-derives ownership from
// the identity's live contact fields, nothing is cached.
type Policy struct{}

// NewPolicy creates a new authorization policy
func NewPolicy() *Policy {
	return &Policy{}
}

// Owns reports whether the donation's contact snapshot matches the
// identity's current email or phone. Matching is exact value equality:
// a snapshot differing only in letter case is not recognized.
func (p *Policy) Owns(identity entities.ResolvedIdentity, donation *entities.Donation) bool {
	return donation.Email == identity.Email || donation.Phone == identity.Phone
}

// CanListAll allows only admins to read every donation
func (p *Policy) CanListAll(identity entities.ResolvedIdentity) error {
	if !identity.IsAdmin() {
		return domainerrors.Forbidden("Not authorized")
	}
	return nil
}

// CanRead allows admins and owners to read a donation
func (p *Policy) CanRead(identity entities.ResolvedIdentity, donation *entities.Donation) error {
	if identity.IsAdmin() || p.Owns(identity, donation) {
		return nil
	}
	return domainerrors.Forbidden("Not authorized")
}

// CanUpdateStatus allows only admins to progress the lifecycle. Ownership
// grants no mutation rights.
func (p *Policy) CanUpdateStatus(identity entities.ResolvedIdentity) error {
	if !identity.IsAdmin() {
		return domainerrors.Forbidden("Not authorized")
	}
	return nil
}
