package usecases

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"medishare.backend/internal/domain/entities"
	domainerrors "medishare.backend/internal/domain/errors"
	"medishare.backend/internal/domain/repositories"
)

const expiryDateLayout = "2006-01-02"

// DonationUsecase handles the donation record lifecycle
type DonationUsecase struct {
	donationRepo repositories.DonationRepository
	accountRepo  repositories.AccountRepository
	policy       *Policy
}

// NewDonationUsecase creates a new donation usecase
func NewDonationUsecase(
	donationRepo repositories.DonationRepository,
	accountRepo repositories.AccountRepository,
	policy *Policy,
) *DonationUsecase {
	return &DonationUsecase{
		donationRepo: donationRepo,
		accountRepo:  accountRepo,
		policy:       policy,
	}
}

// Create submits a new donation. Unauthenticated: anyone may donate. If an
// account exists with the submitted phone, its phoneVerified flag is copied
// onto the record; the snapshot is never resynchronized afterwards.
func (u *DonationUsecase) Create(ctx context.Context, input *entities.CreateDonationInput) (*entities.Donation, error) {
	expiryDate, err := time.Parse(expiryDateLayout, input.ExpiryDate)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid expiry date")
	}

	condition := entities.DonationCondition(input.Condition)
	if input.Condition == "" {
		condition = entities.ConditionUnopened
	}
	if !condition.Valid() {
		return nil, domainerrors.BadRequest("Condition must be valid")
	}

	phoneVerified := false
	account, err := u.accountRepo.GetByPhone(ctx, input.Phone)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if account != nil {
		phoneVerified = account.PhoneVerified
	}

	donation := &entities.Donation{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		PhoneVerified:  phoneVerified,
		Address:        input.Address,
		MedicineName:   input.MedicineName,
		Quantity:       input.Quantity,
		ExpiryDate:     expiryDate,
		Condition:      condition,
		AdditionalInfo: input.AdditionalInfo,
		Status:         entities.StatusPending,
	}
	if err := u.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// Get returns a single donation, applying the read policy. A malformed
// identifier and a missing record surface identically as not found.
func (u *DonationUsecase) Get(ctx context.Context, idStr string, identity entities.ResolvedIdentity) (*entities.Donation, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, domainerrors.NotFound("Donation not found")
	}

	donation, err := u.donationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Donation not found")
		}
		return nil, err
	}

	if err := u.policy.CanRead(identity, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// ListAll returns every donation, newest first. Admin only.
func (u *DonationUsecase) ListAll(ctx context.Context, identity entities.ResolvedIdentity) ([]*entities.Donation, error) {
	if err := u.policy.CanListAll(identity); err != nil {
		return nil, err
	}
	return u.donationRepo.List(ctx)
}

// ListMine returns the caller's donations: records whose stored email or
// phone exactly equals the identity's current contact fields. Every caller
// is allowed; the filter is the authorization.
func (u *DonationUsecase) ListMine(ctx context.Context, identity entities.ResolvedIdentity) ([]*entities.Donation, error) {
	return u.donationRepo.ListByContact(ctx, identity.Email, identity.Phone)
}

// CheckUpdateAccess applies the status-update policy without touching a
// record, for callers that must order the access check before body
// validation.
func (u *DonationUsecase) CheckUpdateAccess(identity entities.ResolvedIdentity) error {
	return u.policy.CanUpdateStatus(identity)
}

// UpdateStatus progresses a donation to any of the five enumerated
// statuses. Admin only; no ordering is enforced between statuses, including
// moving distributed back to pending.
func (u *DonationUsecase) UpdateStatus(ctx context.Context, idStr, statusStr string, identity entities.ResolvedIdentity) (*entities.Donation, error) {
	if err := u.policy.CanUpdateStatus(identity); err != nil {
		return nil, err
	}

	status := entities.DonationStatus(statusStr)
	if !status.Valid() {
		return nil, domainerrors.NewAppError(http.StatusBadRequest, "Invalid status", domainerrors.ErrInvalidStatus)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, domainerrors.NotFound("Donation not found")
	}

	donation, err := u.donationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Donation not found")
		}
		return nil, err
	}

	return donation, nil
}
