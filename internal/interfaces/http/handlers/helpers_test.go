package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"medishare.backend/internal/domain/entities"
	domainerrors "medishare.backend/internal/domain/errors"
)

// memAccountRepo is an in-memory account store for handler tests.
type memAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entities.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[uuid.UUID]*entities.Account)}
}

func (r *memAccountRepo) Create(_ context.Context, account *entities.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

func (r *memAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (r *memAccountRepo) GetByEmail(_ context.Context, email string) (*entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *memAccountRepo) GetByPhone(_ context.Context, phone string) (*entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Phone == phone {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

// memDonationRepo is an in-memory donation store for handler tests.
type memDonationRepo struct {
	mu        sync.Mutex
	donations map[uuid.UUID]*entities.Donation
}

func newMemDonationRepo() *memDonationRepo {
	return &memDonationRepo{donations: make(map[uuid.UUID]*entities.Donation)}
}

func (r *memDonationRepo) Create(_ context.Context, donation *entities.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}
	donation.CreatedAt = time.Now()
	donation.UpdatedAt = donation.CreatedAt
	donation.StatusUpdatedAt = donation.CreatedAt
	cp := *donation
	r.donations[donation.ID] = &cp
	return nil
}

func (r *memDonationRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.donations[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (r *memDonationRepo) List(_ context.Context) ([]*entities.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.Donation, 0, len(r.donations))
	for _, d := range r.donations {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memDonationRepo) ListByContact(_ context.Context, email, phone string) ([]*entities.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Donation
	for _, d := range r.donations {
		if d.Email == email || d.Phone == phone {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memDonationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.DonationStatus) (*entities.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.donations[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	d.Status = status
	d.StatusUpdatedAt = time.Now()
	d.UpdatedAt = d.StatusUpdatedAt
	cp := *d
	return &cp, nil
}
