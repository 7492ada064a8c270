package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"medishare.backend/internal/domain/entities"
	domainerrors "medishare.backend/internal/domain/errors"
	"medishare.backend/internal/infrastructure/models"
)

// DonationRepository implements donation record data operations
type DonationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// Create persists a new donation record
func (r *DonationRepository) Create(ctx context.Context, donation *entities.Donation) error {
	now := time.Now()
	m := &models.Donation{
		ID:              donation.ID,
		Name:            donation.Name,
		Email:           donation.Email,
		Phone:           donation.Phone,
		PhoneVerified:   donation.PhoneVerified,
		Address:         donation.Address,
		MedicineName:    donation.MedicineName,
		Quantity:        donation.Quantity,
		ExpiryDate:      donation.ExpiryDate,
		Condition:       string(donation.Condition),
		AdditionalInfo:  donation.AdditionalInfo,
		Status:          string(donation.Status),
		StatusUpdatedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	donation.ID = m.ID
	donation.StatusUpdatedAt = m.StatusUpdatedAt
	donation.CreatedAt = m.CreatedAt
	donation.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a donation by ID
func (r *DonationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Donation, error) {
	var m models.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toDonationEntity(&m), nil
}

// List returns all donations, newest-created-first
func (r *DonationRepository) List(ctx context.Context) ([]*entities.Donation, error) {
	var donationModels []models.Donation
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&donationModels).Error; err != nil {
		return nil, err
	}
	return toDonationEntities(donationModels), nil
}

// ListByContact returns donations whose stored email or phone exactly equals
// the given values, newest-created-first. Matching is value equality, no
// normalization of case or whitespace.
func (r *DonationRepository) ListByContact(ctx context.Context, email, phone string) ([]*entities.Donation, error) {
	var donationModels []models.Donation
	err := r.db.WithContext(ctx).
		Where("email = ? OR phone = ?", email, phone).
		Order("created_at DESC").
		Find(&donationModels).Error
	if err != nil {
		return nil, err
	}
	return toDonationEntities(donationModels), nil
}

// UpdateStatus overwrites status and status_updated_at and returns the
// updated record. Last write wins: there is no optimistic concurrency check.
func (r *DonationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.DonationStatus) (*entities.Donation, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.Donation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":            string(status),
			"status_updated_at": now,
			"updated_at":        now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func toDonationEntity(m *models.Donation) *entities.Donation {
	return &entities.Donation{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		PhoneVerified:   m.PhoneVerified,
		Address:         m.Address,
		MedicineName:    m.MedicineName,
		Quantity:        m.Quantity,
		ExpiryDate:      m.ExpiryDate,
		Condition:       entities.DonationCondition(m.Condition),
		AdditionalInfo:  m.AdditionalInfo,
		Status:          entities.DonationStatus(m.Status),
		StatusUpdatedAt: m.StatusUpdatedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toDonationEntities(donationModels []models.Donation) []*entities.Donation {
	donations := make([]*entities.Donation, 0, len(donationModels))
	for _, m := range donationModels {
		model := m
		donations = append(donations, toDonationEntity(&model))
	}
	return donations
}
