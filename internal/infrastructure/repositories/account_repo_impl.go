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

// AccountRepository implements account data operations
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	now := time.Now()
	m := &models.Account{
		ID:            account.ID,
		Name:          account.Name,
		Email:         account.Email,
		Phone:         account.Phone,
		PasswordHash:  account.PasswordHash,
		Role:          string(account.Role),
		PhoneVerified: account.PhoneVerified,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	account.ID = m.ID
	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	var m models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAccountEntity(&m), nil
}

// GetByEmail gets an account by exact email match
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	var m models.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAccountEntity(&m), nil
}

// GetByPhone gets an account by exact phone match
func (r *AccountRepository) GetByPhone(ctx context.Context, phone string) (*entities.Account, error) {
	var m models.Account
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAccountEntity(&m), nil
}

func toAccountEntity(m *models.Account) *entities.Account {
	return &entities.Account{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		PasswordHash:  m.PasswordHash,
		Role:          entities.AccountRole(m.Role),
		PhoneVerified: m.PhoneVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
