package usecases

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"medishare.backend/internal/domain/entities"
	domainerrors "medishare.backend/internal/domain/errors"
	"medishare.backend/internal/domain/repositories"
	"medishare.backend/pkg/crypto"
	"medishare.backend/pkg/jwt"
)

// AuthUsecase handles registration and login
type AuthUsecase struct {
	accountRepo  repositories.AccountRepository
	tokenService *jwt.Service
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(accountRepo repositories.AccountRepository, tokenService *jwt.Service) *AuthUsecase {
	return &AuthUsecase{
		accountRepo:  accountRepo,
		tokenService: tokenService,
	}
}

// Register creates a new donor account and issues a token. Email and phone
// must each be unused; the two duplicate cases carry distinct messages.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	_, err := u.accountRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.NewAppError(http.StatusBadRequest, "User already exists", domainerrors.ErrAlreadyExists)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	_, err = u.accountRepo.GetByPhone(ctx, input.Phone)
	if err == nil {
		return nil, domainerrors.NewAppError(http.StatusBadRequest, "Phone number already registered", domainerrors.ErrAlreadyExists)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	account := &entities.Account{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		PasswordHash:  passwordHash,
		Role:          entities.AccountRoleDonor,
		PhoneVerified: false,
	}
	if err := u.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	token, err := u.tokenService.Generate(account.ID, string(account.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: token, User: account.Public()}, nil
}

// Login authenticates by email and password. A missing account and a failed
// password check are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	account, err := u.accountRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.tokenService.Generate(account.ID, string(account.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: token, User: account.Public()}, nil
}

// GetAccountByID gets an account by ID
func (u *AuthUsecase) GetAccountByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	return u.accountRepo.GetByID(ctx, id)
}
