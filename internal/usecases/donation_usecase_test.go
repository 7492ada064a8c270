package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"medishare.backend/internal/domain/entities"
	domainerrors "medishare.backend/internal/domain/errors"
	"medishare.backend/internal/usecases"
)

func newDonationUsecaseForTest(donationRepo *MockDonationRepository, accountRepo *MockAccountRepository) *usecases.DonationUsecase {
	return usecases.NewDonationUsecase(donationRepo, accountRepo, usecases.NewPolicy())
}

func createDonationInput() *entities.CreateDonationInput {
	return &entities.CreateDonationInput{
		Name:         "A",
		Email:        "a@x.com",
		Phone:        "+15551234567",
		Address:      "1 Rd",
		MedicineName: "Aspirin",
		Quantity:     "30 tablets",
		ExpiryDate:   "2030-01-01",
		Condition:    "unopened",
	}
}

func TestDonationUsecase_Create_Success(t *testing.T) {
	donationRepo := new(MockDonationRepository)
	accountRepo := new(MockAccountRepository)
	uc := newDonationUsecaseForTest(donationRepo, accountRepo)

	accountRepo.On("GetByPhone", context.Background(), "+15551234567").Return(nil, domainerrors.ErrNotFound).Once()
	donationRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Donation")).Return(nil).Run(func(args mock.Arguments) {
		d := args.Get(1).(*entities.Donation)
		d.ID = uuid.New()
	}).Once()

	donation, err := uc.Create(context.Background(), createDonationInput())
	assert.NoError(t, err)
	assert.Equal(t, entities.StatusPending, donation.Status)
	assert.False(t, donation.PhoneVerified)
	assert.Equal(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), donation.ExpiryDate)
	donationRepo.AssertExpectations(t)
}

func TestDonationUsecase_Create_SnapshotsPhoneVerified(t *testing.T) {
	donationRepo := new(MockDonationRepository)
	accountRepo := new(MockAccountRepository)
	uc := newDonationUsecaseForTest(donationRepo, accountRepo)

	accountRepo.On("GetByPhone", mock.Anything, "+15551234567").Return(&entities.Account{
		ID:            uuid.New(),
		Phone:         "+15551234567",
		PhoneVerified: true,
	}, nil).Once()

	var created *entities.Donation
	donationRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Donation")).Return(nil).Run(func(args mock.Arguments) {
		created = args.Get(1).(*entities.Donation)
	}).Once()

	_, err := uc.Create(context.Background(), createDonationInput())
	assert.NoError(t, err)
	assert.True(t, created.PhoneVerified)
}

func TestDonationUsecase_Create_DefaultsCondition(t *testing.T) {
	donationRepo := new(MockDonationRepository)
	accountRepo := new(MockAccountRepository)
	uc := newDonationUsecaseForTest(donationRepo, accountRepo)

	input := createDonationInput()
	input.Condition = ""

	accountRepo.On("GetByPhone", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound)
	donationRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Donation")).Return(nil)

	donation, err := uc.Create(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, entities.ConditionUnopened, donation.Condition)
}

func TestDonationUsecase_Create_BadExpiryDate(t *testing.T) {
	uc := newDonationUsecaseForTest(new(MockDonationRepository), new(MockAccountRepository))

	input := createDonationInput()
	input.ExpiryDate = "soon"

	_, err := uc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid expiry date", appErr.Message)
}

func TestDonationUsecase_Get_OwnerAndAdmin(t *testing.T) {
	donationRepo := new(MockDonationRepository)
	uc := newDonationUsecaseForTest(donationRepo, new(MockAccountRepository))

	id := uuid.New()
	donation := &entities.Donation{ID: id, Email: "owner@x.com", Phone: "+15551234567"}
	donationRepo.On("GetByID", mock.Anything, id).Return(donation, nil)

	got, err := uc.Get(context.Background(), id.String(), donorIdentity("owner@x.com", "+15550000000"))
	assert.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = uc.Get(context.Background(), id.String(), adminIdentity())
	assert.NoError(t, err)

	_, err = uc.Get(context.Background(), id.String(), donorIdentity("other@x.com", "+15559999999"))
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDonationUsecase_Get_MalformedIDIsNotFound(t *testing.T) {
	uc := newDonationUsecaseForTest(new(MockDonationRepository), new(MockAccountRepository))

	// A malformed identifier surfaces exactly like a missing record.
	_, err := uc.Get(context.Background(), "not-a-uuid", adminIdentity())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDonationUsecase_Get_MissingIsNotFound(t *testing.T) {
	donationRepo := new(MockDonationRepository)
	uc := newDonationUsecaseForTest(donationRepo, new(MockAccountRepository))

	id := uuid.New()
	donationRepo.On("GetByID", mock.Anything, id).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Get(context.Background(), id.String(), adminIdentity())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDonationUsecase_ListAll_AdminOnly(t *testing.T) {
	donationRepo := new(MockDonationRepository)
	uc := newDonationUsecaseForTest(donationRepo, new(MockAccountRepository))

	donationRepo.On("List", mock.Anything).Return([]*entities.Donation{{ID: uuid.New()}}, nil).Once()

	all, err := uc.ListAll(context.Background(), adminIdentity())
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = uc.ListAll(context.Background(), donorIdentity("d@x.com", "+15551234567"))
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	donationRepo.AssertNumberOfCalls(t, "List", 1)
}

func TestDonationUsecase_ListMine_FiltersByLiveContact(t *testing.T) {
	donationRepo := new(MockDonationRepository)
	uc := newDonationUsecaseForTest(donationRepo, new(MockAccountRepository))

	identity := donorIdentity("me@x.com", "+15551234567")
	owned := []*entities.Donation{{ID: uuid.New(), Email: "me@x.com"}}
	donationRepo.On("ListByContact", mock.Anything, "me@x.com", "+15551234567").Return(owned, nil).Once()

	got, err := uc.ListMine(context.Background(), identity)
	assert.NoError(t, err)
	assert.Equal(t, owned, got)
	donationRepo.AssertExpectations(t)
}

func TestDonationUsecase_UpdateStatus_AdminAnyToAny(t *testing.T) {
	donationRepo := new(MockDonationRepository)
	uc := newDonationUsecaseForTest(donationRepo, new(MockAccountRepository))

	id := uuid.New()
	donationRepo.On("UpdateStatus", mock.Anything, id, entities.StatusPending).
		Return(&entities.Donation{ID: id, Status: entities.StatusPending}, nil).Once()

	// distributed back to pending is a legal move.
	got, err := uc.UpdateStatus(context.Background(), id.String(), "pending", adminIdentity())
	assert.NoError(t, err)
	assert.Equal(t, entities.StatusPending, got.Status)
}

func TestDonationUsecase_UpdateStatus_NonAdminForbidden(t *testing.T) {
	donationRepo := new(MockDonationRepository)
	uc := newDonationUsecaseForTest(donationRepo, new(MockAccountRepository))

	// The owner of the record is still forbidden.
	_, err := uc.UpdateStatus(context.Background(), uuid.New().String(), "approved", donorIdentity("owner@x.com", "+15551234567"))
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	donationRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestDonationUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	uc := newDonationUsecaseForTest(new(MockDonationRepository), new(MockAccountRepository))

	_, err := uc.UpdateStatus(context.Background(), uuid.New().String(), "archived", adminIdentity())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestDonationUsecase_UpdateStatus_NotFound(t *testing.T) {
	donationRepo := new(MockDonationRepository)
	uc := newDonationUsecaseForTest(donationRepo, new(MockAccountRepository))

	id := uuid.New()
	donationRepo.On("UpdateStatus", mock.Anything, id, entities.StatusApproved).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.UpdateStatus(context.Background(), id.String(), "approved", adminIdentity())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = uc.UpdateStatus(context.Background(), "not-a-uuid", "approved", adminIdentity())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
