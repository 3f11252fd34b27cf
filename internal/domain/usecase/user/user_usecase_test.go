package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	mcore "github.com/powerstack-ng/powerstack-api/mocks/port/core"
	mpers "github.com/powerstack-ng/powerstack-api/mocks/port/persistence"
)

var fixedTime = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

type fixture struct {
	userRepo     *mpers.MockUserRepository
	purchaseRepo *mpers.MockPurchaseRepository
	uc           *UseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		userRepo:     mpers.NewMockUserRepository(t),
		purchaseRepo: mpers.NewMockPurchaseRepository(t),
	}

	refs := mcore.NewMockReferenceGenerator(t)
	refs.On("NewReference").Return("generated-id").Maybe()

	timeProvider := mcore.NewMockTimeProvider(t)
	timeProvider.On("Now").Return(fixedTime).Maybe()

	logger := mcore.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	f.uc = NewUseCase(f.userRepo, f.purchaseRepo, refs, timeProvider, logger)
	return f
}

func storedUser(t *testing.T) *entity.User {
	u, err := entity.NewUser("user-1", "user@example.com", "+2348012345678", "Ada", "Obi", entity.TypeRegular, fixedTime)
	require.NoError(t, err)
	return u
}

func TestEnsureUser(t *testing.T) {
	ctx := context.Background()
	claims := entity.AuthClaims{
		Email:       "user@example.com",
		PhoneNumber: "+2348012345678",
		UserType:    entity.TypeRegular,
		FirstName:   "Ada",
		LastName:    "Obi",
	}

	t.Run("Existing user gets a last-login touch", func(t *testing.T) {
		f := newFixture(t)
		existing := storedUser(t)
		f.userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil).Once()
		f.userRepo.On("TouchLastLogin", mock.Anything, "user-1", fixedTime).Return(nil).Once()

		u, created, err := f.uc.EnsureUser(ctx, claims)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Same(t, existing, u)
	})

	t.Run("First login provisions the account", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(nil, errs.ErrUserNotFound).Once()

		var persisted *entity.User
		f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) { persisted = args.Get(1).(*entity.User) }).
			Return(nil).Once()

		u, created, err := f.uc.EnsureUser(ctx, claims)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Same(t, persisted, u)
		assert.Equal(t, "generated-id", u.UserID)
		assert.Equal(t, "user@example.com", u.Email)
		assert.Equal(t, entity.TypeRegular, u.UserType)
		assert.True(t, u.IsActive)
		assert.Equal(t, int64(0), u.WalletBalanceKobo())
	})

	t.Run("Failed last-login touch does not block login", func(t *testing.T) {
		f := newFixture(t)
		existing := storedUser(t)
		f.userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil).Once()
		f.userRepo.On("TouchLastLogin", mock.Anything, "user-1", fixedTime).Return(errs.ErrStoreUnavailable).Once()

		_, _, err := f.uc.EnsureUser(ctx, claims)
		assert.NoError(t, err)
	})

	t.Run("Store failure propagates", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(nil, errs.ErrStoreUnavailable).Once()

		_, _, err := f.uc.EnsureUser(ctx, claims)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPurchaseHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Purchases are rendered as receipts", func(t *testing.T) {
		f := newFixture(t)
		f.purchaseRepo.On("ListByEmail", mock.Anything, "user@example.com").Return([]*entity.Purchase{
			{PurchaseID: "ref-2", Status: entity.StatusConfirmed, AmountKobo: 200000},
			{PurchaseID: "ref-1", Status: entity.StatusConfirmed, AmountKobo: 100000},
		}, nil).Once()

		receipts, err := f.uc.PurchaseHistory(ctx, "user@example.com")
		require.NoError(t, err)
		require.Len(t, receipts, 2)
		assert.Equal(t, "ref-2", receipts[0].PurchaseID)
		assert.Equal(t, "2000.00", receipts[0].Amount)
	})

	t.Run("No purchases yields an empty list, not nil", func(t *testing.T) {
		f := newFixture(t)
		f.purchaseRepo.On("ListByEmail", mock.Anything, "user@example.com").Return([]*entity.Purchase{}, nil).Once()

		receipts, err := f.uc.PurchaseHistory(ctx, "user@example.com")
		require.NoError(t, err)
		assert.NotNil(t, receipts)
		assert.Empty(t, receipts)
	})
}

func TestGetReceipt(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		f := newFixture(t)
		f.purchaseRepo.On("GetByReference", mock.Anything, "ref-1").
			Return(&entity.Purchase{PurchaseID: "ref-1", Status: entity.StatusConfirmed, AmountKobo: 100000}, nil).Once()

		receipt, err := f.uc.GetReceipt(ctx, "ref-1")
		require.NoError(t, err)
		assert.Equal(t, "ref-1", receipt.PurchaseID)
		assert.Equal(t, "1000.00", receipt.Amount)
	})

	t.Run("Empty reference", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.GetReceipt(ctx, "")
		assert.ErrorIs(t, err, errs.ErrInvalidReference)
	})
}

func TestAddMeter(t *testing.T) {
	ctx := context.Background()
	meter := entity.Meter{MeterName: "Home", MeterNumber: "12345678901", MeterType: "PREPAID", MeterLocation: "Lagos"}

	t.Run("New meter is linked", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(storedUser(t), nil).Once()
		f.userRepo.On("AddMeter", mock.Anything, "user-1", meter).Return(nil).Once()

		added, err := f.uc.AddMeter(ctx, "user@example.com", meter)
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("Identical meter is a no-op", func(t *testing.T) {
		f := newFixture(t)
		u := storedUser(t)
		u.Meters = []entity.Meter{meter}
		f.userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(u, nil).Once()

		added, err := f.uc.AddMeter(ctx, "user@example.com", meter)
		require.NoError(t, err)
		assert.False(t, added)
		f.userRepo.AssertNotCalled(t, "AddMeter", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing meter number", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.AddMeter(ctx, "user@example.com", entity.Meter{MeterName: "Home"})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestRemoveMeter(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes by meter number", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(storedUser(t), nil).Once()
		f.userRepo.On("RemoveMeter", mock.Anything, "user-1", "12345678901").Return(nil).Once()

		assert.NoError(t, f.uc.RemoveMeter(ctx, "user@example.com", "12345678901"))
	})

	t.Run("Missing meter number", func(t *testing.T) {
		f := newFixture(t)
		err := f.uc.RemoveMeter(ctx, "user@example.com", "")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
