package admin

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

var (
	adminClaims   = entity.AuthClaims{Email: "admin@example.com", UserType: entity.TypeAdmin}
	ownerClaims   = entity.AuthClaims{Email: "owner@example.com", UserType: entity.TypeOwner}
	regularClaims = entity.AuthClaims{Email: "user@example.com", UserType: entity.TypeRegular}
)

func newUseCase(t *testing.T) (*UseCase, *mpers.MockUserRepository, *mpers.MockPurchaseRepository) {
	userRepo := mpers.NewMockUserRepository(t)
	purchaseRepo := mpers.NewMockPurchaseRepository(t)

	logger := mcore.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	return NewUseCase(userRepo, purchaseRepo, logger), userRepo, purchaseRepo
}

func testUser(t *testing.T, userID, email string) *entity.User {
	u, err := entity.NewUser(userID, email, "", "", "", entity.TypeRegular, time.Now())
	require.NoError(t, err)
	return u
}

func TestUsersByType(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists dashboards for one type", func(t *testing.T) {
		uc, userRepo, _ := newUseCase(t)
		userRepo.On("ListByType", mock.Anything, entity.TypeMerchant).Return([]*entity.User{
			testUser(t, "m-1", "m1@example.com"),
			testUser(t, "m-2", "m2@example.com"),
		}, nil).Once()

		out, err := uc.UsersByType(ctx, adminClaims, "MERCHANT")
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "m-1", out[0].UserID)
	})

	t.Run("Unknown type is rejected", func(t *testing.T) {
		uc, _, _ := newUseCase(t)
		_, err := uc.UsersByType(ctx, adminClaims, "SUPERUSER")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Regular user cannot", func(t *testing.T) {
		uc, userRepo, _ := newUseCase(t)
		_, err := uc.UsersByType(ctx, regularClaims, "REGULAR")
		assert.ErrorIs(t, err, errs.ErrUnauthorizedUser)
		userRepo.AssertNotCalled(t, "ListByType", mock.Anything, mock.Anything)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Bundles account with purchase history", func(t *testing.T) {
		uc, userRepo, purchaseRepo := newUseCase(t)
		userRepo.On("GetByEmail", mock.Anything, "u@example.com").Return(testUser(t, "u-1", "u@example.com"), nil).Once()
		purchaseRepo.On("ListByEmail", mock.Anything, "u@example.com").Return([]*entity.Purchase{
			{PurchaseID: "ref-1", Status: entity.StatusConfirmed, AmountKobo: 100000},
		}, nil).Once()

		detail, err := uc.GetUser(ctx, adminClaims, "u@example.com")
		require.NoError(t, err)
		assert.Equal(t, "u-1", detail.User.UserID)
		require.Len(t, detail.Purchases, 1)
		assert.Equal(t, "1000.00", detail.Purchases[0].Amount)
	})

	t.Run("Unknown email", func(t *testing.T) {
		uc, userRepo, _ := newUseCase(t)
		userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()

		_, err := uc.GetUser(ctx, adminClaims, "ghost@example.com")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestSetUserStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Deactivates by email", func(t *testing.T) {
		uc, userRepo, _ := newUseCase(t)
		userRepo.On("GetByEmail", mock.Anything, "u@example.com").Return(testUser(t, "u-1", "u@example.com"), nil).Once()
		userRepo.On("SetActive", mock.Anything, "u-1", false).Return(nil).Once()

		assert.NoError(t, uc.SetUserStatus(ctx, adminClaims, "u@example.com", false))
	})

	t.Run("Regular user cannot", func(t *testing.T) {
		uc, _, _ := newUseCase(t)
		err := uc.SetUserStatus(ctx, regularClaims, "u@example.com", false)
		assert.ErrorIs(t, err, errs.ErrUnauthorizedUser)
	})
}

func TestTransactionsByDateRange(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	t.Run("Sums amounts and units", func(t *testing.T) {
		uc, _, purchaseRepo := newUseCase(t)
		purchaseRepo.On("ListByTypeAndDateRange", mock.Anything, entity.TxnSimple, from, to).Return([]*entity.Purchase{
			{PurchaseID: "ref-1", AmountKobo: 100000, Units: "885.00"},
			{PurchaseID: "ref-2", AmountKobo: 200000, Units: "1855.00"},
		}, nil).Once()

		report, err := uc.TransactionsByDateRange(ctx, ownerClaims, "Simple", from, to)
		require.NoError(t, err)

		assert.Equal(t, 2, report.PurchaseCount)
		assert.Equal(t, "3000.00", report.NairaAmount)
		assert.Equal(t, "2740.00", report.UnitsSold)
		assert.Empty(t, report.CommissionPaidOut)
	})

	t.Run("Merchant report includes commission paid out", func(t *testing.T) {
		uc, _, purchaseRepo := newUseCase(t)
		purchaseRepo.On("ListByTypeAndDateRange", mock.Anything, entity.TxnMerchant, from, to).Return([]*entity.Purchase{
			{PurchaseID: "ref-1", AmountKobo: 100000, Units: "885.00", Commission: "10.00"},
			{PurchaseID: "ref-2", AmountKobo: 100000, Units: "885.00", Commission: "10.00"},
		}, nil).Once()

		report, err := uc.TransactionsByDateRange(ctx, ownerClaims, "Merchant", from, to)
		require.NoError(t, err)
		assert.Equal(t, "20.00", report.CommissionPaidOut)
	})

	t.Run("Missing breakdown fields count as zero", func(t *testing.T) {
		uc, _, purchaseRepo := newUseCase(t)
		purchaseRepo.On("ListByTypeAndDateRange", mock.Anything, entity.TxnWallet, from, to).Return([]*entity.Purchase{
			{PurchaseID: "ref-1", AmountKobo: 100000},
		}, nil).Once()

		report, err := uc.TransactionsByDateRange(ctx, ownerClaims, "Wallet", from, to)
		require.NoError(t, err)
		assert.Equal(t, "1000.00", report.NairaAmount)
		assert.Equal(t, "0.00", report.UnitsSold)
	})

	t.Run("Admin without owner role cannot", func(t *testing.T) {
		uc, _, purchaseRepo := newUseCase(t)
		_, err := uc.TransactionsByDateRange(ctx, adminClaims, "Simple", from, to)
		assert.ErrorIs(t, err, errs.ErrUnauthorizedUser)
		purchaseRepo.AssertNotCalled(t, "ListByTypeAndDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown transaction type", func(t *testing.T) {
		uc, _, _ := newUseCase(t)
		_, err := uc.TransactionsByDateRange(ctx, ownerClaims, "Refund", from, to)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestActiveUsersByDateRange(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	t.Run("Counts users seen in the window", func(t *testing.T) {
		uc, userRepo, _ := newUseCase(t)
		userRepo.On("ListByTypeAndLastLogin", mock.Anything, entity.TypeRegular, from, to).Return([]*entity.User{
			testUser(t, "u-1", "u1@example.com"),
			testUser(t, "u-2", "u2@example.com"),
			testUser(t, "u-3", "u3@example.com"),
		}, nil).Once()

		report, err := uc.ActiveUsersByDateRange(ctx, ownerClaims, "REGULAR", from, to)
		require.NoError(t, err)
		assert.Equal(t, 3, report.UserCount)
		assert.Len(t, report.Users, 3)
	})

	t.Run("Admin without owner role cannot", func(t *testing.T) {
		uc, _, _ := newUseCase(t)
		_, err := uc.ActiveUsersByDateRange(ctx, adminClaims, "REGULAR", from, to)
		assert.ErrorIs(t, err, errs.ErrUnauthorizedUser)
	})
}
