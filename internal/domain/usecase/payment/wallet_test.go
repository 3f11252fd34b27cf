package payment

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

func quietLogger(t *testing.T) *mcore.MockLogger {
	logger := mcore.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func userWithBalance(t *testing.T, userID string, balanceKobo int64) *entity.User {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	u, err := entity.NewUser(userID, userID+"@example.com", "", "", "", entity.TypeRegular, now)
	require.NoError(t, err)
	u.SetWalletBalance(balanceKobo, now)
	return u
}

func TestAdjustBalance(t *testing.T) {
	ctx := context.Background()
	const userID = "user-1"

	t.Run("Credit succeeds on first attempt", func(t *testing.T) {
		userRepo := mpers.NewMockUserRepository(t)
		userRepo.On("GetByID", mock.Anything, userID).Return(userWithBalance(t, userID, 30000), nil).Once()
		userRepo.On("CompareAndSetBalance", mock.Anything, userID, int64(30000), int64(230000)).Return(nil).Once()

		manager := NewBalanceManager(userRepo, quietLogger(t), 3)
		newBalance, err := manager.AdjustBalance(ctx, userID, 200000)

		assert.NoError(t, err)
		assert.Equal(t, int64(230000), newBalance)
	})

	t.Run("Conflict retries with re-read balance", func(t *testing.T) {
		userRepo := mpers.NewMockUserRepository(t)
		// First read sees 50000, a concurrent writer moves it to 40000
		// before the write lands.
		userRepo.On("GetByID", mock.Anything, userID).Return(userWithBalance(t, userID, 50000), nil).Once()
		userRepo.On("CompareAndSetBalance", mock.Anything, userID, int64(50000), int64(40000)).Return(errs.ErrBalanceConflict).Once()
		userRepo.On("GetByID", mock.Anything, userID).Return(userWithBalance(t, userID, 40000), nil).Once()
		userRepo.On("CompareAndSetBalance", mock.Anything, userID, int64(40000), int64(30000)).Return(nil).Once()

		manager := NewBalanceManager(userRepo, quietLogger(t), 3)
		newBalance, err := manager.AdjustBalance(ctx, userID, -10000)

		assert.NoError(t, err)
		assert.Equal(t, int64(30000), newBalance)
	})

	t.Run("Exhausted retries surface the conflict", func(t *testing.T) {
		userRepo := mpers.NewMockUserRepository(t)
		userRepo.On("GetByID", mock.Anything, userID).Return(userWithBalance(t, userID, 50000), nil).Times(3)
		userRepo.On("CompareAndSetBalance", mock.Anything, userID, int64(50000), int64(60000)).Return(errs.ErrBalanceConflict).Times(3)

		manager := NewBalanceManager(userRepo, quietLogger(t), 3)
		_, err := manager.AdjustBalance(ctx, userID, 10000)

		assert.ErrorIs(t, err, errs.ErrBalanceConflict)
	})

	t.Run("Debit past zero is rejected before any write", func(t *testing.T) {
		userRepo := mpers.NewMockUserRepository(t)
		userRepo.On("GetByID", mock.Anything, userID).Return(userWithBalance(t, userID, 10000), nil).Once()

		manager := NewBalanceManager(userRepo, quietLogger(t), 3)
		_, err := manager.AdjustBalance(ctx, userID, -10001)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		userRepo.AssertNotCalled(t, "CompareAndSetBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Debit to exactly zero is allowed", func(t *testing.T) {
		userRepo := mpers.NewMockUserRepository(t)
		userRepo.On("GetByID", mock.Anything, userID).Return(userWithBalance(t, userID, 10000), nil).Once()
		userRepo.On("CompareAndSetBalance", mock.Anything, userID, int64(10000), int64(0)).Return(nil).Once()

		manager := NewBalanceManager(userRepo, quietLogger(t), 3)
		newBalance, err := manager.AdjustBalance(ctx, userID, -10000)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), newBalance)
	})

	t.Run("Unknown user propagates", func(t *testing.T) {
		userRepo := mpers.NewMockUserRepository(t)
		userRepo.On("GetByID", mock.Anything, userID).Return(nil, errs.ErrUserNotFound).Once()

		manager := NewBalanceManager(userRepo, quietLogger(t), 3)
		_, err := manager.AdjustBalance(ctx, userID, 10000)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Non-conflict write error does not retry", func(t *testing.T) {
		userRepo := mpers.NewMockUserRepository(t)
		userRepo.On("GetByID", mock.Anything, userID).Return(userWithBalance(t, userID, 10000), nil).Once()
		userRepo.On("CompareAndSetBalance", mock.Anything, userID, int64(10000), int64(20000)).Return(errs.ErrStoreUnavailable).Once()

		manager := NewBalanceManager(userRepo, quietLogger(t), 3)
		_, err := manager.AdjustBalance(ctx, userID, 10000)

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}
