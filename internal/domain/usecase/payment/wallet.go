package payment

import (
	"context"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/persistence"
)

// BalanceManager performs wallet balance updates through optimistic
// concurrency: read the balance, compute the new value, then write
// conditionally on the balance still holding the value that was read.
// Two concurrent writers for the same user cannot both win; the loser
// re-reads and retries, so per-user balance updates are linearizable
// without any store-side transactions.
type BalanceManager struct {
	userRepo    persistence.UserRepository
	logger      coreport.Logger
	maxAttempts int
}

// NewBalanceManager creates a balance manager with bounded retries.
func NewBalanceManager(userRepo persistence.UserRepository, logger coreport.Logger, maxAttempts int) *BalanceManager {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &BalanceManager{
		userRepo:    userRepo,
		logger:      logger,
		maxAttempts: maxAttempts,
	}
}

// AdjustBalance applies deltaKobo (positive credit, negative debit) to
// the user's wallet and returns the resulting balance in kobo.
//
// A debit that would drive the balance negative fails with
// InsufficientBalance, including when a concurrent writer spent the
// funds between the caller's pre-check and this call. Conflict retries
// are bounded; exhaustion surfaces ErrBalanceConflict.
func (m *BalanceManager) AdjustBalance(ctx context.Context, userID string, deltaKobo int64) (int64, error) {
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		user, err := m.userRepo.GetByID(ctx, userID)
		if err != nil {
			return 0, err
		}

		current := user.WalletBalanceKobo()
		next := current + deltaKobo
		if next < 0 {
			return 0, errs.NewInsufficientBalanceError(userID, entity.KoboToNaira(-deltaKobo), user.WalletBalance())
		}

		err = m.userRepo.CompareAndSetBalance(ctx, userID, current, next)
		if err == nil {
			m.logger.Info("Wallet balance updated", map[string]any{
				"user_id":     userID,
				"delta":       entity.KoboToNaira(deltaKobo),
				"new_balance": entity.KoboToNaira(next),
				"attempt":     attempt,
			})
			return next, nil
		}
		if !errs.IsBalanceConflict(err) {
			return 0, err
		}

		m.logger.Warn("Wallet balance write conflicted, retrying", map[string]any{
			"user_id": userID,
			"attempt": attempt,
		})
	}

	m.logger.Error("Wallet balance update exhausted retries", map[string]any{
		"user_id":      userID,
		"delta":        entity.KoboToNaira(deltaKobo),
		"max_attempts": m.maxAttempts,
	})
	return 0, errs.ErrBalanceConflict
}
