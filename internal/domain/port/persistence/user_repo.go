package persistence

import (
	"context"
	"time"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
)

// UserRepository persists user records. Wallet balance mutation is
// exposed only as a compare-and-set so that every adapter provides
// linearizable per-user balance updates; the unconditional overwrite the
// original system used is deliberately not part of this interface.
type UserRepository interface {
	// GetByID retrieves a user by primary key.
	//
	// Possible errors:
	// - ErrUserNotFound: no user with this ID
	// - ErrStoreUnavailable: the store cannot be reached
	GetByID(ctx context.Context, userID string) (*entity.User, error)

	// GetByEmail retrieves a user by the email business key.
	//
	// Possible errors:
	// - ErrUserNotFound: no user with this email
	// - ErrStoreUnavailable: the store cannot be reached
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts a new user record.
	//
	// Possible errors:
	// - ErrStoreUnavailable: the store cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// CompareAndSetBalance writes newBalanceKobo only if the stored
	// balance still equals expectedKobo. The wallet balance manager
	// retries on conflict.
	//
	// Possible errors:
	// - ErrBalanceConflict: the stored balance no longer matches
	// - ErrUserNotFound: no user with this ID
	// - ErrStoreUnavailable: the store cannot be reached
	CompareAndSetBalance(ctx context.Context, userID string, expectedKobo, newBalanceKobo int64) error

	// TouchLastLogin updates the last-login timestamp.
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error

	// SetActive activates or deactivates an account.
	SetActive(ctx context.Context, userID string, active bool) error

	// AddMeter appends a meter descriptor to the user's meter list.
	AddMeter(ctx context.Context, userID string, meter entity.Meter) error

	// RemoveMeter removes the meter with the given number from the list.
	RemoveMeter(ctx context.Context, userID string, meterNumber string) error

	// ListByType returns all users of the given type.
	ListByType(ctx context.Context, userType entity.UserType) ([]*entity.User, error)

	// ListByTypeAndLastLogin returns users of one type whose last login
	// falls inside [from, to]. Used by analytics.
	ListByTypeAndLastLogin(ctx context.Context, userType entity.UserType, from, to time.Time) ([]*entity.User, error)
}
