package persistence

import (
	"context"
	"time"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
)

// PurchaseRepository persists purchase records. The method surface is
// restricted to what the underlying ledger store offers: get by key,
// attribute-filtered scan, single-item insert and single-item conditional
// update. There are no multi-item transactions; callers order their
// writes accordingly.
type PurchaseRepository interface {
	// Create inserts a new purchase record, conditional on the reference
	// not existing.
	//
	// Possible errors:
	// - ErrDuplicatePurchase: a record with this reference already exists
	// - ErrStoreUnavailable: the store cannot be reached
	Create(ctx context.Context, purchase *entity.Purchase) error

	// GetByReference retrieves a purchase by its transaction reference.
	//
	// Possible errors:
	// - ErrInvalidReference: no record with this reference
	// - ErrStoreUnavailable: the store cannot be reached
	GetByReference(ctx context.Context, reference string) (*entity.Purchase, error)

	// Confirm writes the finalized purchase, conditional on the stored
	// status still being Initialized. This is the settlement point: under
	// concurrent confirmations of the same reference exactly one call
	// succeeds.
	//
	// Possible errors:
	// - ErrAlreadyConfirmed: a concurrent confirmation won; re-read and
	//   return the stored record
	// - ErrInvalidReference: no record with this reference
	// - ErrStoreUnavailable: the store cannot be reached
	Confirm(ctx context.Context, purchase *entity.Purchase) error

	// SetWalletBalance records the post-credit balance on a confirmed
	// wallet fund record. Best effort; the credit itself has already
	// settled.
	SetWalletBalance(ctx context.Context, reference, balance string) error

	// ListByEmail returns all purchases made by the given email, newest
	// first.
	ListByEmail(ctx context.Context, email string) ([]*entity.Purchase, error)

	// ListByTypeAndDateRange returns purchases of one transaction type
	// whose purchase date falls inside [from, to]. Used by analytics.
	ListByTypeAndDateRange(ctx context.Context, txnType entity.TxnType, from, to time.Time) ([]*entity.Purchase, error)
}
