package user

import (
	"context"
	"errors"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/persistence"
)

// UseCase covers the account surface: lazy provisioning on first
// authenticated call, purchase history, receipts and meter management.
type UseCase struct {
	userRepo     persistence.UserRepository
	purchaseRepo persistence.PurchaseRepository
	refs         coreport.ReferenceGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates the user use case.
func NewUseCase(
	userRepo persistence.UserRepository,
	purchaseRepo persistence.PurchaseRepository,
	refs coreport.ReferenceGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		refs:         refs,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// EnsureUser returns the user record for the authenticated claims,
// creating it on first login. The returned bool reports whether a new
// record was provisioned.
func (u *UseCase) EnsureUser(ctx context.Context, claims entity.AuthClaims) (*entity.User, bool, error) {
	existing, err := u.userRepo.GetByEmail(ctx, claims.Email)
	if err == nil {
		if touchErr := u.userRepo.TouchLastLogin(ctx, existing.UserID, u.timeProvider.Now()); touchErr != nil {
			u.logger.Warn("Failed to update last login", map[string]any{
				"user_id": existing.UserID,
				"error":   touchErr.Error(),
			})
		}
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, false, err
	}

	created, err := entity.NewUser(
		u.refs.NewReference(),
		claims.Email,
		claims.PhoneNumber,
		claims.FirstName,
		claims.LastName,
		claims.UserType,
		u.timeProvider.Now(),
	)
	if err != nil {
		return nil, false, err
	}
	if err := u.userRepo.Create(ctx, created); err != nil {
		return nil, false, err
	}

	u.logger.Info("User provisioned on first login", map[string]any{
		"user_id":   created.UserID,
		"email":     created.Email,
		"user_type": string(created.UserType),
	})
	return created, true, nil
}

// PurchaseHistory returns all purchases made by the given email, as
// receipts.
func (u *UseCase) PurchaseHistory(ctx context.Context, email string) ([]entity.Receipt, error) {
	purchases, err := u.purchaseRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	receipts := make([]entity.Receipt, 0, len(purchases))
	for _, p := range purchases {
		receipts = append(receipts, p.ToReceipt())
	}
	return receipts, nil
}

// GetReceipt fetches a single purchase by transaction reference.
func (u *UseCase) GetReceipt(ctx context.Context, reference string) (entity.Receipt, error) {
	if reference == "" {
		return entity.Receipt{}, errs.ErrInvalidReference
	}
	purchase, err := u.purchaseRepo.GetByReference(ctx, reference)
	if err != nil {
		return entity.Receipt{}, err
	}
	return purchase.ToReceipt(), nil
}

// AddMeter links a meter to the account. Returns false without error if
// an identical meter is already saved.
func (u *UseCase) AddMeter(ctx context.Context, email string, meter entity.Meter) (bool, error) {
	if meter.MeterNumber == "" {
		return false, errs.ErrValidation
	}
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user.HasMeter(meter) {
		return false, nil
	}
	if err := u.userRepo.AddMeter(ctx, user.UserID, meter); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveMeter unlinks the meter with the given number.
func (u *UseCase) RemoveMeter(ctx context.Context, email, meterNumber string) error {
	if meterNumber == "" {
		return errs.ErrValidation
	}
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return u.userRepo.RemoveMeter(ctx, user.UserID, meterNumber)
}
