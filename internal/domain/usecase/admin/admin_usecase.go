package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/persistence"
)

// UseCase covers the admin surface: user management and analytics over
// attribute-filtered scans. Every operation re-checks authorization from
// the claims rather than trusting the router alone.
type UseCase struct {
	userRepo     persistence.UserRepository
	purchaseRepo persistence.PurchaseRepository
	logger       coreport.Logger
}

// NewUseCase creates the admin use case.
func NewUseCase(userRepo persistence.UserRepository, purchaseRepo persistence.PurchaseRepository, logger coreport.Logger) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

// UsersByType lists all users of one type.
func (u *UseCase) UsersByType(ctx context.Context, claims entity.AuthClaims, userType string) ([]entity.Dashboard, error) {
	if !claims.CanManageUsers() {
		return nil, errs.ErrUnauthorizedUser
	}
	if !entity.IsValidUserType(userType) {
		return nil, fmt.Errorf("%w: unknown user type %q", errs.ErrValidation, userType)
	}

	users, err := u.userRepo.ListByType(ctx, entity.UserType(userType))
	if err != nil {
		return nil, err
	}
	out := make([]entity.Dashboard, 0, len(users))
	for _, usr := range users {
		out = append(out, usr.ToDashboard())
	}
	return out, nil
}

// UserDetail bundles an account with its purchase history.
type UserDetail struct {
	User      entity.Dashboard `json:"userInfo"`
	Purchases []entity.Receipt `json:"purchases"`
}

// GetUser returns one account and everything it bought.
func (u *UseCase) GetUser(ctx context.Context, claims entity.AuthClaims, email string) (*UserDetail, error) {
	if !claims.CanManageUsers() {
		return nil, errs.ErrUnauthorizedUser
	}

	usr, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	purchases, err := u.purchaseRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	detail := &UserDetail{User: usr.ToDashboard(), Purchases: make([]entity.Receipt, 0, len(purchases))}
	for _, p := range purchases {
		detail.Purchases = append(detail.Purchases, p.ToReceipt())
	}
	return detail, nil
}

// PurchaseByReference looks up a single purchase for support work.
func (u *UseCase) PurchaseByReference(ctx context.Context, claims entity.AuthClaims, reference string) (entity.Receipt, error) {
	if !claims.CanManageUsers() {
		return entity.Receipt{}, errs.ErrUnauthorizedUser
	}
	purchase, err := u.purchaseRepo.GetByReference(ctx, reference)
	if err != nil {
		return entity.Receipt{}, err
	}
	return purchase.ToReceipt(), nil
}

// SetUserStatus activates or deactivates an account.
func (u *UseCase) SetUserStatus(ctx context.Context, claims entity.AuthClaims, email string, active bool) error {
	if !claims.CanManageUsers() {
		return errs.ErrUnauthorizedUser
	}
	usr, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	u.logger.Info("User status updated", map[string]any{
		"user_id": usr.UserID,
		"email":   email,
		"active":  active,
		"by":      claims.Email,
	})
	return u.userRepo.SetActive(ctx, usr.UserID, active)
}

// TransactionAnalytics aggregates purchases of one type over a date range.
type TransactionAnalytics struct {
	Purchases         []entity.Receipt `json:"purchases"`
	PurchaseCount     int              `json:"purchaseCount"`
	NairaAmount       string           `json:"nairaAmount"`
	UnitsSold         string           `json:"unitsSold"`
	CommissionPaidOut string           `json:"commissionPaidOut,omitempty"`
}

// TransactionsByDateRange sums volumes for one transaction type. Owner
// only.
func (u *UseCase) TransactionsByDateRange(ctx context.Context, claims entity.AuthClaims, txnType string, from, to time.Time) (*TransactionAnalytics, error) {
	if !claims.IsOwner() {
		return nil, errs.ErrUnauthorizedUser
	}
	if !entity.IsValidTxnType(txnType) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", errs.ErrValidation, txnType)
	}

	purchases, err := u.purchaseRepo.ListByTypeAndDateRange(ctx, entity.TxnType(txnType), from, to)
	if err != nil {
		return nil, err
	}

	result := &TransactionAnalytics{Purchases: make([]entity.Receipt, 0, len(purchases))}
	var amountKobo, unitsKobo, commissionKobo int64
	for _, p := range purchases {
		result.Purchases = append(result.Purchases, p.ToReceipt())
		amountKobo += p.AmountKobo
		unitsKobo += parseOptionalNaira(p.Units)
		commissionKobo += parseOptionalNaira(p.Commission)
	}

	result.PurchaseCount = len(purchases)
	result.NairaAmount = entity.KoboToNaira(amountKobo)
	result.UnitsSold = entity.KoboToNaira(unitsKobo)
	if entity.TxnType(txnType) == entity.TxnMerchant {
		result.CommissionPaidOut = entity.KoboToNaira(commissionKobo)
	}
	return result, nil
}

// ActiveUserAnalytics lists users of one type seen in a login window.
type ActiveUserAnalytics struct {
	Users     []entity.Dashboard `json:"users"`
	UserCount int                `json:"userCount"`
}

// ActiveUsersByDateRange reports login activity. Owner only.
func (u *UseCase) ActiveUsersByDateRange(ctx context.Context, claims entity.AuthClaims, userType string, from, to time.Time) (*ActiveUserAnalytics, error) {
	if !claims.IsOwner() {
		return nil, errs.ErrUnauthorizedUser
	}
	if !entity.IsValidUserType(userType) {
		return nil, fmt.Errorf("%w: unknown user type %q", errs.ErrValidation, userType)
	}

	users, err := u.userRepo.ListByTypeAndLastLogin(ctx, entity.UserType(userType), from, to)
	if err != nil {
		return nil, err
	}

	result := &ActiveUserAnalytics{Users: make([]entity.Dashboard, 0, len(users))}
	for _, usr := range users {
		result.Users = append(result.Users, usr.ToDashboard())
	}
	result.UserCount = len(users)
	return result, nil
}

// parseOptionalNaira treats absent breakdown fields as zero; malformed
// stored values are skipped rather than failing a whole report.
func parseOptionalNaira(s string) int64 {
	if s == "" {
		return 0
	}
	kobo, err := entity.ParseNaira(s)
	if err != nil {
		return 0
	}
	return kobo
}
