package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	gwport "github.com/powerstack-ng/powerstack-api/internal/domain/port/gateway"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/persistence"
)

// Service is the settlement engine. It orchestrates payment
// initialization, gateway confirmation and wallet-funded purchases, and
// owns the idempotency and money-conservation guarantees.
//
// The ledger store has no multi-item transactions, so every flow is
// built from single-item conditional writes in a deliberate order:
//
//   - ConfirmPayment claims the record first (the conditional
//     Initialized -> Confirmed transition is the exactly-once point),
//     then applies the wallet credit. A credit failure after a won claim
//     is logged for manual reconciliation, never retried into a double
//     credit.
//   - PayWithWallet debits first, then inserts the confirmed record. A
//     record-insert failure after a successful debit is logged with full
//     context; no automatic refund is attempted.
type Service struct {
	purchaseRepo persistence.PurchaseRepository
	userRepo     persistence.UserRepository
	gateway      gwport.PaymentGateway
	vendor       gwport.TokenVendor
	balances     *BalanceManager
	fees         FeeSchedule
	refs         coreport.ReferenceGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	// callbackBase is the public URL prefix the gateway redirects payers
	// to after a hosted checkout.
	callbackBase string
}

// NewService wires the settlement engine.
func NewService(
	purchaseRepo persistence.PurchaseRepository,
	userRepo persistence.UserRepository,
	gw gwport.PaymentGateway,
	vendor gwport.TokenVendor,
	balances *BalanceManager,
	fees FeeSchedule,
	refs coreport.ReferenceGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	callbackBase string,
) *Service {
	return &Service{
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		gateway:      gw,
		vendor:       vendor,
		balances:     balances,
		fees:         fees,
		refs:         refs,
		timeProvider: timeProvider,
		logger:       logger,
		callbackBase: callbackBase,
	}
}

// InitializePaymentRequest carries everything needed to open a hosted
// payment session. Amounts are kobo, as the gateway expects.
type InitializePaymentRequest struct {
	Email       string
	PhoneNumber string
	AmountKobo  int64
	TxnType     entity.TxnType
	Platform    string
	MeterNumber string
	MeterType   string
	Location    string
}

// InitializePaymentResult is returned to the client, which redirects the
// payer to the authorization URL.
type InitializePaymentResult struct {
	AuthorizationURL string
	Reference        string
}

// InitializePayment generates a fresh transaction reference, persists an
// Initialized purchase record with all request metadata, then asks the
// gateway for a hosted checkout session. The record is written before
// the gateway call so a crash mid-initialization stays auditable; a
// gateway failure leaves it behind for manual reconciliation.
func (s *Service) InitializePayment(ctx context.Context, req InitializePaymentRequest) (*InitializePaymentResult, error) {
	if err := validateInitializeRequest(req); err != nil {
		return nil, err
	}

	reference := s.refs.NewReference()
	purchase, err := entity.NewInitializedPurchase(
		reference,
		req.Email,
		req.PhoneNumber,
		req.AmountKobo,
		req.TxnType,
		req.MeterNumber,
		req.MeterType,
		req.Location,
		req.Platform,
		s.timeProvider.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	session, err := s.gateway.InitializeCharge(ctx, gwport.ChargeRequest{
		Email:       req.Email,
		AmountKobo:  req.AmountKobo,
		Reference:   reference,
		CallbackURL: fmt.Sprintf("%s/receipt/%s?confirm=true", s.callbackBase, reference),
		Metadata: gwport.ChargeMetadata{
			PhoneNumber: req.PhoneNumber,
			TxnType:     string(req.TxnType),
			Platform:    req.Platform,
			MeterNumber: req.MeterNumber,
			MeterType:   req.MeterType,
			Location:    req.Location,
		},
	})
	if err != nil {
		s.logger.Error("Gateway initialization failed, Initialized record kept for reconciliation", map[string]any{
			"reference": reference,
			"email":     req.Email,
			"amount":    entity.KoboToNaira(req.AmountKobo),
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Payment initialized", map[string]any{
		"reference": reference,
		"email":     req.Email,
		"txn_type":  string(req.TxnType),
		"amount":    entity.KoboToNaira(req.AmountKobo),
	})

	return &InitializePaymentResult{
		AuthorizationURL: session.AuthorizationURL,
		Reference:        session.Reference,
	}, nil
}

// ConfirmPayment settles a gateway transaction exactly once. Safe to call
// any number of times, sequentially or concurrently: an already-confirmed
// reference returns the stored record unchanged, and concurrent callers
// race on a conditional status transition that only one can win.
func (s *Service) ConfirmPayment(ctx context.Context, reference string) (*entity.Purchase, error) {
	if reference == "" {
		return nil, fmt.Errorf("%w: missing transaction reference", errs.ErrValidation)
	}

	verification, err := s.gateway.VerifyCharge(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !verification.Success() {
		return nil, errs.NewPaymentNotSuccessfulError(reference, verification.Status)
	}

	stored, err := s.purchaseRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if stored.IsConfirmed() {
		s.logger.Info("Confirmation replayed, returning stored record", map[string]any{
			"reference": reference,
		})
		return stored, nil
	}

	finalized := s.finalizeFromGateway(stored, verification)

	// Resolve the wallet owner before claiming so a missing user leaves
	// the record Initialized and reconcilable.
	var fundUser *entity.User
	if finalized.TxnType == entity.TxnWallet {
		fundUser, err = s.userRepo.GetByEmail(ctx, finalized.Email)
		if err != nil {
			return nil, err
		}
	} else if finalized.VendsUnits() {
		if err := s.applyVendingBreakdown(ctx, finalized, verification); err != nil {
			return nil, err
		}
	}

	// The settlement point: conditional on status still being
	// Initialized. Exactly one concurrent caller gets past this line.
	if err := s.purchaseRepo.Confirm(ctx, finalized); err != nil {
		if errors.Is(err, errs.ErrAlreadyConfirmed) {
			winner, readErr := s.purchaseRepo.GetByReference(ctx, reference)
			if readErr != nil {
				return nil, readErr
			}
			s.logger.Info("Lost confirmation race, returning winner's record", map[string]any{
				"reference": reference,
			})
			return winner, nil
		}
		return nil, err
	}

	if fundUser != nil {
		newBalance, err := s.balances.AdjustBalance(ctx, fundUser.UserID, finalized.AmountKobo)
		if err != nil {
			s.logger.Error("Wallet credit failed after settlement claim, manual reconciliation required", map[string]any{
				"reference": reference,
				"user_id":   fundUser.UserID,
				"email":     finalized.Email,
				"amount":    finalized.Amount(),
				"error":     err.Error(),
			})
			return nil, err
		}
		finalized.WalletBalance = entity.KoboToNaira(newBalance)
		if err := s.purchaseRepo.SetWalletBalance(ctx, reference, finalized.WalletBalance); err != nil {
			s.logger.Warn("Failed to record post-credit balance on purchase", map[string]any{
				"reference": reference,
				"error":     err.Error(),
			})
		}
	}

	s.logger.Info("Payment confirmed", map[string]any{
		"reference": reference,
		"txn_type":  string(finalized.TxnType),
		"amount":    finalized.Amount(),
	})
	return finalized, nil
}

// finalizeFromGateway merges the stored Initialized record with the
// gateway's authoritative amount, fees and customer identity.
func (s *Service) finalizeFromGateway(stored *entity.Purchase, v *gwport.ChargeVerification) *entity.Purchase {
	finalized := *stored
	finalized.AmountKobo = v.AmountKobo
	finalized.PlatformFees = entity.KoboToNaira(v.FeesKobo)
	if v.CustomerEmail != "" {
		finalized.Email = v.CustomerEmail
	}
	if v.Metadata.PhoneNumber != "" {
		finalized.PhoneNumber = v.Metadata.PhoneNumber
	}
	finalized.PurchaseDate = s.parseGatewayDate(v.TransactionDate)
	finalized.Status = entity.StatusConfirmed
	return &finalized
}

// applyVendingBreakdown computes the fee split for a unit purchase from
// the gateway-reported values and obtains a vending token.
func (s *Service) applyVendingBreakdown(ctx context.Context, p *entity.Purchase, v *gwport.ChargeVerification) error {
	serviceFee := s.fees.ServiceFee(v.AmountKobo)
	units, err := s.fees.NetUnits(v.AmountKobo, serviceFee, v.FeesKobo)
	if err != nil {
		s.logger.Error("Fee schedule rejected settlement", map[string]any{
			"reference": p.PurchaseID,
			"amount":    entity.KoboToNaira(v.AmountKobo),
			"fees":      entity.KoboToNaira(v.FeesKobo),
			"error":     err.Error(),
		})
		return err
	}

	token, err := s.vendor.VendToken(ctx, p.MeterNumber, p.MeterType, units)
	if err != nil {
		return err
	}

	p.Units = entity.KoboToNaira(units)
	p.ServiceFee = entity.KoboToNaira(serviceFee)
	p.Token = token
	return nil
}

func (s *Service) parseGatewayDate(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z", entity.PurchaseDateFormat} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return s.timeProvider.Now()
}

// PayWithWalletRequest is a purchase funded from the wallet balance.
// Customer fields are only meaningful for merchant resales.
type PayWithWalletRequest struct {
	Email           string
	PhoneNumber     string
	AmountKobo      int64
	MeterNumber     string
	MeterType       string
	Location        string
	CustomerName    string
	CustomerContact string
}

// PayWithWallet settles a unit purchase against the wallet balance. The
// operation is self-contained: funds are already held, so the record is
// written directly in Confirmed status with no Initialized phase.
//
// Ordering: debit first, then insert the record. The debit goes through
// the balance manager's compare-and-set, so a concurrent spend of the
// same funds produces exactly one winner; the loser fails with
// InsufficientBalance on its re-read.
func (s *Service) PayWithWallet(ctx context.Context, req PayWithWalletRequest) (*entity.Purchase, error) {
	if err := validateWalletPayRequest(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	// Pre-check so an obviously short balance never reaches the store.
	// The compare-and-set below re-validates under concurrency.
	if !user.CanDebit(req.AmountKobo) {
		return nil, errs.NewInsufficientBalanceError(user.UserID, entity.KoboToNaira(req.AmountKobo), user.WalletBalance())
	}

	serviceFee := s.fees.ServiceFee(req.AmountKobo)
	platformFee := s.fees.PlatformFee(req.AmountKobo)
	units, err := s.fees.NetUnits(req.AmountKobo, serviceFee, platformFee)
	if err != nil {
		return nil, err
	}

	token, err := s.vendor.VendToken(ctx, req.MeterNumber, req.MeterType, units)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	purchase := &entity.Purchase{
		PurchaseID:   s.refs.NewReference(),
		Status:       entity.StatusConfirmed,
		TxnType:      entity.TxnWallet,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		AmountKobo:   req.AmountKobo,
		Units:        entity.KoboToNaira(units),
		ServiceFee:   entity.KoboToNaira(serviceFee),
		PlatformFees: entity.KoboToNaira(platformFee),
		Token:        token,
		MeterNumber:  req.MeterNumber,
		MeterType:    req.MeterType,
		Location:     req.Location,
		PurchaseDate: now,
		CreatedAt:    now,
	}

	debit := -req.AmountKobo
	if user.IsMerchant() {
		// Merchant resale: commission stays in the wallet as payment, so
		// the net debit is amount - commission.
		commission := s.fees.Commission(req.AmountKobo)
		debit += commission

		purchase.TxnType = entity.TxnMerchant
		purchase.Commission = entity.KoboToNaira(commission)
		purchase.CustomerName = req.CustomerName
		purchase.CustomerContact = req.CustomerContact
		purchase.PaymentMethod = "MERCHANT"
	}

	newBalance, err := s.balances.AdjustBalance(ctx, user.UserID, debit)
	if err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		if errors.Is(err, errs.ErrDuplicatePurchase) {
			existing, readErr := s.purchaseRepo.GetByReference(ctx, purchase.PurchaseID)
			if readErr != nil {
				return nil, readErr
			}
			return existing, nil
		}
		s.logger.Error("Purchase record write failed after wallet debit, manual reconciliation required", map[string]any{
			"reference":   purchase.PurchaseID,
			"user_id":     user.UserID,
			"email":       req.Email,
			"amount":      purchase.Amount(),
			"new_balance": entity.KoboToNaira(newBalance),
			"error":       err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Wallet purchase settled", map[string]any{
		"reference":   purchase.PurchaseID,
		"user_id":     user.UserID,
		"txn_type":    string(purchase.TxnType),
		"amount":      purchase.Amount(),
		"new_balance": entity.KoboToNaira(newBalance),
	})
	return purchase, nil
}
