package payment

import (
	"fmt"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
)

// Request payloads are validated before any domain logic runs so a
// malformed request can never reach the store or the gateway.

func validateInitializeRequest(req InitializePaymentRequest) error {
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", errs.ErrValidation)
	}
	if req.AmountKobo <= 0 {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	if !entity.IsValidTxnType(string(req.TxnType)) {
		return fmt.Errorf("%w: unknown transaction type %q", errs.ErrValidation, string(req.TxnType))
	}
	if req.TxnType != entity.TxnWallet && req.MeterNumber == "" {
		return fmt.Errorf("%w: meter number is required for unit purchases", errs.ErrValidation)
	}
	return nil
}

func validateWalletPayRequest(req PayWithWalletRequest) error {
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", errs.ErrValidation)
	}
	if req.AmountKobo <= 0 {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	if req.MeterNumber == "" {
		return fmt.Errorf("%w: meter number is required", errs.ErrValidation)
	}
	return nil
}
