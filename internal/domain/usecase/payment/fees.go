package payment

import (
	"fmt"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
)

// FeeSchedule computes the financial breakdown of a transaction. Pure and
// stateless; all values are kobo. Rates are basis points so the schedule
// stays integer arithmetic end to end.
type FeeSchedule struct {
	// ServiceFeeKobo is the flat platform service fee taken out of every
	// unit-vending transaction.
	ServiceFeeKobo int64
	// PlatformRateBps is the local equivalent of the gateway's processing
	// fee, applied to wallet-funded purchases where no gateway is involved.
	PlatformRateBps int64
	// PlatformSurchargeKobo is added on top of the rate once the gross
	// amount exceeds PlatformSurchargeFloorKobo, mirroring the gateway's
	// published schedule.
	PlatformSurchargeKobo      int64
	PlatformSurchargeFloorKobo int64
	// CommissionRateBps is the merchant resale commission, applied to the
	// gross amount.
	CommissionRateBps int64
}

// ServiceFee returns the flat service fee for a unit-vending transaction.
// The amount parameter is kept for schedule changes that scale with it.
func (f FeeSchedule) ServiceFee(amountKobo int64) int64 {
	return f.ServiceFeeKobo
}

// PlatformFee returns the locally computed processing fee for a
// wallet-funded purchase. Gateway-paid transactions use the fee the
// gateway reports instead.
func (f FeeSchedule) PlatformFee(amountKobo int64) int64 {
	fee := amountKobo * f.PlatformRateBps / 10000
	if amountKobo > f.PlatformSurchargeFloorKobo {
		fee += f.PlatformSurchargeKobo
	}
	return fee
}

// Commission returns the merchant commission on a gross amount.
func (f FeeSchedule) Commission(amountKobo int64) int64 {
	return amountKobo * f.CommissionRateBps / 10000
}

// NetUnits returns the vendable unit amount after fees. A negative
// result means the fee schedule is misconfigured for this amount and the
// settlement must fail rather than underflow.
func (f FeeSchedule) NetUnits(amountKobo, serviceFeeKobo, platformFeeKobo int64) (int64, error) {
	units := amountKobo - serviceFeeKobo - platformFeeKobo
	if units < 0 {
		return 0, fmt.Errorf("%w: amount %s, service fee %s, platform fee %s",
			errs.ErrFeeExceedsAmount,
			entity.KoboToNaira(amountKobo),
			entity.KoboToNaira(serviceFeeKobo),
			entity.KoboToNaira(platformFeeKobo))
	}
	return units, nil
}
