package gateway

import "context"

// TokenVendor issues vending credentials for purchased electricity
// units. The real disco integration is external; a stub adapter stands
// in for it.
type TokenVendor interface {
	VendToken(ctx context.Context, meterNumber, meterType string, unitsKobo int64) (string, error)
}
