package vending

import (
	"context"
	"math/rand"
	"strconv"

	"github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/gateway"
)

// StubVendor issues placeholder vending tokens until the disco
// integration goes live. Tokens are 12 random digits grouped in threes,
// matching the shape of real STS credit tokens.
type StubVendor struct {
	logger core.Logger
}

// NewStubVendor creates the stub token vendor.
func NewStubVendor(logger core.Logger) gateway.TokenVendor {
	return &StubVendor{logger: logger}
}

// VendToken returns a random token for the meter.
func (v *StubVendor) VendToken(ctx context.Context, meterNumber, meterType string, unitsKobo int64) (string, error) {
	token := ""
	for i := 0; i < 4; i++ {
		if i > 0 {
			token += "-"
		}
		token += strconv.Itoa(100 + rand.Intn(900))
	}

	v.logger.Debug("Vending token issued", map[string]any{
		"meter_number": meterNumber,
		"meter_type":   meterType,
		"units_kobo":   unitsKobo,
	})
	return token, nil
}
