package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
)

func testFeeSchedule() FeeSchedule {
	return FeeSchedule{
		ServiceFeeKobo:             10000,  // ₦100 flat
		PlatformRateBps:            150,    // 1.5%
		PlatformSurchargeKobo:      10000,  // ₦100
		PlatformSurchargeFloorKobo: 250000, // above ₦2500
		CommissionRateBps:          100,    // 1%
	}
}

func TestPlatformFee(t *testing.T) {
	fees := testFeeSchedule()

	t.Run("Rate only below surcharge floor", func(t *testing.T) {
		// ₦1000 -> 1.5% = ₦15
		assert.Equal(t, int64(1500), fees.PlatformFee(100000))
		// Exactly at the floor still avoids the surcharge
		assert.Equal(t, int64(3750), fees.PlatformFee(250000))
	})

	t.Run("Surcharge applies above floor", func(t *testing.T) {
		// ₦3000 -> 1.5% = ₦45 plus ₦100 surcharge
		assert.Equal(t, int64(14500), fees.PlatformFee(300000))
	})
}

func TestCommission(t *testing.T) {
	fees := testFeeSchedule()
	// ₦1000 at 1% = ₦10
	assert.Equal(t, int64(1000), fees.Commission(100000))
	assert.Equal(t, int64(0), fees.Commission(0))
}

func TestNetUnits(t *testing.T) {
	fees := testFeeSchedule()

	t.Run("Money is conserved", func(t *testing.T) {
		amount := int64(100000)
		serviceFee := fees.ServiceFee(amount)
		platformFee := fees.PlatformFee(amount)

		units, err := fees.NetUnits(amount, serviceFee, platformFee)
		assert.NoError(t, err)
		assert.Equal(t, int64(88500), units)
		assert.Equal(t, amount, units+serviceFee+platformFee)
	})

	t.Run("Zero units is valid", func(t *testing.T) {
		units, err := fees.NetUnits(11500, 10000, 1500)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), units)
	})

	t.Run("Fees exceeding amount fail settlement", func(t *testing.T) {
		_, err := fees.NetUnits(5000, 10000, 1500)
		assert.ErrorIs(t, err, errs.ErrFeeExceedsAmount)
	})
}
