package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
)

func TestNewUser(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("Creates active user with zero balance", func(t *testing.T) {
		u, err := NewUser("user-1", "user@example.com", "+2348012345678", "Ada", "Obi", TypeRegular, now)
		require.NoError(t, err)

		assert.Equal(t, "user-1", u.UserID)
		assert.Equal(t, TypeRegular, u.UserType)
		assert.True(t, u.IsActive)
		assert.Equal(t, int64(0), u.WalletBalanceKobo())
		assert.Equal(t, "0.00", u.WalletBalance())
		assert.NotNil(t, u.Meters)
		assert.Empty(t, u.Meters)
		assert.Equal(t, now, u.LastLogin)
	})

	t.Run("Defaults empty user type to regular", func(t *testing.T) {
		u, err := NewUser("user-1", "user@example.com", "", "", "", "", now)
		require.NoError(t, err)
		assert.Equal(t, TypeRegular, u.UserType)
	})

	t.Run("Rejects missing identity", func(t *testing.T) {
		_, err := NewUser("", "user@example.com", "", "", "", TypeRegular, now)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewUser("user-1", "", "", "", "", TypeRegular, now)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Rejects unknown user type", func(t *testing.T) {
		_, err := NewUser("user-1", "user@example.com", "", "", "", UserType("SUPERUSER"), now)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestWalletBalance(t *testing.T) {
	now := time.Now()
	u, err := NewUser("user-1", "user@example.com", "", "", "", TypeRegular, now)
	require.NoError(t, err)

	u.SetWalletBalance(250050, now)
	assert.Equal(t, int64(250050), u.WalletBalanceKobo())
	assert.Equal(t, "2500.50", u.WalletBalance())

	assert.True(t, u.CanDebit(250050))
	assert.True(t, u.CanDebit(100))
	assert.False(t, u.CanDebit(250051))
}

func TestUserRoles(t *testing.T) {
	testCases := []struct {
		userType   UserType
		isMerchant bool
		canManage  bool
	}{
		{TypeRegular, false, false},
		{TypeMerchant, true, false},
		{TypeAdmin, false, true},
		{TypeOwner, false, true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.userType), func(t *testing.T) {
			u := &User{UserType: tc.userType}
			assert.Equal(t, tc.isMerchant, u.IsMerchant())
			assert.Equal(t, tc.canManage, u.CanManageUsers())
		})
	}
}

func TestHasMeter(t *testing.T) {
	meter := Meter{MeterName: "Home", MeterNumber: "12345678901", MeterType: "PREPAID", MeterLocation: "Lagos"}
	u := &User{Meters: []Meter{meter}}

	assert.True(t, u.HasMeter(meter))

	// Any differing field makes it a different meter.
	other := meter
	other.MeterLocation = "Abuja"
	assert.False(t, u.HasMeter(other))

	assert.False(t, (&User{}).HasMeter(meter))
}

func TestToDashboard(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	u, err := NewUser("user-1", "user@example.com", "+2348012345678", "Ada", "Obi", TypeMerchant, now)
	require.NoError(t, err)
	u.SetWalletBalance(500000, now)

	d := u.ToDashboard()
	assert.Equal(t, "user-1", d.UserID)
	assert.Equal(t, "MERCHANT", d.UserType)
	assert.Equal(t, "5000.00", d.WalletBalance)
	assert.True(t, d.IsActive)
	assert.Equal(t, "2025-03-14 10:30", d.LastLogin)

	t.Run("Nil meters render as empty list", func(t *testing.T) {
		d := (&User{UserID: "user-2", Email: "x@example.com"}).ToDashboard()
		assert.NotNil(t, d.Meters)
		assert.Empty(t, d.Meters)
	})
}
