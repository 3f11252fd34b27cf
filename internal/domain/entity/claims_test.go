package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClaimsExpired(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	assert.False(t, AuthClaims{ExpiresAt: now.Add(time.Hour)}.Expired(now))
	assert.True(t, AuthClaims{ExpiresAt: now.Add(-time.Second)}.Expired(now))

	// Tokens without an expiry claim never expire here; the provider
	// enforces its own lifetime upstream.
	assert.False(t, AuthClaims{}.Expired(now))
}

func TestClaimsRoles(t *testing.T) {
	assert.True(t, AuthClaims{UserType: TypeAdmin}.CanManageUsers())
	assert.True(t, AuthClaims{UserType: TypeOwner}.CanManageUsers())
	assert.False(t, AuthClaims{UserType: TypeMerchant}.CanManageUsers())
	assert.False(t, AuthClaims{UserType: TypeRegular}.CanManageUsers())

	assert.True(t, AuthClaims{UserType: TypeOwner}.IsOwner())
	assert.False(t, AuthClaims{UserType: TypeAdmin}.IsOwner())
}
