package entity

import "time"

// AuthClaims is the decoded claim set supplied by the identity provider.
// Signature verification happens upstream; the API only reads the claims
// and rejects expired sessions.
type AuthClaims struct {
	Email       string
	PhoneNumber string
	UserType    UserType
	FirstName   string
	LastName    string
	ExpiresAt   time.Time
}

// Expired reports whether the session has passed its expiry.
func (c AuthClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// CanManageUsers reports whether the claims grant admin-surface access.
func (c AuthClaims) CanManageUsers() bool {
	return c.UserType == TypeAdmin || c.UserType == TypeOwner
}

// IsOwner reports whether the claims belong to a platform owner.
func (c AuthClaims) IsOwner() bool {
	return c.UserType == TypeOwner
}
