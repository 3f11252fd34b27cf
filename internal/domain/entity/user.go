package entity

import (
	"time"

	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
)

// UserType gates authorization decisions. Fixed at signup.
type UserType string

// User types
const (
	TypeRegular  UserType = "REGULAR"
	TypeMerchant UserType = "MERCHANT"
	TypeAdmin    UserType = "ADMIN"
	TypeOwner    UserType = "OWNER"
)

// IsValidUserType reports whether s is an accepted user type.
func IsValidUserType(s string) bool {
	switch UserType(s) {
	case TypeRegular, TypeMerchant, TypeAdmin, TypeOwner:
		return true
	}
	return false
}

// Meter describes an electricity meter linked to a user account.
type Meter struct {
	MeterName     string `json:"meterName"`
	MeterNumber   string `json:"meterNumber"`
	MeterType     string `json:"meterType"`
	MeterLocation string `json:"meterLocation"`
}

// Equal reports whether two meter descriptors match on every field.
func (m Meter) Equal(other Meter) bool {
	return m == other
}

// User represents a platform account with a prepaid wallet. The balance
// is kept in kobo and is mutated only through the wallet balance manager.
type User struct {
	UserID      string
	Email       string
	PhoneNumber string
	FirstName   string
	LastName    string
	UserType    UserType
	IsActive    bool

	walletBalanceKobo int64

	Meters    []Meter
	LastLogin time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a user record for first-time authentication. Accounts
// start active with a zero wallet balance and no meters.
func NewUser(userID, email, phoneNumber, firstName, lastName string, userType UserType, now time.Time) (*User, error) {
	if userID == "" || email == "" {
		return nil, errs.ErrValidation
	}
	if userType == "" {
		userType = TypeRegular
	}
	if !IsValidUserType(string(userType)) {
		return nil, errs.ErrValidation
	}

	return &User{
		UserID:      userID,
		Email:       email,
		PhoneNumber: phoneNumber,
		FirstName:   firstName,
		LastName:    lastName,
		UserType:    userType,
		IsActive:    true,
		Meters:      []Meter{},
		LastLogin:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// WalletBalanceKobo returns the current balance in kobo.
func (u *User) WalletBalanceKobo() int64 {
	return u.walletBalanceKobo
}

// WalletBalance returns the balance as a naira string with 2 decimal places.
func (u *User) WalletBalance() string {
	return KoboToNaira(u.walletBalanceKobo)
}

// SetWalletBalance updates the balance. For repository use only; domain
// code goes through the wallet balance manager.
func (u *User) SetWalletBalance(kobo int64, now time.Time) {
	u.walletBalanceKobo = kobo
	u.UpdatedAt = now
}

// CanDebit reports whether the wallet holds at least amountKobo.
func (u *User) CanDebit(amountKobo int64) bool {
	return u.walletBalanceKobo >= amountKobo
}

// IsMerchant reports whether the user resells units for commission.
func (u *User) IsMerchant() bool {
	return u.UserType == TypeMerchant
}

// CanManageUsers reports whether the user may access the admin surface.
func (u *User) CanManageUsers() bool {
	return u.UserType == TypeAdmin || u.UserType == TypeOwner
}

// HasMeter reports whether an identical meter descriptor is already
// linked to the account.
func (u *User) HasMeter(m Meter) bool {
	for _, stored := range u.Meters {
		if stored.Equal(m) {
			return true
		}
	}
	return false
}

// Dashboard is the client-facing rendering of a user record.
type Dashboard struct {
	UserID        string  `json:"userID"`
	Email         string  `json:"email"`
	PhoneNumber   string  `json:"phoneNumber,omitempty"`
	FirstName     string  `json:"firstName,omitempty"`
	LastName      string  `json:"lastName,omitempty"`
	UserType      string  `json:"userType"`
	IsActive      bool    `json:"isActive"`
	WalletBalance string  `json:"walletBalance"`
	Meters        []Meter `json:"meters"`
	LastLogin     string  `json:"lastLogin,omitempty"`
}

// ToDashboard converts the user to its API representation.
func (u *User) ToDashboard() Dashboard {
	d := Dashboard{
		UserID:        u.UserID,
		Email:         u.Email,
		PhoneNumber:   u.PhoneNumber,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		UserType:      string(u.UserType),
		IsActive:      u.IsActive,
		WalletBalance: u.WalletBalance(),
		Meters:        u.Meters,
	}
	if d.Meters == nil {
		d.Meters = []Meter{}
	}
	if !u.LastLogin.IsZero() {
		d.LastLogin = u.LastLogin.Format(PurchaseDateFormat)
	}
	return d
}
