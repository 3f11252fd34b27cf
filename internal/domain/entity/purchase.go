package entity

import (
	"time"

	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
)

// PurchaseStatus is the lifecycle marker of a purchase record. It
// transitions exactly once, Initialized -> Confirmed, never back.
type PurchaseStatus string

// Purchase statuses
const (
	StatusInitialized PurchaseStatus = "Initialized"
	StatusConfirmed   PurchaseStatus = "Confirmed"
)

// TxnType selects the fee and commission rules applied at settlement.
type TxnType string

// Transaction types
const (
	// TxnSimple is a direct unit purchase paid through the gateway.
	TxnSimple TxnType = "Simple"
	// TxnWallet is a wallet transaction: a fund when paid through the
	// gateway, a unit purchase when paid from balance.
	TxnWallet TxnType = "Wallet"
	// TxnMerchant is a wallet-funded resale by a merchant to an end
	// customer, earning commission.
	TxnMerchant TxnType = "Merchant"
	// TxnPublic is a guest checkout, settled under the Simple rules.
	TxnPublic TxnType = "Public"
)

// IsValidTxnType reports whether s is an accepted transaction type.
func IsValidTxnType(s string) bool {
	switch TxnType(s) {
	case TxnSimple, TxnWallet, TxnMerchant, TxnPublic:
		return true
	}
	return false
}

// Purchase represents one settled or in-flight transaction. The gross
// amount is carried in kobo for arithmetic; the derived financial
// breakdown is stored as naira strings, empty when not applicable to the
// transaction type.
type Purchase struct {
	PurchaseID  string // gateway transaction reference, immutable
	Status      PurchaseStatus
	TxnType     TxnType
	Email       string
	PhoneNumber string

	AmountKobo int64

	// Derived at confirmation, never recomputed.
	Units        string
	ServiceFee   string
	PlatformFees string
	Commission   string
	Token        string

	MeterNumber string
	MeterType   string
	Location    string

	// Merchant resale context.
	CustomerName    string
	CustomerContact string

	PaymentMethod string
	// WalletBalance is the resulting balance recorded on wallet fund
	// transactions.
	WalletBalance string

	PurchaseDate time.Time
	CreatedAt    time.Time
}

// NewInitializedPurchase creates the pre-gateway audit record for a
// payment. Everything known at initialization is persisted before the
// gateway is contacted.
func NewInitializedPurchase(reference, email, phoneNumber string, amountKobo int64, txnType TxnType, meterNumber, meterType, location, platform string, now time.Time) (*Purchase, error) {
	if reference == "" {
		return nil, errs.ErrInvalidReference
	}
	if amountKobo <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if !IsValidTxnType(string(txnType)) {
		return nil, errs.ErrValidation
	}

	return &Purchase{
		PurchaseID:    reference,
		Status:        StatusInitialized,
		TxnType:       txnType,
		Email:         email,
		PhoneNumber:   phoneNumber,
		AmountKobo:    amountKobo,
		MeterNumber:   meterNumber,
		MeterType:     meterType,
		Location:      location,
		PaymentMethod: platform,
		CreatedAt:     now,
	}, nil
}

// Amount returns the gross amount as a naira string.
func (p *Purchase) Amount() string {
	return KoboToNaira(p.AmountKobo)
}

// IsConfirmed reports whether the purchase has been settled.
func (p *Purchase) IsConfirmed() bool {
	return p.Status == StatusConfirmed
}

// VendsUnits reports whether this transaction type produces electricity
// units at gateway confirmation. Wallet funds do not; the full amount is
// credited to the balance verbatim.
func (p *Purchase) VendsUnits() bool {
	return p.TxnType == TxnSimple || p.TxnType == TxnPublic
}

// Receipt is the client-facing rendering of a purchase record. Monetary
// fields are strings so no decimal precision is lost in JSON.
type Receipt struct {
	PurchaseID      string `json:"purchaseID"`
	Status          string `json:"status"`
	TxnType         string `json:"txnType"`
	Email           string `json:"email,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	Amount          string `json:"amount"`
	Units           string `json:"units,omitempty"`
	ServiceFee      string `json:"serviceFee,omitempty"`
	PlatformFees    string `json:"platformFees,omitempty"`
	Commission      string `json:"commission,omitempty"`
	Token           string `json:"token,omitempty"`
	MeterNumber     string `json:"meterNumber,omitempty"`
	MeterType       string `json:"meterType,omitempty"`
	Location        string `json:"location,omitempty"`
	CustomerName    string `json:"customerName,omitempty"`
	CustomerContact string `json:"customerContact,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
	WalletBalance   string `json:"walletBalance,omitempty"`
	PurchaseDate    string `json:"purchaseDate,omitempty"`
}

// PurchaseDateFormat matches the timestamp format stored by the original
// vending records.
const PurchaseDateFormat = "2006-01-02 15:04"

// ToReceipt converts the purchase to its API representation.
func (p *Purchase) ToReceipt() Receipt {
	r := Receipt{
		PurchaseID:      p.PurchaseID,
		Status:          string(p.Status),
		TxnType:         string(p.TxnType),
		Email:           p.Email,
		PhoneNumber:     p.PhoneNumber,
		Amount:          p.Amount(),
		Units:           p.Units,
		ServiceFee:      p.ServiceFee,
		PlatformFees:    p.PlatformFees,
		Commission:      p.Commission,
		Token:           p.Token,
		MeterNumber:     p.MeterNumber,
		MeterType:       p.MeterType,
		Location:        p.Location,
		CustomerName:    p.CustomerName,
		CustomerContact: p.CustomerContact,
		PaymentMethod:   p.PaymentMethod,
		WalletBalance:   p.WalletBalance,
	}
	if !p.PurchaseDate.IsZero() {
		r.PurchaseDate = p.PurchaseDate.Format(PurchaseDateFormat)
	}
	return r
}
