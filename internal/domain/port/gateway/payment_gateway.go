package gateway

import "context"

// ChargeRequest initiates a hosted payment session. Amounts are in kobo,
// the gateway's minor currency unit.
type ChargeRequest struct {
	Email       string
	AmountKobo  int64
	Reference   string
	CallbackURL string
	Metadata    ChargeMetadata
}

// ChargeMetadata is carried through the gateway and echoed back on
// verification.
type ChargeMetadata struct {
	PhoneNumber string `json:"phone_number"`
	TxnType     string `json:"tx_type"`
	Platform    string `json:"platform"`
	MeterNumber string `json:"meter_number"`
	MeterType   string `json:"meter_type"`
	Location    string `json:"location"`
}

// ChargeSession is the hosted-payment redirect returned at initialization.
type ChargeSession struct {
	AuthorizationURL string
	Reference        string
}

// ChargeVerification is the gateway's authoritative record of a
// transaction, retrieved at confirmation time. The stored purchase is
// finalized from these values, never from client input.
type ChargeVerification struct {
	Status          string
	AmountKobo      int64
	FeesKobo        int64
	TransactionDate string
	CustomerEmail   string
	Metadata        ChargeMetadata
}

// Success reports whether the gateway settled the charge.
func (v *ChargeVerification) Success() bool {
	return v.Status == "success"
}

// PaymentGateway initiates hosted payment sessions and retrieves the
// authoritative status of a transaction reference.
type PaymentGateway interface {
	// InitializeCharge opens a hosted payment session and returns the
	// authorization URL the payer is redirected to.
	//
	// Possible errors:
	// - ErrGatewayUnavailable: the gateway is unreachable or returned a
	//   malformed response
	InitializeCharge(ctx context.Context, req ChargeRequest) (*ChargeSession, error)

	// VerifyCharge fetches the authoritative status, amount and fees for
	// a reference.
	//
	// Possible errors:
	// - ErrGatewayUnavailable: the gateway is unreachable or returned a
	//   malformed response
	VerifyCharge(ctx context.Context, reference string) (*ChargeVerification, error)
}
