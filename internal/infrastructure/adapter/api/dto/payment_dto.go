package dto

// InitPayRequest opens a hosted payment session. Amounts are naira
// strings with at most two decimal places.
type InitPayRequest struct {
	Amount      string `json:"amount" binding:"required"`
	TxnType     string `json:"txType" binding:"required"`
	MeterNumber string `json:"meterNumber"`
	MeterType   string `json:"meterType"`
	Location    string `json:"location"`
	Platform    string `json:"platform"`
	// Email overrides the authenticated identity for guest checkouts.
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// InitPayResponse carries the gateway redirect back to the client.
type InitPayResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
	TxnRef           string `json:"txnRef"`
}

// WalletPayRequest settles a unit purchase from the wallet balance.
// Customer fields are only meaningful for merchant resales.
type WalletPayRequest struct {
	Amount          string `json:"amount" binding:"required"`
	MeterNumber     string `json:"meterNumber" binding:"required"`
	MeterType       string `json:"meterType"`
	Location        string `json:"location"`
	CustomerName    string `json:"customerName"`
	CustomerContact string `json:"customerContact"`
}
