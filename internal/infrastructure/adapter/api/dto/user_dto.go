package dto

// AddMeterRequest links a meter to the authenticated account.
type AddMeterRequest struct {
	MeterName     string `json:"meterName"`
	MeterNumber   string `json:"meterNumber" binding:"required"`
	MeterType     string `json:"meterType"`
	MeterLocation string `json:"meterLocation"`
}

// RemoveMeterRequest unlinks a meter by number.
type RemoveMeterRequest struct {
	MeterNumber string `json:"meterNumber" binding:"required"`
}

// TicketRequest files a support ticket.
type TicketRequest struct {
	Details string `json:"details" binding:"required"`
}

// TicketResponse returns the assigned ticket ID.
type TicketResponse struct {
	TicketID string `json:"ticketID"`
	Message  string `json:"message"`
}

// MessageResponse is a generic acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}
