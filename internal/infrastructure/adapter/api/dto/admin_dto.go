package dto

// UserStatusRequest activates or deactivates an account.
type UserStatusRequest struct {
	UserEmail string `json:"user_email" binding:"required"`
	Active    *bool  `json:"active" binding:"required"`
}

// TicketStatusRequest moves a ticket through its workflow.
type TicketStatusRequest struct {
	TicketID string `json:"ticketID" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

// TicketCommentRequest appends correspondence to a ticket.
type TicketCommentRequest struct {
	TicketID string `json:"ticketID" binding:"required"`
	Comment  string `json:"comment" binding:"required"`
}

// AnalyticsRequest selects a category and a date window. Dates use the
// 2006-01-02 layout.
type AnalyticsRequest struct {
	Type      string `json:"type" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}
