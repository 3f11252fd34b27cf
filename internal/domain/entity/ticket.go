package entity

import (
	"fmt"
	"time"

	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
)

// TicketStatus tracks a support ticket through its workflow.
type TicketStatus string

// Ticket statuses
const (
	TicketNew        TicketStatus = "NEW"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketDone       TicketStatus = "DONE"
)

// IsValidTicketStatus reports whether s is an accepted ticket status.
func IsValidTicketStatus(s string) bool {
	switch TicketStatus(s) {
	case TicketNew, TicketInProgress, TicketDone:
		return true
	}
	return false
}

// TicketComment is a single support-correspondence entry on a ticket.
type TicketComment struct {
	Author  string    `json:"author"`
	Comment string    `json:"comment"`
	At      time.Time `json:"at"`
}

// Ticket is a customer support request.
type Ticket struct {
	TicketID  string
	Email     string
	UserType  UserType
	Details   string
	Status    TicketStatus
	Comments  []TicketComment
	CreatedAt time.Time
}

// TicketIDPrefix is prepended to the ticket sequence number.
const TicketIDPrefix = "PST-"

// NewTicket creates a ticket in NEW status with the next sequence ID.
func NewTicket(sequence int64, email string, userType UserType, details string, now time.Time) (*Ticket, error) {
	if email == "" || details == "" {
		return nil, errs.ErrValidation
	}
	return &Ticket{
		TicketID:  fmt.Sprintf("%s%d", TicketIDPrefix, sequence),
		Email:     email,
		UserType:  userType,
		Details:   details,
		Status:    TicketNew,
		Comments:  []TicketComment{},
		CreatedAt: now,
	}, nil
}
