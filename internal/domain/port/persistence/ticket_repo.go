package persistence

import (
	"context"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
)

// TicketRepository persists support tickets.
type TicketRepository interface {
	// Create inserts a new ticket.
	Create(ctx context.Context, ticket *entity.Ticket) error

	// GetByID retrieves a ticket.
	//
	// Possible errors:
	// - ErrTicketNotFound: no ticket with this ID
	GetByID(ctx context.Context, ticketID string) (*entity.Ticket, error)

	// List returns all tickets, newest first.
	List(ctx context.Context) ([]*entity.Ticket, error)

	// UpdateStatus moves a ticket through its workflow.
	UpdateStatus(ctx context.Context, ticketID string, status entity.TicketStatus) error

	// AppendComment adds a correspondence entry to the ticket.
	AppendComment(ctx context.Context, ticketID string, comment entity.TicketComment) error

	// Count returns the number of stored tickets; ticket IDs are derived
	// from it.
	Count(ctx context.Context) (int64, error)
}
