package ticket

import (
	"context"
	"fmt"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/persistence"
)

// UseCase handles the support ticket workflow.
type UseCase struct {
	ticketRepo   persistence.TicketRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates the ticket use case.
func NewUseCase(ticketRepo persistence.TicketRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *UseCase {
	return &UseCase{
		ticketRepo:   ticketRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Submit files a new support ticket and returns its ID.
func (u *UseCase) Submit(ctx context.Context, claims entity.AuthClaims, details string) (string, error) {
	count, err := u.ticketRepo.Count(ctx)
	if err != nil {
		return "", err
	}

	t, err := entity.NewTicket(count+1, claims.Email, claims.UserType, details, u.timeProvider.Now())
	if err != nil {
		return "", err
	}
	if err := u.ticketRepo.Create(ctx, t); err != nil {
		return "", err
	}

	u.logger.Info("Support ticket submitted", map[string]any{
		"ticket_id": t.TicketID,
		"email":     t.Email,
	})
	return t.TicketID, nil
}

// List returns all tickets. Admin surface only.
func (u *UseCase) List(ctx context.Context, claims entity.AuthClaims) ([]*entity.Ticket, error) {
	if !claims.CanManageUsers() {
		return nil, errs.ErrUnauthorizedUser
	}
	return u.ticketRepo.List(ctx)
}

// UpdateStatus moves a ticket through its workflow. Admin surface only.
func (u *UseCase) UpdateStatus(ctx context.Context, claims entity.AuthClaims, ticketID, status string) error {
	if !claims.CanManageUsers() {
		return errs.ErrUnauthorizedUser
	}
	if !entity.IsValidTicketStatus(status) {
		return fmt.Errorf("%w: unknown ticket status %q", errs.ErrValidation, status)
	}
	return u.ticketRepo.UpdateStatus(ctx, ticketID, entity.TicketStatus(status))
}

// AddComment appends correspondence to a ticket. Admin surface only.
func (u *UseCase) AddComment(ctx context.Context, claims entity.AuthClaims, ticketID, comment string) error {
	if !claims.CanManageUsers() {
		return errs.ErrUnauthorizedUser
	}
	if comment == "" {
		return errs.ErrValidation
	}
	return u.ticketRepo.AppendComment(ctx, ticketID, entity.TicketComment{
		Author:  claims.Email,
		Comment: comment,
		At:      u.timeProvider.Now(),
	})
}
