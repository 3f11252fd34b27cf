package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/persistence"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/model"
)

// TicketRepository implements TicketRepository using GORM.
type TicketRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTicketRepository creates a new TicketRepository instance
func NewTicketRepository(db *gorm.DB, logger coreport.Logger) persistence.TicketRepository {
	return &TicketRepository{db: db, logger: logger}
}

func ticketToModel(t *entity.Ticket) model.Ticket {
	comments := t.Comments
	if comments == nil {
		comments = []entity.TicketComment{}
	}
	return model.Ticket{
		TicketID:  t.TicketID,
		Email:     t.Email,
		UserType:  string(t.UserType),
		Details:   t.Details,
		Status:    string(t.Status),
		Comments:  comments,
		CreatedAt: t.CreatedAt,
	}
}

func ticketToEntity(m *model.Ticket) *entity.Ticket {
	t := &entity.Ticket{
		TicketID:  m.TicketID,
		Email:     m.Email,
		UserType:  entity.UserType(m.UserType),
		Details:   m.Details,
		Status:    entity.TicketStatus(m.Status),
		Comments:  m.Comments,
		CreatedAt: m.CreatedAt,
	}
	if t.Comments == nil {
		t.Comments = []entity.TicketComment{}
	}
	return t
}

// Create inserts a new ticket.
func (r *TicketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	m := ticketToModel(ticket)
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		return r.storeError("creating ticket", ticket.TicketID, result.Error)
	}
	return nil
}

// GetByID retrieves a ticket.
func (r *TicketRepository) GetByID(ctx context.Context, ticketID string) (*entity.Ticket, error) {
	var m model.Ticket
	result := r.db.WithContext(ctx).First(&m, "ticket_id = ?", ticketID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTicketNotFound
		}
		return nil, r.storeError("getting ticket", ticketID, result.Error)
	}
	return ticketToEntity(&m), nil
}

// List returns all tickets, newest first.
func (r *TicketRepository) List(ctx context.Context) ([]*entity.Ticket, error) {
	var models []model.Ticket
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, r.storeError("listing tickets", "", result.Error)
	}
	tickets := make([]*entity.Ticket, 0, len(models))
	for i := range models {
		tickets = append(tickets, ticketToEntity(&models[i]))
	}
	return tickets, nil
}

// UpdateStatus moves a ticket through its workflow.
func (r *TicketRepository) UpdateStatus(ctx context.Context, ticketID string, status entity.TicketStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("ticket_id = ?", ticketID).
		Update("status", string(status))
	if result.Error != nil {
		return r.storeError("updating ticket status", ticketID, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTicketNotFound
	}
	return nil
}

// AppendComment adds a correspondence entry to the ticket.
func (r *TicketRepository) AppendComment(ctx context.Context, ticketID string, comment entity.TicketComment) error {
	ticket, err := r.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}

	comments := append(ticket.Comments, comment)
	result := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("ticket_id = ?", ticketID).
		Select("comments").
		Updates(model.Ticket{Comments: comments})
	if result.Error != nil {
		return r.storeError("appending ticket comment", ticketID, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTicketNotFound
	}
	return nil
}

// Count returns the number of stored tickets.
func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Ticket{}).Count(&count)
	if result.Error != nil {
		return 0, r.storeError("counting tickets", "", result.Error)
	}
	return count, nil
}

func (r *TicketRepository) storeError(operation, key string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"key":   key,
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
}
