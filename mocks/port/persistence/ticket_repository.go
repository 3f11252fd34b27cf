// Code generated manually in mockery style. Keep in sync with the port.

package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
)

// MockTicketRepository is a mock implementation of the TicketRepository port.
type MockTicketRepository struct {
	mock.Mock
}

// NewMockTicketRepository creates a new MockTicketRepository and registers cleanup assertions.
func NewMockTicketRepository(t *testing.T) *MockTicketRepository {
	m := &MockTicketRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockTicketRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockTicketRepository) EXPECT() *MockTicketRepository_Expecter {
	return &MockTicketRepository_Expecter{mock: &m.Mock}
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (e *MockTicketRepository_Expecter) Create(ctx interface{}, ticket interface{}) *mock.Call {
	return e.mock.On("Create", ctx, ticket)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, ticketID string) (*entity.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ticket), args.Error(1)
}

func (e *MockTicketRepository_Expecter) GetByID(ctx interface{}, ticketID interface{}) *mock.Call {
	return e.mock.On("GetByID", ctx, ticketID)
}

func (m *MockTicketRepository) List(ctx context.Context) ([]*entity.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ticket), args.Error(1)
}

func (e *MockTicketRepository_Expecter) List(ctx interface{}) *mock.Call {
	return e.mock.On("List", ctx)
}

func (m *MockTicketRepository) UpdateStatus(ctx context.Context, ticketID string, status entity.TicketStatus) error {
	args := m.Called(ctx, ticketID, status)
	return args.Error(0)
}

func (e *MockTicketRepository_Expecter) UpdateStatus(ctx interface{}, ticketID interface{}, status interface{}) *mock.Call {
	return e.mock.On("UpdateStatus", ctx, ticketID, status)
}

func (m *MockTicketRepository) AppendComment(ctx context.Context, ticketID string, comment entity.TicketComment) error {
	args := m.Called(ctx, ticketID, comment)
	return args.Error(0)
}

func (e *MockTicketRepository_Expecter) AppendComment(ctx interface{}, ticketID interface{}, comment interface{}) *mock.Call {
	return e.mock.On("AppendComment", ctx, ticketID, comment)
}

func (m *MockTicketRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (e *MockTicketRepository_Expecter) Count(ctx interface{}) *mock.Call {
	return e.mock.On("Count", ctx)
}
