// Code generated manually in mockery style. Keep in sync with the port.

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
)

// MockPurchaseRepository is a mock implementation of the PurchaseRepository port.
type MockPurchaseRepository struct {
	mock.Mock
}

// NewMockPurchaseRepository creates a new MockPurchaseRepository and registers cleanup assertions.
func NewMockPurchaseRepository(t *testing.T) *MockPurchaseRepository {
	m := &MockPurchaseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockPurchaseRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockPurchaseRepository) EXPECT() *MockPurchaseRepository_Expecter {
	return &MockPurchaseRepository_Expecter{mock: &m.Mock}
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (e *MockPurchaseRepository_Expecter) Create(ctx interface{}, purchase interface{}) *mock.Call {
	return e.mock.On("Create", ctx, purchase)
}

func (m *MockPurchaseRepository) GetByReference(ctx context.Context, reference string) (*entity.Purchase, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Purchase), args.Error(1)
}

func (e *MockPurchaseRepository_Expecter) GetByReference(ctx interface{}, reference interface{}) *mock.Call {
	return e.mock.On("GetByReference", ctx, reference)
}

func (m *MockPurchaseRepository) Confirm(ctx context.Context, purchase *entity.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (e *MockPurchaseRepository_Expecter) Confirm(ctx interface{}, purchase interface{}) *mock.Call {
	return e.mock.On("Confirm", ctx, purchase)
}

func (m *MockPurchaseRepository) SetWalletBalance(ctx context.Context, reference, balance string) error {
	args := m.Called(ctx, reference, balance)
	return args.Error(0)
}

func (e *MockPurchaseRepository_Expecter) SetWalletBalance(ctx interface{}, reference interface{}, balance interface{}) *mock.Call {
	return e.mock.On("SetWalletBalance", ctx, reference, balance)
}

func (m *MockPurchaseRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Purchase, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Purchase), args.Error(1)
}

func (e *MockPurchaseRepository_Expecter) ListByEmail(ctx interface{}, email interface{}) *mock.Call {
	return e.mock.On("ListByEmail", ctx, email)
}

func (m *MockPurchaseRepository) ListByTypeAndDateRange(ctx context.Context, txnType entity.TxnType, from, to time.Time) ([]*entity.Purchase, error) {
	args := m.Called(ctx, txnType, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Purchase), args.Error(1)
}

func (e *MockPurchaseRepository_Expecter) ListByTypeAndDateRange(ctx interface{}, txnType interface{}, from interface{}, to interface{}) *mock.Call {
	return e.mock.On("ListByTypeAndDateRange", ctx, txnType, from, to)
}
