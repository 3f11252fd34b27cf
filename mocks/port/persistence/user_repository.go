// Code generated manually in mockery style. Keep in sync with the port.

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
)

// MockUserRepository is a mock implementation of the UserRepository port.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a new MockUserRepository and registers cleanup assertions.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &m.Mock}
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (e *MockUserRepository_Expecter) GetByID(ctx interface{}, userID interface{}) *mock.Call {
	return e.mock.On("GetByID", ctx, userID)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (e *MockUserRepository_Expecter) GetByEmail(ctx interface{}, email interface{}) *mock.Call {
	return e.mock.On("GetByEmail", ctx, email)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (e *MockUserRepository_Expecter) Create(ctx interface{}, user interface{}) *mock.Call {
	return e.mock.On("Create", ctx, user)
}

func (m *MockUserRepository) CompareAndSetBalance(ctx context.Context, userID string, expectedKobo, newBalanceKobo int64) error {
	args := m.Called(ctx, userID, expectedKobo, newBalanceKobo)
	return args.Error(0)
}

func (e *MockUserRepository_Expecter) CompareAndSetBalance(ctx interface{}, userID interface{}, expectedKobo interface{}, newBalanceKobo interface{}) *mock.Call {
	return e.mock.On("CompareAndSetBalance", ctx, userID, expectedKobo, newBalanceKobo)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func (e *MockUserRepository_Expecter) TouchLastLogin(ctx interface{}, userID interface{}, at interface{}) *mock.Call {
	return e.mock.On("TouchLastLogin", ctx, userID, at)
}

func (m *MockUserRepository) SetActive(ctx context.Context, userID string, active bool) error {
	args := m.Called(ctx, userID, active)
	return args.Error(0)
}

func (e *MockUserRepository_Expecter) SetActive(ctx interface{}, userID interface{}, active interface{}) *mock.Call {
	return e.mock.On("SetActive", ctx, userID, active)
}

func (m *MockUserRepository) AddMeter(ctx context.Context, userID string, meter entity.Meter) error {
	args := m.Called(ctx, userID, meter)
	return args.Error(0)
}

func (e *MockUserRepository_Expecter) AddMeter(ctx interface{}, userID interface{}, meter interface{}) *mock.Call {
	return e.mock.On("AddMeter", ctx, userID, meter)
}

func (m *MockUserRepository) RemoveMeter(ctx context.Context, userID string, meterNumber string) error {
	args := m.Called(ctx, userID, meterNumber)
	return args.Error(0)
}

func (e *MockUserRepository_Expecter) RemoveMeter(ctx interface{}, userID interface{}, meterNumber interface{}) *mock.Call {
	return e.mock.On("RemoveMeter", ctx, userID, meterNumber)
}

func (m *MockUserRepository) ListByType(ctx context.Context, userType entity.UserType) ([]*entity.User, error) {
	args := m.Called(ctx, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (e *MockUserRepository_Expecter) ListByType(ctx interface{}, userType interface{}) *mock.Call {
	return e.mock.On("ListByType", ctx, userType)
}

func (m *MockUserRepository) ListByTypeAndLastLogin(ctx context.Context, userType entity.UserType, from, to time.Time) ([]*entity.User, error) {
	args := m.Called(ctx, userType, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (e *MockUserRepository_Expecter) ListByTypeAndLastLogin(ctx interface{}, userType interface{}, from interface{}, to interface{}) *mock.Call {
	return e.mock.On("ListByTypeAndLastLogin", ctx, userType, from, to)
}
