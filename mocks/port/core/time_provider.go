// Code generated manually in mockery style. Keep in sync with the port.

package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTimeProvider is a mock implementation of the TimeProvider port.
type MockTimeProvider struct {
	mock.Mock
}

// NewMockTimeProvider creates a new MockTimeProvider and registers cleanup assertions.
func NewMockTimeProvider(t *testing.T) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockTimeProvider_Expecter struct {
	mock *mock.Mock
}

func (m *MockTimeProvider) EXPECT() *MockTimeProvider_Expecter {
	return &MockTimeProvider_Expecter{mock: &m.Mock}
}

func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (e *MockTimeProvider_Expecter) Now() *mock.Call {
	return e.mock.On("Now")
}

func (m *MockTimeProvider) Since(t time.Time) time.Duration {
	args := m.Called(t)
	return args.Get(0).(time.Duration)
}

func (e *MockTimeProvider_Expecter) Since(t interface{}) *mock.Call {
	return e.mock.On("Since", t)
}

func (m *MockTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	args := m.Called(ctx, timeout)
	return args.Get(0).(context.Context), args.Get(1).(context.CancelFunc)
}

func (e *MockTimeProvider_Expecter) WithTimeout(ctx interface{}, timeout interface{}) *mock.Call {
	return e.mock.On("WithTimeout", ctx, timeout)
}
