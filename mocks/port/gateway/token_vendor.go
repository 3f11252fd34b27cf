// Code generated manually in mockery style. Keep in sync with the port.

package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockTokenVendor is a mock implementation of the TokenVendor port.
type MockTokenVendor struct {
	mock.Mock
}

// NewMockTokenVendor creates a new MockTokenVendor and registers cleanup assertions.
func NewMockTokenVendor(t *testing.T) *MockTokenVendor {
	m := &MockTokenVendor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockTokenVendor_Expecter struct {
	mock *mock.Mock
}

func (m *MockTokenVendor) EXPECT() *MockTokenVendor_Expecter {
	return &MockTokenVendor_Expecter{mock: &m.Mock}
}

func (m *MockTokenVendor) VendToken(ctx context.Context, meterNumber, meterType string, unitsKobo int64) (string, error) {
	args := m.Called(ctx, meterNumber, meterType, unitsKobo)
	return args.String(0), args.Error(1)
}

func (e *MockTokenVendor_Expecter) VendToken(ctx interface{}, meterNumber interface{}, meterType interface{}, unitsKobo interface{}) *mock.Call {
	return e.mock.On("VendToken", ctx, meterNumber, meterType, unitsKobo)
}
