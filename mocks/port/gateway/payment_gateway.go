// Code generated manually in mockery style. Keep in sync with the port.

package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	gwport "github.com/powerstack-ng/powerstack-api/internal/domain/port/gateway"
)

// MockPaymentGateway is a mock implementation of the PaymentGateway port.
type MockPaymentGateway struct {
	mock.Mock
}

// NewMockPaymentGateway creates a new MockPaymentGateway and registers cleanup assertions.
func NewMockPaymentGateway(t *testing.T) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockPaymentGateway_Expecter struct {
	mock *mock.Mock
}

func (m *MockPaymentGateway) EXPECT() *MockPaymentGateway_Expecter {
	return &MockPaymentGateway_Expecter{mock: &m.Mock}
}

func (m *MockPaymentGateway) InitializeCharge(ctx context.Context, req gwport.ChargeRequest) (*gwport.ChargeSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gwport.ChargeSession), args.Error(1)
}

func (e *MockPaymentGateway_Expecter) InitializeCharge(ctx interface{}, req interface{}) *mock.Call {
	return e.mock.On("InitializeCharge", ctx, req)
}

func (m *MockPaymentGateway) VerifyCharge(ctx context.Context, reference string) (*gwport.ChargeVerification, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gwport.ChargeVerification), args.Error(1)
}

func (e *MockPaymentGateway_Expecter) VerifyCharge(ctx interface{}, reference interface{}) *mock.Call {
	return e.mock.On("VerifyCharge", ctx, reference)
}
