// Code generated manually in mockery style. Keep in sync with the port.

package core

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockReferenceGenerator is a mock implementation of the ReferenceGenerator port.
type MockReferenceGenerator struct {
	mock.Mock
}

// NewMockReferenceGenerator creates a new MockReferenceGenerator and registers cleanup assertions.
func NewMockReferenceGenerator(t *testing.T) *MockReferenceGenerator {
	m := &MockReferenceGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockReferenceGenerator_Expecter struct {
	mock *mock.Mock
}

func (m *MockReferenceGenerator) EXPECT() *MockReferenceGenerator_Expecter {
	return &MockReferenceGenerator_Expecter{mock: &m.Mock}
}

func (m *MockReferenceGenerator) NewReference() string {
	args := m.Called()
	return args.String(0)
}

func (e *MockReferenceGenerator_Expecter) NewReference() *mock.Call {
	return e.mock.On("NewReference")
}
