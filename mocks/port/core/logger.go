// Code generated manually in mockery style. Keep in sync with the port.

package core

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockLogger is a mock implementation of the Logger port.
type MockLogger struct {
	mock.Mock
}

// NewMockLogger creates a new MockLogger and registers cleanup assertions.
func NewMockLogger(t *testing.T) *MockLogger {
	m := &MockLogger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockLogger_Expecter struct {
	mock *mock.Mock
}

func (m *MockLogger) EXPECT() *MockLogger_Expecter {
	return &MockLogger_Expecter{mock: &m.Mock}
}

func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (e *MockLogger_Expecter) Debug(message interface{}, fields interface{}) *mock.Call {
	return e.mock.On("Debug", message, fields)
}

func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (e *MockLogger_Expecter) Info(message interface{}, fields interface{}) *mock.Call {
	return e.mock.On("Info", message, fields)
}

func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (e *MockLogger_Expecter) Warn(message interface{}, fields interface{}) *mock.Call {
	return e.mock.On("Warn", message, fields)
}

func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (e *MockLogger_Expecter) Error(message interface{}, fields interface{}) *mock.Call {
	return e.mock.On("Error", message, fields)
}

func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}

func (e *MockLogger_Expecter) Flush() *mock.Call {
	return e.mock.On("Flush")
}
