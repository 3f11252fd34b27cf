package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		err      error
		expected string
	}{
		{ErrGatewayUnavailable, CodeGatewayError},
		{ErrPaymentNotSuccessful, CodePaymentNotSuccessful},
		{ErrInsufficientBalance, CodeInsufficientBalance},
		{ErrInvalidReference, CodeInvalidReference},
		{ErrUserNotFound, CodeUserNotFound},
		{ErrAccountDeactivated, CodeAccountDeactivated},
		{ErrBalanceConflict, CodeServiceUnavailable},
		{ErrInvalidAmount, CodeValidationError},
		{ErrNegativeAmount, CodeValidationError},
		{ErrValidation, CodeValidationError},
		{ErrFeeExceedsAmount, CodeFeeSchedule},
		{ErrUnauthorizedUser, CodeUnauthorizedUser},
		{ErrSessionExpired, CodeSessionExpired},
		{ErrTicketNotFound, CodeTicketNotFound},
		{ErrStoreUnavailable, CodeServiceUnavailable},
		{errors.New("something else"), CodeUnhandledException},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}

	t.Run("Wrapped errors keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: email is required", ErrValidation)
		assert.Equal(t, CodeValidationError, ErrorCode(wrapped))
	})
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{ErrPaymentNotSuccessful, http.StatusBadRequest},
		{ErrInsufficientBalance, http.StatusBadRequest},
		{ErrValidation, http.StatusBadRequest},
		{ErrInvalidReference, http.StatusNotFound},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrTicketNotFound, http.StatusNotFound},
		{ErrUnauthorizedUser, http.StatusForbidden},
		{ErrAccountDeactivated, http.StatusForbidden},
		{ErrSessionExpired, http.StatusForbidden},
		{ErrBalanceConflict, http.StatusServiceUnavailable},
		{ErrStoreUnavailable, http.StatusServiceUnavailable},
		{ErrGatewayUnavailable, http.StatusBadGateway},
		{errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, ErrUserNotFound.Error(), Message(ErrUserNotFound))

	// Unknown errors are masked so internals never leak to clients.
	assert.Equal(t, "an unexpected error occurred", Message(errors.New("pq: connection refused")))
}

func TestPaymentNotSuccessfulError(t *testing.T) {
	err := NewPaymentNotSuccessfulError("ref-001", "abandoned")

	assert.ErrorIs(t, err, ErrPaymentNotSuccessful)
	assert.Contains(t, err.Error(), "abandoned")

	var typed *PaymentNotSuccessfulError
	assert.True(t, errors.As(err, &typed))
	fields := typed.LogFields()
	assert.Equal(t, "ref-001", fields["reference"])
	assert.Equal(t, "abandoned", fields["status"])
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("user-1", "1000.00", "250.00")

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.True(t, IsInsufficientBalance(err))
	assert.Contains(t, err.Error(), "required 1000.00")
	assert.Contains(t, err.Error(), "available 250.00")

	var typed *InsufficientBalanceError
	assert.True(t, errors.As(err, &typed))
	fields := typed.LogFields()
	assert.Equal(t, "user-1", fields["user_id"])
	assert.Equal(t, "250.00", fields["current_balance"])
}

func TestGatewayError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewGatewayError("/transaction/verify/ref-001", cause)

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/transaction/verify/ref-001")
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsBalanceConflict(fmt.Errorf("wrapped: %w", ErrBalanceConflict)))
	assert.False(t, IsBalanceConflict(ErrUserNotFound))

	assert.True(t, IsNotFound(ErrInvalidReference))
	assert.True(t, IsNotFound(ErrUserNotFound))
	assert.True(t, IsNotFound(ErrTicketNotFound))
	assert.False(t, IsNotFound(ErrValidation))

	assert.True(t, IsPaymentNotSuccessful(NewPaymentNotSuccessfulError("ref", "failed")))
}
