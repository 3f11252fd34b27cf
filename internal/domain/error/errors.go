package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to API clients as {code, message} pairs. Codes are
// stable strings; messages may change.
const (
	CodeGatewayError         = "GatewayError"
	CodePaymentNotSuccessful = "PaymentNotSuccessful"
	CodeInsufficientBalance  = "InsufficientBalance"
	CodeInvalidReference     = "InvalidReference"
	CodeUserNotFound         = "UserNotFound"
	CodeAccountDeactivated   = "AccountDeactivated"
	CodeValidationError      = "ValidationError"
	CodeUnauthorizedUser     = "UnauthorizedUser"
	CodeSessionExpired       = "SessionExpired"
	CodeServiceUnavailable   = "ServiceUnavailable"
	CodeFeeSchedule          = "FeeScheduleError"
	CodeTicketNotFound       = "TicketNotFound"
	CodeUnhandledException   = "UnhandledException"
)

// Base error types
var (
	// ErrGatewayUnavailable is returned when the payment gateway is
	// unreachable or returns a malformed response. Retryable by the caller.
	ErrGatewayUnavailable = errors.New("payment gateway request failed")

	// ErrPaymentNotSuccessful is returned when the gateway reports a
	// non-success status for a transaction reference.
	ErrPaymentNotSuccessful = errors.New("payment not successful")

	// ErrInsufficientBalance is returned when a wallet debit exceeds the
	// available balance.
	ErrInsufficientBalance = errors.New("insufficient wallet balance, please fund wallet")

	// ErrInvalidReference is returned when no purchase record exists for a
	// transaction reference.
	ErrInvalidReference = errors.New("the given transaction reference is invalid")

	// ErrUserNotFound is returned when the requested user doesn't exist.
	ErrUserNotFound = errors.New("user not found, check email / username")

	// ErrAccountDeactivated is returned when a deactivated user attempts an
	// operation.
	ErrAccountDeactivated = errors.New("account has been deactivated, contact customer service")

	// ErrBalanceConflict is returned when a conditional wallet update loses
	// against a concurrent writer. Transient; retried internally and
	// surfaced as ServiceUnavailable once attempts are exhausted.
	ErrBalanceConflict = errors.New("wallet balance was modified concurrently")

	// ErrAlreadyConfirmed is returned by the store when the
	// Initialized -> Confirmed transition loses a concurrent confirmation.
	// Not surfaced: the caller re-reads and returns the winner's record.
	ErrAlreadyConfirmed = errors.New("purchase already confirmed")

	// ErrDuplicatePurchase is returned when inserting a purchase record
	// whose reference already exists.
	ErrDuplicatePurchase = errors.New("purchase with this reference already exists")

	// ErrInvalidAmount is returned when an amount string is malformed.
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is negative.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrFeeExceedsAmount is returned when fees meet or exceed the gross
	// amount, which indicates a misconfigured fee schedule.
	ErrFeeExceedsAmount = errors.New("fees exceed transaction amount")

	// ErrValidation is returned when a request payload fails validation.
	ErrValidation = errors.New("invalid request")

	// ErrUnauthorizedUser is returned when a user's type does not permit
	// the requested operation.
	ErrUnauthorizedUser = errors.New("user is not authorized for this operation")

	// ErrSessionExpired is returned when the bearer token has expired.
	ErrSessionExpired = errors.New("session expired, log in again")

	// ErrTicketNotFound is returned when the requested ticket doesn't exist.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrStoreUnavailable is returned when the ledger store cannot be
	// reached.
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrInternal is returned for unexpected server-side errors.
	ErrInternal = errors.New("internal server error")
)

// ErrorCode maps known errors to their stable API code. Anything
// unrecognized becomes UnhandledException so internal error text never
// defines the contract.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrGatewayUnavailable):
		return CodeGatewayError
	case errors.Is(err, ErrPaymentNotSuccessful):
		return CodePaymentNotSuccessful
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidReference):
		return CodeInvalidReference
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrAccountDeactivated):
		return CodeAccountDeactivated
	case errors.Is(err, ErrBalanceConflict):
		return CodeServiceUnavailable
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrValidation):
		return CodeValidationError
	case errors.Is(err, ErrFeeExceedsAmount):
		return CodeFeeSchedule
	case errors.Is(err, ErrUnauthorizedUser):
		return CodeUnauthorizedUser
	case errors.Is(err, ErrSessionExpired):
		return CodeSessionExpired
	case errors.Is(err, ErrTicketNotFound):
		return CodeTicketNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return CodeServiceUnavailable
	default:
		return CodeUnhandledException
	}
}

// HTTPStatus maps known errors to response status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPaymentNotSuccessful),
		errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidReference),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrTicketNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorizedUser),
		errors.Is(err, ErrAccountDeactivated),
		errors.Is(err, ErrSessionExpired):
		return http.StatusForbidden
	case errors.Is(err, ErrBalanceConflict),
		errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrGatewayUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for an error. Known domain
// errors are surfaced verbatim; everything else is masked.
func Message(err error) string {
	if ErrorCode(err) == CodeUnhandledException {
		return "an unexpected error occurred"
	}
	return err.Error()
}

// PaymentNotSuccessfulError carries the gateway-reported status for a
// failed or pending transaction.
type PaymentNotSuccessfulError struct {
	Reference string
	Status    string
}

func (e *PaymentNotSuccessfulError) Error() string {
	return fmt.Sprintf("transaction status: %s", e.Status)
}

func (e *PaymentNotSuccessfulError) Is(target error) bool {
	return target == ErrPaymentNotSuccessful
}

// LogFields returns a map of fields for structured logging
func (e *PaymentNotSuccessfulError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "payment_not_successful",
		"reference":  e.Reference,
		"status":     e.Status,
		"error_code": CodePaymentNotSuccessful,
	}
}

// NewPaymentNotSuccessfulError creates an error for a gateway-reported
// non-success status.
func NewPaymentNotSuccessfulError(reference, status string) error {
	return &PaymentNotSuccessfulError{Reference: reference, Status: status}
}

// InsufficientBalanceError provides balance context for a rejected debit.
type InsufficientBalanceError struct {
	UserID      string
	Amount      string
	CurrBalance string
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient wallet balance: required %s, available %s", e.Amount, e.CurrBalance)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a detailed insufficient balance error.
func NewInsufficientBalanceError(userID, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// GatewayError wraps a failed call to the payment gateway.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayUnavailable
}

// NewGatewayError wraps err as a gateway failure for operation op.
func NewGatewayError(op string, err error) error {
	return &GatewayError{Op: op, Err: err}
}

// IsPaymentNotSuccessful checks if the error is a gateway non-success status.
func IsPaymentNotSuccessful(err error) bool {
	return errors.Is(err, ErrPaymentNotSuccessful)
}

// IsInsufficientBalance checks if the error is an insufficient balance error.
func IsInsufficientBalance(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsBalanceConflict checks if the error is a concurrent balance update conflict.
func IsBalanceConflict(err error) bool {
	return errors.Is(err, ErrBalanceConflict)
}

// IsNotFound checks if the error is any "not found" type of error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTicketNotFound)
}
