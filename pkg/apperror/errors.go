package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Ledger Engine (LED) ----

func ErrInvalidAmount() *AppError {
	return New("LED_001", "Amount must be positive", http.StatusBadRequest)
}

// ErrInsufficientFunds reports that the named balance cannot cover the
// requested amount. balance is "online", "offline" or "vault".
func ErrInsufficientFunds(balance string) *AppError {
	return New("LED_002", fmt.Sprintf("Insufficient %s balance", balance), http.StatusPaymentRequired)
}

func ErrKeysNotInitialized() *AppError {
	return New("LED_003", "Keys not initialized", http.StatusConflict)
}

func ErrTransactionNotFound() *AppError {
	return New("LED_004", "Transaction not found", http.StatusNotFound)
}

// ErrInvalidState reports an illegal transaction lifecycle transition.
func ErrInvalidState(message string) *AppError {
	return New("LED_005", message, http.StatusConflict)
}

// ---- Proximity transport (PRX) ----

func ErrAmountOutOfBounds() *AppError {
	return New("PRX_001", "Amount must be between 100 and 1000000", http.StatusBadRequest)
}

func ErrPayloadReplayed() *AppError {
	return New("PRX_002", "Proximity payload has already been received", http.StatusConflict)
}

func ErrTransportUnavailable(transport string) *AppError {
	return New("PRX_003", fmt.Sprintf("%s transport is not available on this device", transport), http.StatusServiceUnavailable)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid passphrase", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
