package apperror

import (
	"errors"
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

// ---- Check-in (CHK) ----

// ErrSourceNotConnected means the wallet has not linked the provider the check needs.
func ErrSourceNotConnected(provider string) *AppError {
	return New("CHK_001", fmt.Sprintf("Please connect your %s account first", provider), http.StatusPreconditionFailed)
}

// ErrValidationRejected carries the grader's (or the local) rejection reason.
func ErrValidationRejected(reason string) *AppError {
	return New("CHK_002", "Check-in rejected: "+reason, http.StatusUnprocessableEntity)
}

func ErrVerificationUnavailable(err error) *AppError {
	return Wrap("CHK_003", "Activity provider is unavailable, please try again later", http.StatusBadGateway, err)
}

func ErrUnknownSource(kind string) *AppError {
	return New("CHK_004", fmt.Sprintf("Unknown verification source %q", kind), http.StatusBadRequest)
}

// ---- Ledger node & signing (CHAIN) ----

func ErrNodeUnreachable(err error) *AppError {
	return Wrap("CHAIN_001", "Ledger node unreachable", http.StatusBadGateway, err)
}

func ErrRPC(err error) *AppError {
	return Wrap("CHAIN_002", "Ledger node returned an error", http.StatusBadGateway, err)
}

func ErrTransactionRejected(err error) *AppError {
	return Wrap("CHAIN_003", "Transaction rejected by ledger node", http.StatusBadGateway, err)
}

func ErrSigning(err error) *AppError {
	return Wrap("CHAIN_004", "Transaction signing failed", http.StatusInternalServerError, err)
}

// ---- Local ledger (LEDGER) ----

func ErrLedgerWrite(err error) *AppError {
	return Wrap("LEDGER_001", "Check-in ledger write failed", http.StatusInternalServerError, err)
}

func ErrNotFound(entity string) *AppError {
	return New("LEDGER_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

func ErrBodyTooLarge(limit int64) *AppError {
	return New("REQ_002", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ChainFailure reports whether err belongs to the CHAIN_* family.
func ChainFailure(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Code {
	case "CHAIN_001", "CHAIN_002", "CHAIN_003", "CHAIN_004":
		return true
	}
	return false
}

// CodeOf returns the AppError code carried by err, or "" for plain errors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
