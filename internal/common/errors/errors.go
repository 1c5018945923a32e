package errors

import (
	"fmt"
	"time"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeConflict     ErrorCode = "CONFLICT"

	ErrCodeUserNotFound   ErrorCode = "USER_NOT_FOUND"
	ErrCodeWalletNotFound ErrorCode = "WALLET_NOT_FOUND"
	ErrCodeWalletExists   ErrorCode = "WALLET_ALREADY_REGISTERED"
	ErrCodeInvalidAddress ErrorCode = "INVALID_ADDRESS"

	ErrCodeAirdropNotFound   ErrorCode = "AIRDROP_NOT_FOUND"
	ErrCodeNoRecipients      ErrorCode = "NO_RECIPIENTS"
	ErrCodeSenderNotSet      ErrorCode = "SENDER_WALLET_NOT_CONFIGURED"
	ErrCodeInvalidAmount     ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidDecimals   ErrorCode = "INVALID_DECIMALS"
	ErrCodeInvalidFee        ErrorCode = "INVALID_FEE_PERCENTAGE"
	ErrCodeTransferFailed    ErrorCode = "TRANSFER_FAILED"
	ErrCodeDatabaseError     ErrorCode = "DATABASE_ERROR"
	ErrCodeCacheError        ErrorCode = "CACHE_ERROR"
	ErrCodeQueueError        ErrorCode = "QUEUE_ERROR"
	ErrCodeTelegramAPI       ErrorCode = "TELEGRAM_API_ERROR"
	ErrCodeSettingsUnknown   ErrorCode = "UNKNOWN_SETTING"
	ErrCodeSettingsBadValue  ErrorCode = "INVALID_SETTING_VALUE"
	ErrCodeTransferExecError ErrorCode = "TRANSFER_EXECUTOR_ERROR"
)

// AppError is the typed error carried across service boundaries.
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Cause     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether the error is any of the not-found codes.
func (e *AppError) IsNotFound() bool {
	return e.Code == ErrCodeNotFound ||
		e.Code == ErrCodeUserNotFound ||
		e.Code == ErrCodeWalletNotFound ||
		e.Code == ErrCodeAirdropNotFound
}

// IsValidation reports whether the error is a caller-input problem.
func (e *AppError) IsValidation() bool {
	switch e.Code {
	case ErrCodeValidation, ErrCodeInvalidAddress, ErrCodeInvalidAmount,
		ErrCodeInvalidDecimals, ErrCodeInvalidFee, ErrCodeNoRecipients,
		ErrCodeSenderNotSet, ErrCodeSettingsUnknown, ErrCodeSettingsBadValue:
		return true
	}
	return false
}

// IsUnauthorized reports whether the error is an auth problem.
func (e *AppError) IsUnauthorized() bool {
	return e.Code == ErrCodeUnauthorized || e.Code == ErrCodeForbidden
}

// IsConflict reports whether the error is a uniqueness conflict.
func (e *AppError) IsConflict() bool {
	return e.Code == ErrCodeConflict || e.Code == ErrCodeWalletExists
}

// WithDetail attaches a named value for the HTTP error body.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Newf creates a new application error with formatting.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an underlying error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// Wrapf wraps an underlying error with formatting.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// NewValidationError creates a field validation error.
func NewValidationError(field, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("Validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// NewInvalidAddressError creates an error for a malformed Solana address.
func NewInvalidAddressError(address string) *AppError {
	return New(ErrCodeInvalidAddress, "Invalid Solana address").
		WithDetail("address", address)
}

// NewWalletNotFoundError creates a wallet-not-found error.
func NewWalletNotFoundError(walletID string) *AppError {
	return New(ErrCodeWalletNotFound, fmt.Sprintf("Wallet not found: %s", walletID)).
		WithDetail("wallet_id", walletID)
}

// NewAirdropNotFoundError creates an airdrop-not-found error.
func NewAirdropNotFoundError(eventID string) *AppError {
	return New(ErrCodeAirdropNotFound, fmt.Sprintf("Airdrop event not found: %s", eventID)).
		WithDetail("airdrop_id", eventID)
}

// NewDatabaseError wraps a storage failure.
func NewDatabaseError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeDatabaseError, fmt.Sprintf("Database operation failed: %s", operation)).
		WithDetail("operation", operation)
}

// NewQueueError wraps a batch queue failure.
func NewQueueError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeQueueError, fmt.Sprintf("Queue operation failed: %s", operation)).
		WithDetail("operation", operation)
}

// AsAppError converts err to *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil {
		appErr, _ = err.(*AppError)
	}
	return appErr, appErr != nil
}
