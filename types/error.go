package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unified error code across the pattern packages.
type ErrorCode string

// Input validation error codes
const (
	ErrCodeInvalidBid        ErrorCode = "INVALID_BID"
	ErrCodeResourceMismatch  ErrorCode = "RESOURCE_MISMATCH"
	ErrCodeInvalidDelegation ErrorCode = "INVALID_DELEGATION"
	ErrCodeInvalidStructure  ErrorCode = "INVALID_STRUCTURE"
	ErrCodeInvalidPolicy     ErrorCode = "INVALID_POLICY"
	ErrCodeInvalidConfig     ErrorCode = "INVALID_CONFIG"
)

// Membership and lookup error codes
const (
	ErrCodeNotFound  ErrorCode = "NOT_FOUND"
	ErrCodeDuplicate ErrorCode = "DUPLICATE"
	ErrCodeNotMember ErrorCode = "NOT_MEMBER"
)

// Storage error codes
const (
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
)

// Sentinel errors for errors.Is checks. A *Error matches a sentinel when the codes are equal.
var (
	ErrInvalidBid        = NewError(ErrCodeInvalidBid, "invalid bid")
	ErrResourceMismatch  = NewError(ErrCodeResourceMismatch, "bid resource does not match auction")
	ErrInvalidDelegation = NewError(ErrCodeInvalidDelegation, "invalid delegation")
	ErrInvalidStructure  = NewError(ErrCodeInvalidStructure, "invalid structure")
	ErrInvalidPolicy     = NewError(ErrCodeInvalidPolicy, "invalid policy")
	ErrInvalidConfig     = NewError(ErrCodeInvalidConfig, "invalid config")
	ErrNotFound          = NewError(ErrCodeNotFound, "not found")
	ErrDuplicate         = NewError(ErrCodeDuplicate, "duplicate")
	ErrNotMember         = NewError(ErrCodeNotMember, "not a member")
	ErrStoreUnavailable  = NewError(ErrCodeStoreUnavailable, "store unavailable")
)

// Error represents a structured error with code, message, and cause.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf creates a new Error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// GetErrorCode extracts the error code from an error chain.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
