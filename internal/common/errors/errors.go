// Package errors defines business error codes and error handling.
package errors

import (
	"fmt"
)

// AppError is a typed application error carrying a business code.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an application error.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates an application error wrapping a cause.
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithMessage returns a copy with a different message.
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: message,
		Err:     e.Err,
	}
}

// WithError returns a copy carrying the original error.
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// General errors (1000-1999). Storage failures live here: callers see a
// generic message while the cause is logged.
var (
	ErrUnknown       = New(1000, "unknown error")
	ErrInvalidParams = New(1001, "invalid parameters")
	ErrDatabaseError = New(1002, "database error")
	ErrInternalError = New(1003, "internal error")
)

// Auth errors (2000-2999)
var (
	ErrUnauthorized       = New(2000, "login required")
	ErrTokenExpired       = New(2001, "session expired, please login again")
	ErrTokenInvalid       = New(2002, "invalid token")
	ErrTokenRevoked       = New(2003, "token has been revoked")
	ErrPermissionDenied   = New(2004, "permission denied")
	ErrInvalidCredentials = New(2005, "invalid email or password")
	ErrEmailExists        = New(2006, "email already registered")
	ErrPasswordMismatch   = New(2007, "current password is incorrect")
)

// Validation errors (3000-3999)
var (
	ErrInvalidBedNumber = New(3000, "bed number outside the room's bed range")
	ErrInvalidAmount    = New(3001, "amount must be positive")
	ErrInvalidDeposit   = New(3002, "deposit must not be negative")
	ErrInvalidDateRange = New(3003, "checkout date must not precede checkin date")
	ErrInvalidBedCount  = New(3004, "room must have at least one bed")
	ErrInvalidRent      = New(3005, "rent per bed must not be negative")
)

// Not-found errors (4000-4999)
var (
	ErrUserNotFound    = New(4000, "user not found")
	ErrPGNotFound      = New(4001, "property not found")
	ErrRoomNotFound    = New(4002, "room not found")
	ErrTenantNotFound  = New(4003, "tenant not found")
	ErrBookingNotFound = New(4004, "booking not found")
	ErrPaymentNotFound = New(4005, "payment not found")
)

// Conflict errors (5000-5999)
var (
	ErrBedOccupied   = New(5000, "bed already has an active booking")
	ErrBookingClosed = New(5001, "booking is already closed")
)

// IsAppError reports whether err is an application error.
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts the application error, wrapping unknown errors.
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrUnknown.WithError(err)
}

// IsInvalidArgument reports whether err is a validation error.
func IsInvalidArgument(err error) bool {
	return inRange(err, 3000, 3999) || is(err, ErrInvalidParams)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return inRange(err, 4000, 4999)
}

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool {
	return inRange(err, 5000, 5999)
}

func is(err error, target *AppError) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == target.Code
}

func inRange(err error, lo, hi int) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code >= lo && appErr.Code <= hi
}
