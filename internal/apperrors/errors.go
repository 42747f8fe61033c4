package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that an operation is not valid for the entity's current state.
var ErrInvalidState = errors.New("invalid state for operation")

// ErrIllegalTransition indicates that a status change is not an allowed edge of the state machine.
var ErrIllegalTransition = errors.New("illegal status transition")

// ErrConflict indicates that a concurrent write was detected (stale version).
var ErrConflict = errors.New("conflicting concurrent update")

// ErrStorageUnavailable indicates that the store timed out or could not be reached.
// Reads may be retried; mutations must re-check state first.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP-ish status code, a human message and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationFailedError returns an AppError matching ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewNotFoundError returns an AppError matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewConflictError returns an AppError matching ErrConflict.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}

// NewDuplicateError returns an AppError matching ErrDuplicate.
func NewDuplicateError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// NewInvalidStateError returns an AppError matching ErrInvalidState.
func NewInvalidStateError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, ErrInvalidState)
}

// NewIllegalTransitionError returns an AppError matching ErrIllegalTransition.
func NewIllegalTransitionError(from, to string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, fmt.Sprintf("cannot move from %s to %s", from, to), ErrIllegalTransition)
}

// NewStorageUnavailableError returns an AppError matching ErrStorageUnavailable, keeping the cause.
func NewStorageUnavailableError(message string, cause error) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, errors.Join(ErrStorageUnavailable, cause))
}

// HTTPStatus maps an error from the core to the status code the transport should answer with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidState), errors.Is(err, ErrIllegalTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
