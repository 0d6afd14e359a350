// Package errors maps failures of the bridge client onto categories the HTTP
// boundary understands.
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError marks a successful call.
	CategoryNoError Category = iota
	// CategoryDataError The client sent invalid data in the request payload or parameters.
	CategoryDataError
	// CategoryUnauthorized The request carries no valid credentials.
	CategoryUnauthorized
	// CategoryResourceNotFound The requested network, deployment or route does not exist.
	CategoryResourceNotFound
	// CategoryDataConflict The request conflicts with current state, e.g. no active connection.
	CategoryDataConflict
	// CategoryLocked A submission is already in flight.
	CategoryLocked
	// CategoryDependencyFailure The wallet or an RPC endpoint failed.
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
	// CategoryUnavailable A required dependency is not configured or not reachable.
	CategoryUnavailable
)

func (c Category) String() string {
	switch c {
	case CategoryNoError:
		return "CategoryNoError"
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryLocked:
		return "CategoryLocked"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryUnavailable:
		return "CategoryUnavailable"
	default:
		return "CategoryGeneralError"
	}
}

// StatusCode returns the HTTP status code for the category
func (c Category) StatusCode() int {
	switch c {
	case CategoryNoError:
		return http.StatusOK
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryDataConflict:
		return http.StatusConflict
	case CategoryLocked:
		return http.StatusLocked
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	case CategoryUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ServiceError is the error type handlers return to the HTTP layer.
// Message is shown to the caller, Err is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	return err.Category.StatusCode()
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// New returns a ServiceError of category cat. A nil err is replaced by message.
func New(cat Category, err error, message string) error {
	if err == nil {
		err = errors.New(message)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError returns a general service error.
// The caller sees "Internal Server Error"; err is logged.
func GeneralError(err error) error {
	return New(CategoryGeneralError, err, "Internal Server Error")
}

// BadRequestError returns an error with category DataError
func BadRequestError(err error, message string) error {
	return New(CategoryDataError, err, message)
}

// ResourceNotFoundError returns an error with category ResourceNotFound
func ResourceNotFoundError(err error, message string) error {
	return New(CategoryResourceNotFound, err, message)
}

// UnAuthorizedError returns an error with category Unauthorized
func UnAuthorizedError(err error, message string) error {
	return New(CategoryUnauthorized, err, message)
}

// ConflictError returns an error with category DataConflict
func ConflictError(err error, message string) error {
	return New(CategoryDataConflict, err, message)
}

// LockedError returns an error with category Locked
func LockedError(err error, message string) error {
	return New(CategoryLocked, err, message)
}

// DependencyError returns an error with category DependencyFailure
func DependencyError(err error, message string) error {
	return New(CategoryDependencyFailure, err, message)
}

// UnavailableError returns an error with category Unavailable
func UnavailableError(err error, message string) error {
	return New(CategoryUnavailable, err, message)
}
