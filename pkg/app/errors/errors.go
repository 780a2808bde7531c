// Package errors maps service failures to categories the HTTP layer turns
// into status codes.
package errors

import (
	"context"
	"errors"
	"net/http"
)

// Category defines error category
type Category int

// Client-side categories come before CategoryDependencyFailure; IsInternalError
// relies on that ordering.
const (
	// CategoryDataError means the request carried invalid data.
	CategoryDataError Category = iota + 1
	// CategoryUnauthorized means the caller could not be authenticated.
	CategoryUnauthorized
	// CategoryForbidden means the caller may not perform the action.
	CategoryForbidden
	// CategoryResourceNotFound means the requested resource does not exist.
	CategoryResourceNotFound
	// CategoryDependencyFailure means a subgraph or RPC endpoint failed.
	CategoryDependencyFailure
	// CategoryConnectionTimeout means a dependency did not answer in time.
	CategoryConnectionTimeout
	// CategoryGeneralError means the service failed in an unexpected way.
	CategoryGeneralError
)

var categories = map[Category]struct {
	name   string
	status int
}{
	CategoryDataError:         {"data_error", http.StatusBadRequest},
	CategoryUnauthorized:      {"unauthorized", http.StatusUnauthorized},
	CategoryForbidden:         {"forbidden", http.StatusForbidden},
	CategoryResourceNotFound:  {"not_found", http.StatusNotFound},
	CategoryDependencyFailure: {"dependency_failure", http.StatusBadGateway},
	CategoryConnectionTimeout: {"dependency_timeout", http.StatusGatewayTimeout},
	CategoryGeneralError:      {"general_error", http.StatusInternalServerError},
}

func (c Category) String() string {
	if info, ok := categories[c]; ok {
		return info.name
	}
	return categories[CategoryGeneralError].name
}

// ServiceError carries a category and a user-facing message. Err is the
// underlying cause, logged but never returned to the client.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

func (err *ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err *ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status code for the error category
func (err *ServiceError) StatusCode() int {
	if info, ok := categories[err.Category]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Is checks that err is a ServiceError with category cat
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err should be logged as a server-side failure.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	return !errors.As(err, &svcErr) || svcErr.Category >= CategoryDependencyFailure
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError hides err behind a generic message.
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Internal Server Error", "internal server error")
}

// ResourceNotFoundError reports a missing resource.
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found: "+message)
}

// BadRequestError reports invalid request data.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: "+message)
}

// ForbiddenError reports an authenticated caller acting outside its rights.
func ForbiddenError(err error, message string) error {
	return newError(CategoryForbidden, err, message, "request forbidden")
}

// UnAuthorizedError reports a request without valid credentials.
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized")
}

// DependencyError wraps a failure of an upstream subgraph or RPC endpoint.
// Deadline errors are categorised as timeouts.
func DependencyError(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(CategoryConnectionTimeout, err, message, "dependency timeout")
	}
	return newError(CategoryDependencyFailure, err, message, "dependency failure")
}
