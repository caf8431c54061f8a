package response

import (
	"fmt"
	"net/http"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies an Error
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFoundError"
	case KindUnknown:
		return "UnknownError"
	default:
		return "InternalError"
	}
}

// Status returns the HTTP status code for the kind
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is an HTTP-aware error. The global error handler uses Status and Message as-is.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Cause   error
	stack   pkgerrors.StackTrace
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Status:  kind.Status(),
		Message: message,
		Cause:   cause,
		stack:   pkgerrors.New(message).(stackTracer).StackTrace(),
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// Stack returns the call stack captured when the error was created, one frame
// per line pair
func (e *Error) Stack() string {
	return strings.TrimPrefix(fmt.Sprintf("%+v", e.stack), "\n")
}

// Validation reports that the named request part failed its schema.
// The message always starts with the part name.
func Validation(part string, cause error) *Error {
	message := part
	if cause != nil {
		message = fmt.Sprintf("%s: %s", part, cause.Error())
	}
	return newError(KindValidation, message, cause)
}

// NotFound reports a missing record
func NotFound(message string) *Error {
	return newError(KindNotFound, message, nil)
}

// Internal wraps an unexpected failure
func Internal(cause error) *Error {
	message := "Internal server error"
	if cause != nil {
		message = cause.Error()
	}
	return newError(KindInternal, message, cause)
}

// Unknown wraps a value that is not an error, e.g. a recovered panic value
func Unknown(value any) *Error {
	return newError(KindUnknown, fmt.Sprintf("An unknown error occurred: %v", value), nil)
}
