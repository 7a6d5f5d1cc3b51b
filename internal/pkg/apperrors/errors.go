package apperrors

import "errors"

// Error kinds. Callers switch on these with errors.Is; the message carried by
// a CustomError is presentation detail, never control flow.
var (
	// ErrInvalidArgument covers malformed identifiers and payload fields.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound covers references that do not resolve at the moment of check.
	ErrNotFound = errors.New("resource not found")

	// ErrInternal covers persistence and other unexpected failures.
	ErrInternal = errors.New("internal error")
)

// Domain-specific sentinels, all unwrapping to one of the kinds above.
var (
	ErrStudentNotFound = &CustomError{Err: ErrNotFound, Message: "Student not found"}
	ErrClassNotFound   = &CustomError{Err: ErrNotFound, Message: "Class not found"}
)

// CustomError attaches a caller-facing message to an error kind.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the kind for errors.Is.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewInvalidArgumentError creates an InvalidArgument error with a message.
func NewInvalidArgumentError(message string) error {
	return &CustomError{Err: ErrInvalidArgument, Message: message}
}

// NewNotFoundError creates a NotFound error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewInternalError creates an InternalError with a message.
func NewInternalError(message string) error {
	return &CustomError{Err: ErrInternal, Message: message}
}

// WrapInternal normalizes an arbitrary failure to InternalError while keeping
// the cause reachable through errors.Unwrap chains in logs.
func WrapInternal(cause error, message string) error {
	return &CustomError{Err: errors.Join(ErrInternal, cause), Message: message}
}
