package domain

import "errors"

// Kind classifies a domain error so the transport layer can map it deterministically
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is a domain error tagged with its kind
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a domain error of the given kind
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation is a shortcut for a validation error with a custom message
func Validation(message string) *Error {
	return NewError(KindValidation, message)
}

// KindOf returns the kind of err. Errors that are not domain errors are internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// User errors
var (
	ErrUserNotFound       = NewError(KindNotFound, "User Not Found")
	ErrUserAlreadyExists  = NewError(KindConflict, "User already exists!")
	ErrInvalidCredentials = NewError(KindUnauthorized, "Invalid username or password")
	ErrRoleNotSeeded      = NewError(KindInternal, "role not found, run the seeder")
)

// Book errors
var (
	ErrBookNotFound    = NewError(KindNotFound, "Book Not Found")
	ErrBookUnavailable = NewError(KindConflict, "No copies of this book are available")
)

// Borrowing errors
var (
	ErrBorrowingNotFound = NewError(KindNotFound, "Book Not Found")
	ErrDueBeforeIssue    = NewError(KindValidation, "Due date must be after issue date")
	ErrReturnBeforeIssue = NewError(KindValidation, "Return date cannot be before issue date")
)

// Token errors
var (
	ErrUnauthorized = NewError(KindUnauthorized, "Unauthorized")
	ErrForbidden    = NewError(KindForbidden, "You don't have permission to access this resource")
)
