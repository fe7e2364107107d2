package errs

import "errors"

// Business-rule error kinds. Usecases Mark() their failures with one of
// these so the handler layer can map them to HTTP statuses without
// inspecting error strings.
var (
	// ErrNotFound: the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden: the acting user lacks permission for the action.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict: the entity is not in a state that permits the action.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInterval: booking start/end violate ordering or future constraints.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrInvalidState: unparseable booking-state filter token.
	ErrInvalidState = errors.New("invalid state")

	// ErrUnavailable: the item is not open for booking.
	ErrUnavailable = errors.New("unavailable")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
