package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already in use")

	// Item errors
	ErrItemNotFound     = errors.New("item not found")
	ErrItemNotAvailable = errors.New("item not available for booking")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	// ErrNotAuthorized is reported to clients with the same status as a
	// missing booking so that non-participants cannot probe for existence.
	// The sentinel stays distinct so callers can still discriminate.
	ErrNotAuthorized   = errors.New("actor may not access this booking")
	ErrInvalidInterval = errors.New("invalid booking interval")
	ErrSelfBooking     = errors.New("owner cannot book own item")
	ErrTimeConflict    = errors.New("booking time conflict")
	ErrAlreadyApproved = errors.New("booking already approved")
	ErrAlreadyRejected = errors.New("booking already rejected")
	ErrUnknownState    = errors.New("unknown state filter")

	// Comment errors
	ErrCommentWithoutBooking = errors.New("commenting requires a completed booking")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
