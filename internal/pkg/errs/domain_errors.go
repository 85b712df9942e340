package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers map these to HTTP
// statuses; nothing below the handler layer knows about HTTP.
var (
	// Catalog
	ErrServiceNotAvailable  = errors.New("service not available")
	ErrLocationNotAvailable = errors.New("location not available")

	// Booking
	ErrSlotConflict       = errors.New("time slot conflicts with an existing appointment")
	ErrAppointmentInPast  = errors.New("appointment starts in the past")
	ErrAppointmentMissing = errors.New("appointment not found")

	// Waitlist
	ErrWaitlistEntryMissing = errors.New("waitlist entry not found")

	// Accounts
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user inactive")
	ErrEmailAlreadyTaken  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization
	ErrAppointmentAccess = errors.New("appointment access denied")

	// Validation
	ErrDomainValidation = errors.New("domain validation error")

	// Operations
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
