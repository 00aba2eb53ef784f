package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrSchemaMissing   = errors.New("bookings table is missing")

	// Draft errors
	ErrDraftNotFound     = errors.New("draft not found")
	ErrInvalidTransition = errors.New("invalid draft transition")

	// Change feed errors
	ErrSubscriptionActive = errors.New("a change subscription is already active for this session")

	// Admin session errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
