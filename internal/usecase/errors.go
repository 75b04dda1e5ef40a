package usecase

import "errors"

// Request-level error taxonomy. Every failure a handler can surface maps to
// exactly one of these sentinels; transports translate them into their own
// status shapes.
var (
	ErrValidation            = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrTableNotFound         = errors.New("table not found")
	ErrTableAlreadyExists    = errors.New("table already exists")
	ErrReservationConflict   = errors.New("overlapping reservation exists")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
