package status

import "errors"

var (
	// ErrNotFound is returned when an id does not match any record in its
	// collection. Mutating operations leave the collection untouched when
	// they return it.
	ErrNotFound = errors.New("record: not found")

	ErrInvalidRating = errors.New("review: rating must be between 1 and 5")

	ErrUserNotFound       = errors.New("auth: user not found")
	ErrWrongPassword      = errors.New("auth: wrong password")
	ErrInvalidEmail       = errors.New("auth: invalid email format")
	ErrTooManyRequests    = errors.New("auth: too many login attempts")
	ErrBackendUnavailable = errors.New("auth: credential backend unavailable")
)
