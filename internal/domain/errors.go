package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Entity-specific errors wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName is returned when a user has no name.
	ErrEmptyName = fmt.Errorf("%w: name cannot be empty", ErrValidation)

	// ErrNameTooLong is returned when a user name exceeds MaxNameLength.
	ErrNameTooLong = fmt.Errorf("%w: name is too long", ErrValidation)

	// ErrEmptyText is returned when a post has no text.
	ErrEmptyText = fmt.Errorf("%w: text cannot be empty", ErrValidation)

	// ErrInvalidUserID is returned when a post does not reference a user.
	ErrInvalidUserID = fmt.Errorf("%w: invalid user ID", ErrValidation)
)
