package repository

import (
	"errors"

	authdomain "tourback/internal/auth/domain"
)

// ErrDuplicatePhone is returned by Create when the phone number is already
// registered. The users table carries a unique index on phone, so two
// concurrent registrations cannot both succeed.
var ErrDuplicatePhone = errors.New("phone number already registered")

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user, assigning its ID and creation time
	Create(user *authdomain.User) error

	// FindByPhone finds a user by phone number, (nil, nil) if absent
	FindByPhone(phone string) (*authdomain.User, error)

	// FindByID finds a user by ID, (nil, nil) if absent
	FindByID(id string) (*authdomain.User, error)
}
