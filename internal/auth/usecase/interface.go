package usecase

import (
	"errors"

	authdomain "tourback/internal/auth/domain"
	authdto "tourback/internal/auth/dto"
)

var (
	// ErrPhoneTaken is returned by Register when the phone number is
	// already registered.
	ErrPhoneTaken = errors.New("phone number already registered")

	// ErrInvalidCredentials is returned by Login for an unknown phone or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid phone or password")

	// ErrInvalidToken covers every token failure mode: malformed, bad
	// signature, wrong algorithm, expired, missing subject.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserNotFound is returned by Me when the token subject no longer
	// exists.
	ErrUserNotFound = errors.New("user not found")
)

// AuthUsecase owns credentials and the access token lifecycle
type AuthUsecase interface {
	// Register creates a user with a bcrypt-hashed password
	Register(req *authdto.RegisterRequest) error

	// Login checks credentials and issues an access token
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// ValidateToken verifies a bearer token and returns its subject.
	// It never touches the store: the token is self-contained.
	ValidateToken(tokenString string) (string, error)

	// Me returns the profile for an authenticated user ID
	Me(userID string) (*authdomain.User, error)
}
