package user

import "errors"

var (
	// ErrUserExists is returned when the registration email is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingFields is returned when a required field is absent.
	ErrMissingFields = errors.New("all fields are required")
	// ErrNotFound is returned when the user record does not exist.
	ErrNotFound = errors.New("user not found")
)
