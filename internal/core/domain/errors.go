package domain

import "errors"

var (
	// ErrInvalidCredentials is returned when a username/password pair does not verify.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserExists is returned when registering a username that is already taken.
	ErrUserExists = errors.New("username already taken")
	// ErrUserNotFound is returned by credential stores for unknown usernames.
	ErrUserNotFound = errors.New("user not found")
	// ErrValidation is returned when required input is missing.
	ErrValidation = errors.New("please fill out all fields")
	// ErrUpstream wraps every failure of the completion service.
	ErrUpstream = errors.New("completion service error")
)
