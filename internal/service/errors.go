package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUnauthorized is returned when a valid token names a user that no
	// longer exists.
	ErrUnauthorized = errors.New("could not validate credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrNoOwner = errors.New("no owner id given")
)
