package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// ErrValidationNoSessionID is returned when a trial operation is
	// called without a session identifier.
	ErrValidationNoSessionID = errors.New("no trial session ID provided")

	// ErrValidationNoAccountID is returned when a conversion request
	// names no account to transfer the session into.
	ErrValidationNoAccountID = errors.New("no account ID provided for conversion")

	// ErrValidationNoProjectID is returned when a project operation is
	// called without a project identifier.
	ErrValidationNoProjectID = errors.New("no project ID provided")
)
