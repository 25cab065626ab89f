package trial

import "errors"

var (
	// ErrQuotaExhausted means the identity has no generations left. The
	// verdict is final for this session; the caller should steer the user
	// toward registration.
	ErrQuotaExhausted = errors.New("trial generation quota exhausted")

	// ErrSessionExpired means the session passed its 24 h lifetime.
	ErrSessionExpired = errors.New("trial session expired")

	// ErrSessionConverted means the session was already transferred into
	// an account and can never grant generations again.
	ErrSessionConverted = errors.New("trial session already converted")

	// ErrNoSession means no local trial record exists where one is
	// required (e.g. Transfer before any session was created).
	ErrNoSession = errors.New("no trial session")
)
