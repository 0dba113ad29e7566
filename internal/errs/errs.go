// Package errs holds sentinel errors shared across packages.
package errs

import "errors"

var (
	// ErrNotReady is returned when insight data for the requested period is not available yet.
	ErrNotReady = errors.New("insight not ready")
	// ErrUnexpectedStatus is wrapped by every non-2xx upstream response.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMissingCredential marks a roster row without an access token.
	ErrMissingCredential = errors.New("missing access token")
	// ErrEmptyRoster is reported when no bots could be loaded.
	ErrEmptyRoster = errors.New("empty roster")
)
