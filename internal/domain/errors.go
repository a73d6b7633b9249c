package domain

import "errors"

var (
	// ErrNotFound is returned when an event or registration lookup misses.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCredentials is returned when a login attempt does not match
	// the configured admin credential pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoRegistrations is returned when an export is requested for an
	// empty registration list; the exporter produces no output in that case.
	ErrNoRegistrations = errors.New("no registrations to export")
	// ErrRegistrationClosed is returned when a registration is submitted for
	// an event that is not accepting registrations (paused, ended, or past
	// its deadline).
	ErrRegistrationClosed = errors.New("registration closed")
)
