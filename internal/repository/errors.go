// Package repository defines error values that are reused across multiple
// repositories. These sentinels let handlers distinguish failure scenarios
// without inspecting SQL errors: ErrFlightNotFound and
// ErrReservationNotFound translate to HTTP 404, ErrNotActive and
// ErrNotCancelled to HTTP 409 when a cancel or restore is attempted in the
// wrong state.
package repository

import "errors"

// ErrFlightNotFound is returned when a flight id does not resolve to a row.
var ErrFlightNotFound = errors.New("flight not found")

// ErrCountryNotFound is returned when a country id does not resolve to a row.
var ErrCountryNotFound = errors.New("country not found")

// ErrReservationNotFound is returned when a reservation does not exist or
// is not owned by the requesting user. Ownership failures are deliberately
// indistinguishable from missing rows so ids cannot be probed.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrNotActive is returned when cancelling a reservation that is not
// currently Active. Handlers should translate this into an HTTP 409.
var ErrNotActive = errors.New("reservation is not active")

// ErrNotCancelled is returned when restoring a reservation that is not
// currently Cancelled. Handlers should translate this into an HTTP 409.
var ErrNotCancelled = errors.New("reservation is not cancelled")

// ErrEmailExists is returned when registering with an email that is
// already taken. Handlers should translate this into an HTTP 409.
var ErrEmailExists = errors.New("email already exists")
