// Package repository implements MySQL persistence for users, loads
// and bookings.  This file defines sentinel error values shared
// across the repositories.  Higher layers match on these with
// errors.Is to translate failures into discrete HTTP responses
// instead of inspecting driver-specific errors.
package repository

import "errors"

// ErrNotFound is returned when a row with the requested id does not
// exist.  Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registering a user whose email is
// already taken.  Handlers translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
