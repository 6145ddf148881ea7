// Package service contains the load and booking workflows.  The
// persistence and cross-service boundaries are consumed through the
// interfaces in this file so the workflows can be exercised against
// in-memory fakes; the MySQL repositories satisfy them in production.
package service

import (
    "context"
    "errors"

    "github.com/BhanuPrakash2047/live-easy/internal/model"
)

// ErrInvalidState reports a business-rule violation, e.g. creating a
// booking against a cancelled load.  Handlers translate it into 422.
var ErrInvalidState = errors.New("invalid state")

// ErrBookingCreation wraps any failure during booking creation into a
// single surfaced error.  The underlying cause is wrapped alongside
// it so boundaries can still classify (reference miss vs remote
// failure) while the caller-visible message carries the cause text.
var ErrBookingCreation = errors.New("booking creation failed")

// LoadStore is the load service's persistence boundary.
type LoadStore interface {
    Save(ctx context.Context, l *model.Load) error
    Get(ctx context.Context, id string) (*model.Load, error)
    Update(ctx context.Context, l *model.Load) error
    Delete(ctx context.Context, id string) error
    FindAll(ctx context.Context) ([]model.Load, error)
    FindByShipper(ctx context.Context, shipperID string) ([]model.Load, error)
    FindByTruckType(ctx context.Context, truckType string) ([]model.Load, error)
}

// BookingStore is the booking service's persistence boundary.
type BookingStore interface {
    Save(ctx context.Context, b *model.Booking) error
    Get(ctx context.Context, id string) (*model.Booking, error)
    Update(ctx context.Context, b *model.Booking) error
    Delete(ctx context.Context, id string) error
    FindAll(ctx context.Context) ([]model.Booking, error)
    FindByLoad(ctx context.Context, loadID string) ([]model.Booking, error)
    FindByTransporter(ctx context.Context, transporterID string) ([]model.Booking, error)
}
