package service

import (
    "context"
    "encoding/json"
    "fmt"
    "log"
    "time"

    "github.com/google/uuid"

    "github.com/BhanuPrakash2047/live-easy/internal/cache"
    "github.com/BhanuPrakash2047/live-easy/internal/client"
    "github.com/BhanuPrakash2047/live-easy/internal/model"
    "github.com/BhanuPrakash2047/live-easy/internal/queue"
)

// BookingService orchestrates the booking lifecycle and keeps the
// referenced load's status consistent across the two services.  The
// consistency mechanism is an ordered sequence per operation: a
// synchronous load-status call whose failure fails the operation,
// followed by a detached best-effort event broadcast whose failure is
// only logged.  No distributed transaction spans the two stores; the
// known gaps (a PENDING booking left behind when the load sync fails
// after persist, a lost update between two concurrent updates on one
// id) are accepted and documented rather than papered over.
//
// Authorization is not enforced here.  The handler boundary checks
// the caller's identity against the booking's transporter or the
// load's shipper before any mutation reaches this type.
type BookingService struct {
    store    BookingStore
    loads    client.LoadStatus
    notifier queue.Notifier
    cache    cache.Cache
}

// NewBookingService wires the workflow to its store, the load
// service client, the event notifier and the read-path cache.
func NewBookingService(store BookingStore, loads client.LoadStatus, notifier queue.Notifier, c cache.Cache) *BookingService {
    return &BookingService{store: store, loads: loads, notifier: notifier, cache: c}
}

// GetAll returns every booking, served from cache when possible.
func (s *BookingService) GetAll(ctx context.Context) ([]model.Booking, error) {
    if raw, ok := s.cache.Get(ctx, cache.KeyAll); ok {
        var bookings []model.Booking
        if err := json.Unmarshal(raw, &bookings); err == nil {
            return bookings, nil
        }
    }
    bookings, err := s.store.FindAll(ctx)
    if err != nil {
        return nil, err
    }
    if raw, err := json.Marshal(bookings); err == nil {
        s.cache.Set(ctx, cache.KeyAll, raw)
    }
    return bookings, nil
}

// GetByID returns one booking, served from cache when possible.
func (s *BookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
    if raw, ok := s.cache.Get(ctx, id); ok {
        var b model.Booking
        if err := json.Unmarshal(raw, &b); err == nil {
            return &b, nil
        }
    }
    b, err := s.store.Get(ctx, id)
    if err != nil {
        return nil, err
    }
    if raw, err := json.Marshal(b); err == nil {
        s.cache.Set(ctx, id, raw)
    }
    return b, nil
}

// GetByLoad returns the bookings placed against one load.
func (s *BookingService) GetByLoad(ctx context.Context, loadID string) ([]model.Booking, error) {
    return s.store.FindByLoad(ctx, loadID)
}

// GetByTransporter returns the bookings placed by one transporter.
func (s *BookingService) GetByTransporter(ctx context.Context, transporterID string) ([]model.Booking, error) {
    return s.store.FindByTransporter(ctx, transporterID)
}

// Create places a new booking against a load.  The sequence is:
//
//  1. fetch the load synchronously — absent load fails the call;
//  2. refuse a CANCELLED load (ErrInvalidState, nothing persisted);
//  3. persist the booking with status PENDING;
//  4. synchronously move the load to BOOKED;
//  5. broadcast the status event, detached and best-effort.
//
// Any failure in 1–4 is surfaced as one ErrBookingCreation carrying
// the cause; if step 4 fails after step 3 the booking row is left in
// place with no compensating delete.
func (s *BookingService) Create(ctx context.Context, loadID, transporterID string, proposedRate float64, comment string) (*model.Booking, error) {
    load, err := s.loads.GetLoad(ctx, loadID)
    if err != nil {
        log.Printf("booking-service: load lookup %s failed: %v", loadID, err)
        return nil, fmt.Errorf("%w: %w", ErrBookingCreation, err)
    }
    if load.Status == model.LoadCancelled {
        log.Printf("booking-service: refusing booking against cancelled load %s", loadID)
        return nil, fmt.Errorf("%w: %w: load %s is cancelled", ErrBookingCreation, ErrInvalidState, loadID)
    }

    b := &model.Booking{
        ID:            uuid.NewString(),
        LoadID:        loadID,
        TransporterID: transporterID,
        ProposedRate:  proposedRate,
        Comment:       comment,
        Status:        model.BookingPending,
        RequestedAt:   time.Now().UTC(),
    }
    if err := s.store.Save(ctx, b); err != nil {
        return nil, fmt.Errorf("%w: %w", ErrBookingCreation, err)
    }

    if _, err := s.loads.SetLoadStatus(ctx, loadID, model.LoadBooked); err != nil {
        // The booking row stays; the caller sees the failure and may
        // retry, which is safe because the status set is idempotent.
        log.Printf("booking-service: load %s status sync failed after persisting booking %s: %v", loadID, b.ID, err)
        return nil, fmt.Errorf("%w: %w", ErrBookingCreation, err)
    }

    queue.PublishDetached(s.notifier, queue.TopicBookingEvents, queue.NewLoadStatusChangedEvent(loadID, string(model.LoadBooked)))

    s.cache.InvalidateAll(ctx)
    log.Printf("booking-service: created booking %s for load %s", b.ID, loadID)
    return b, nil
}

// Update applies rate and comment unconditionally and, when a status
// is supplied and differs from the current one, applies the status
// transition.  Moving to ACCEPTED first synchronizes the load to
// BOOKED; if that call fails the whole attempt aborts and nothing is
// persisted, so status change and load sync form a single attempt per
// call.  REJECTED never touches the load.
func (s *BookingService) Update(ctx context.Context, id string, proposedRate float64, comment string, newStatus *model.BookingStatus) (*model.Booking, error) {
    b, err := s.store.Get(ctx, id)
    if err != nil {
        return nil, err
    }

    b.ProposedRate = proposedRate
    b.Comment = comment

    if newStatus != nil && *newStatus != b.Status {
        if !newStatus.Valid() {
            return nil, fmt.Errorf("%w: unknown booking status %q", ErrInvalidState, *newStatus)
        }
        if *newStatus == model.BookingAccepted {
            if _, err := s.loads.SetLoadStatus(ctx, b.LoadID, model.LoadBooked); err != nil {
                log.Printf("booking-service: accept of booking %s aborted, load %s sync failed: %v", id, b.LoadID, err)
                return nil, err
            }
            queue.PublishDetached(s.notifier, queue.TopicBookingEvents, queue.NewLoadStatusChangedEvent(b.LoadID, string(model.LoadBooked)))
            log.Printf("booking-service: load %s status -> BOOKED for accepted booking %s", b.LoadID, id)
        }
        b.Status = *newStatus
    }

    if err := s.store.Update(ctx, b); err != nil {
        return nil, err
    }
    s.cache.Invalidate(ctx, id)
    s.cache.Invalidate(ctx, cache.KeyAll)
    log.Printf("booking-service: updated booking %s", id)
    return b, nil
}

// Delete withdraws a booking.  The referenced load is synchronously
// moved to CANCELLED before the booking row is removed: if the load
// call fails the row stays, and a crash between the two steps leaves
// an orphaned booking pointing at a cancelled load rather than a
// cancelled load with no record of why.  The load side effect is the
// one that must land.
func (s *BookingService) Delete(ctx context.Context, id string) error {
    b, err := s.store.Get(ctx, id)
    if err != nil {
        return err
    }

    if _, err := s.loads.SetLoadStatus(ctx, b.LoadID, model.LoadCancelled); err != nil {
        log.Printf("booking-service: delete of booking %s aborted, load %s cancel failed: %v", id, b.LoadID, err)
        return err
    }
    queue.PublishDetached(s.notifier, queue.TopicBookingEvents, queue.NewLoadStatusChangedEvent(b.LoadID, string(model.LoadCancelled)))

    if err := s.store.Delete(ctx, id); err != nil {
        return err
    }
    s.cache.Invalidate(ctx, id)
    s.cache.Invalidate(ctx, cache.KeyAll)
    log.Printf("booking-service: deleted booking %s (load %s cancelled)", id, b.LoadID)
    return nil
}
