package service

import (
    "context"
    "encoding/json"
    "log"
    "time"

    "github.com/google/uuid"

    "github.com/BhanuPrakash2047/live-easy/internal/cache"
    "github.com/BhanuPrakash2047/live-easy/internal/model"
    "github.com/BhanuPrakash2047/live-easy/internal/queue"
)

// LoadService implements the load service's operations: CRUD on load
// postings plus the status-update path that the booking workflow
// drives synchronously.  Every status change is followed by a
// best-effort LoadStatusChangedEvent broadcast; losing the event
// never rolls back the mutation.
type LoadService struct {
    store    LoadStore
    notifier queue.Notifier
    cache    cache.Cache
}

// NewLoadService wires the service to its store, event notifier and
// read-path cache.  Pass cache.Noop{} to run without caching.
func NewLoadService(store LoadStore, notifier queue.Notifier, c cache.Cache) *LoadService {
    return &LoadService{store: store, notifier: notifier, cache: c}
}

// GetAll returns every load, served from cache when possible.
func (s *LoadService) GetAll(ctx context.Context) ([]model.Load, error) {
    if raw, ok := s.cache.Get(ctx, cache.KeyAll); ok {
        var loads []model.Load
        if err := json.Unmarshal(raw, &loads); err == nil {
            return loads, nil
        }
    }
    loads, err := s.store.FindAll(ctx)
    if err != nil {
        return nil, err
    }
    if raw, err := json.Marshal(loads); err == nil {
        s.cache.Set(ctx, cache.KeyAll, raw)
    }
    return loads, nil
}

// GetByID returns one load, served from cache when possible.
func (s *LoadService) GetByID(ctx context.Context, id string) (*model.Load, error) {
    if raw, ok := s.cache.Get(ctx, id); ok {
        var l model.Load
        if err := json.Unmarshal(raw, &l); err == nil {
            return &l, nil
        }
    }
    l, err := s.store.Get(ctx, id)
    if err != nil {
        return nil, err
    }
    if raw, err := json.Marshal(l); err == nil {
        s.cache.Set(ctx, id, raw)
    }
    return l, nil
}

// GetByShipper returns the loads posted by one shipper.  Filtered
// queries are not cached; they are rare compared to the hot get-all
// and get-by-id paths.
func (s *LoadService) GetByShipper(ctx context.Context, shipperID string) ([]model.Load, error) {
    return s.store.FindByShipper(ctx, shipperID)
}

// GetByTruckType returns the loads requesting one truck type.
func (s *LoadService) GetByTruckType(ctx context.Context, truckType string) ([]model.Load, error) {
    return s.store.FindByTruckType(ctx, truckType)
}

// Create persists a new load for the shipper.  The status is always
// forced to POSTED regardless of what the caller supplied, and a
// status event is broadcast after the row lands.
func (s *LoadService) Create(ctx context.Context, l *model.Load) (*model.Load, error) {
    l.ID = uuid.NewString()
    l.Status = model.LoadPosted
    l.DatePosted = time.Now().UTC()
    if err := s.store.Save(ctx, l); err != nil {
        return nil, err
    }
    log.Printf("load-service: created load %s for shipper %s", l.ID, l.ShipperID)
    s.cache.InvalidateAll(ctx)
    queue.PublishDetached(s.notifier, queue.TopicLoadStatus, queue.NewLoadStatusChangedEvent(l.ID, string(l.Status)))
    return l, nil
}

// Update applies field edits to an existing load.  Status is not
// touched here; status transitions go through UpdateStatus only.
func (s *LoadService) Update(ctx context.Context, id string, details *model.Load) (*model.Load, error) {
    l, err := s.store.Get(ctx, id)
    if err != nil {
        return nil, err
    }
    l.Facility = details.Facility
    l.ProductType = details.ProductType
    l.TruckType = details.TruckType
    l.NoOfTrucks = details.NoOfTrucks
    l.Weight = details.Weight
    l.Comment = details.Comment
    if err := s.store.Update(ctx, l); err != nil {
        return nil, err
    }
    log.Printf("load-service: updated load %s", id)
    s.cache.Invalidate(ctx, id)
    s.cache.Invalidate(ctx, cache.KeyAll)
    return l, nil
}

// Delete removes a load and broadcasts a DELETED event.  Deletion is
// best-effort with respect to referencing bookings: a booking holding
// this id simply dangles afterwards.
func (s *LoadService) Delete(ctx context.Context, id string) error {
    if _, err := s.store.Get(ctx, id); err != nil {
        return err
    }
    if err := s.store.Delete(ctx, id); err != nil {
        return err
    }
    log.Printf("load-service: deleted load %s", id)
    s.cache.Invalidate(ctx, id)
    s.cache.Invalidate(ctx, cache.KeyAll)
    queue.PublishDetached(s.notifier, queue.TopicLoadStatus, queue.NewLoadStatusChangedEvent(id, "DELETED"))
    return nil
}

// UpdateStatus moves a load to the given status and broadcasts the
// change.  The operation is idempotent: setting a load to a status it
// already holds succeeds and simply re-broadcasts.  This is the
// synchronous path the booking workflow depends on.
func (s *LoadService) UpdateStatus(ctx context.Context, id string, status model.LoadStatus) (*model.Load, error) {
    if !status.Valid() {
        return nil, ErrInvalidState
    }
    l, err := s.store.Get(ctx, id)
    if err != nil {
        return nil, err
    }
    l.Status = status
    if err := s.store.Update(ctx, l); err != nil {
        return nil, err
    }
    log.Printf("load-service: load %s status -> %s", id, status)
    s.cache.Invalidate(ctx, id)
    s.cache.Invalidate(ctx, cache.KeyAll)
    queue.PublishDetached(s.notifier, queue.TopicLoadStatus, queue.NewLoadStatusChangedEvent(id, string(status)))
    return l, nil
}
