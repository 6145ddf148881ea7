package service

// In-memory fakes for the store, load-client and notifier boundaries.
// They keep the workflow tests independent of MySQL, RabbitMQ and the
// real load service HTTP API.

import (
    "context"
    "sync"
    "testing"
    "time"

    "github.com/BhanuPrakash2047/live-easy/internal/client"
    "github.com/BhanuPrakash2047/live-easy/internal/model"
    "github.com/BhanuPrakash2047/live-easy/internal/queue"
    "github.com/BhanuPrakash2047/live-easy/internal/repository"
)

// memLoadStore implements LoadStore on a map.
type memLoadStore struct {
    mu sync.Mutex
    m  map[string]model.Load
}

func newMemLoadStore() *memLoadStore { return &memLoadStore{m: make(map[string]model.Load)} }

func (s *memLoadStore) Save(_ context.Context, l *model.Load) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.m[l.ID] = *l
    return nil
}

func (s *memLoadStore) Get(_ context.Context, id string) (*model.Load, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    l, ok := s.m[id]
    if !ok {
        return nil, repository.ErrNotFound
    }
    cp := l
    return &cp, nil
}

func (s *memLoadStore) Update(_ context.Context, l *model.Load) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.m[l.ID]; !ok {
        return repository.ErrNotFound
    }
    s.m[l.ID] = *l
    return nil
}

func (s *memLoadStore) Delete(_ context.Context, id string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.m[id]; !ok {
        return repository.ErrNotFound
    }
    delete(s.m, id)
    return nil
}

func (s *memLoadStore) FindAll(_ context.Context) ([]model.Load, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    out := make([]model.Load, 0, len(s.m))
    for _, l := range s.m {
        out = append(out, l)
    }
    return out, nil
}

func (s *memLoadStore) FindByShipper(_ context.Context, shipperID string) ([]model.Load, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    var out []model.Load
    for _, l := range s.m {
        if l.ShipperID == shipperID {
            out = append(out, l)
        }
    }
    return out, nil
}

func (s *memLoadStore) FindByTruckType(_ context.Context, truckType string) ([]model.Load, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    var out []model.Load
    for _, l := range s.m {
        if l.TruckType == truckType {
            out = append(out, l)
        }
    }
    return out, nil
}

// memBookingStore implements BookingStore on a map.
type memBookingStore struct {
    mu sync.Mutex
    m  map[string]model.Booking
}

func newMemBookingStore() *memBookingStore {
    return &memBookingStore{m: make(map[string]model.Booking)}
}

func (s *memBookingStore) Save(_ context.Context, b *model.Booking) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.m[b.ID] = *b
    return nil
}

func (s *memBookingStore) Get(_ context.Context, id string) (*model.Booking, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    b, ok := s.m[id]
    if !ok {
        return nil, repository.ErrNotFound
    }
    cp := b
    return &cp, nil
}

func (s *memBookingStore) Update(_ context.Context, b *model.Booking) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.m[b.ID]; !ok {
        return repository.ErrNotFound
    }
    s.m[b.ID] = *b
    return nil
}

func (s *memBookingStore) Delete(_ context.Context, id string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.m[id]; !ok {
        return repository.ErrNotFound
    }
    delete(s.m, id)
    return nil
}

func (s *memBookingStore) FindAll(_ context.Context) ([]model.Booking, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    out := make([]model.Booking, 0, len(s.m))
    for _, b := range s.m {
        out = append(out, b)
    }
    return out, nil
}

func (s *memBookingStore) FindByLoad(_ context.Context, loadID string) ([]model.Booking, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    var out []model.Booking
    for _, b := range s.m {
        if b.LoadID == loadID {
            out = append(out, b)
        }
    }
    return out, nil
}

func (s *memBookingStore) FindByTransporter(_ context.Context, transporterID string) ([]model.Booking, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    var out []model.Booking
    for _, b := range s.m {
        if b.TransporterID == transporterID {
            out = append(out, b)
        }
    }
    return out, nil
}

func (s *memBookingStore) len() int {
    s.mu.Lock()
    defer s.mu.Unlock()
    return len(s.m)
}

// fakeLoadClient implements client.LoadStatus on a map of loads.  Set
// failSet to make SetLoadStatus return that error.
type fakeLoadClient struct {
    mu       sync.Mutex
    loads    map[string]*model.Load
    failSet  error
    setCalls int
}

func newFakeLoadClient(loads ...*model.Load) *fakeLoadClient {
    f := &fakeLoadClient{loads: make(map[string]*model.Load)}
    for _, l := range loads {
        f.loads[l.ID] = l
    }
    return f
}

func (f *fakeLoadClient) GetLoad(_ context.Context, loadID string) (*model.Load, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    l, ok := f.loads[loadID]
    if !ok {
        return nil, client.ErrLoadNotFound
    }
    cp := *l
    return &cp, nil
}

func (f *fakeLoadClient) SetLoadStatus(_ context.Context, loadID string, status model.LoadStatus) (*model.Load, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.setCalls++
    if f.failSet != nil {
        return nil, f.failSet
    }
    l, ok := f.loads[loadID]
    if !ok {
        return nil, client.ErrLoadNotFound
    }
    l.Status = status
    cp := *l
    return &cp, nil
}

func (f *fakeLoadClient) status(loadID string) model.LoadStatus {
    f.mu.Lock()
    defer f.mu.Unlock()
    return f.loads[loadID].Status
}

// recNotifier records published events.  Publishes arrive on detached
// goroutines, so tests use wait() to observe them.
type recNotifier struct {
    mu     sync.Mutex
    events []recordedEvent
}

type recordedEvent struct {
    topic string
    event queue.LoadStatusChangedEvent
}

func (n *recNotifier) Publish(_ context.Context, topic string, event any) error {
    n.mu.Lock()
    defer n.mu.Unlock()
    ev, _ := event.(queue.LoadStatusChangedEvent)
    n.events = append(n.events, recordedEvent{topic: topic, event: ev})
    return nil
}

// wait blocks until n events have been recorded or the deadline hits.
func (n *recNotifier) wait(t *testing.T, want int) []recordedEvent {
    t.Helper()
    deadline := time.Now().Add(2 * time.Second)
    for {
        n.mu.Lock()
        got := len(n.events)
        evs := append([]recordedEvent(nil), n.events...)
        n.mu.Unlock()
        if got >= want {
            return evs
        }
        if time.Now().After(deadline) {
            t.Fatalf("timed out waiting for %d events, got %d", want, got)
        }
        time.Sleep(10 * time.Millisecond)
    }
}

func (n *recNotifier) count() int {
    n.mu.Lock()
    defer n.mu.Unlock()
    return len(n.events)
}

// loadServiceClient adapts a LoadService into client.LoadStatus for
// the in-process end-to-end scenario test.
type loadServiceClient struct {
    svc *LoadService
}

func (c loadServiceClient) GetLoad(ctx context.Context, loadID string) (*model.Load, error) {
    l, err := c.svc.GetByID(ctx, loadID)
    if err != nil {
        return nil, client.ErrLoadNotFound
    }
    return l, nil
}

func (c loadServiceClient) SetLoadStatus(ctx context.Context, loadID string, status model.LoadStatus) (*model.Load, error) {
    l, err := c.svc.UpdateStatus(ctx, loadID, status)
    if err != nil {
        return nil, err
    }
    return l, nil
}
