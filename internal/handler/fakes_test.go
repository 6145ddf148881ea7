package handler_test

// In-memory fakes backing the handler tests.  They satisfy the same
// boundaries the MySQL repositories and the HTTP load client do, so a
// full Echo instance with real routing and middleware can be driven
// through httptest without external services.

import (
	"context"
	"fmt"
	"sync"

	"github.com/BhanuPrakash2047/live-easy/internal/model"
	"github.com/BhanuPrakash2047/live-easy/internal/repository"
	"github.com/BhanuPrakash2047/live-easy/internal/utils"
)

type memLoadStore struct {
	mu    sync.Mutex
	loads map[string]model.Load
}

func newMemLoadStore() *memLoadStore {
	return &memLoadStore{loads: map[string]model.Load{}}
}

func (s *memLoadStore) Save(_ context.Context, l *model.Load) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads[l.ID] = *l
	return nil
}

func (s *memLoadStore) Get(_ context.Context, id string) (*model.Load, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.loads[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := l
	return &cp, nil
}

func (s *memLoadStore) Update(_ context.Context, l *model.Load) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.loads[l.ID]; !ok {
		return repository.ErrNotFound
	}
	s.loads[l.ID] = *l
	return nil
}

func (s *memLoadStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.loads[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.loads, id)
	return nil
}

func (s *memLoadStore) FindAll(_ context.Context) ([]model.Load, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Load, 0, len(s.loads))
	for _, l := range s.loads {
		out = append(out, l)
	}
	return out, nil
}

func (s *memLoadStore) FindByShipper(_ context.Context, shipperID string) ([]model.Load, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Load
	for _, l := range s.loads {
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
	for _, l := range s.loads {
		if l.TruckType == truckType {
			out = append(out, l)
		}
	}
	return out, nil
}

type memBookingStore struct {
	mu       sync.Mutex
	bookings map[string]model.Booking
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{bookings: map[string]model.Booking{}}
}

func (s *memBookingStore) Save(_ context.Context, b *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = *b
	return nil
}

func (s *memBookingStore) Get(_ context.Context, id string) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := b
	return &cp, nil
}

func (s *memBookingStore) Update(_ context.Context, b *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[b.ID]; !ok {
		return repository.ErrNotFound
	}
	s.bookings[b.ID] = *b
	return nil
}

func (s *memBookingStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

func (s *memBookingStore) FindAll(_ context.Context) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (s *memBookingStore) FindByLoad(_ context.Context, loadID string) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Booking
	for _, b := range s.bookings {
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
	for _, b := range s.bookings {
		if b.TransporterID == transporterID {
			out = append(out, b)
		}
	}
	return out, nil
}

// memUserStore backs the auth handler tests.  It hashes passwords the
// same way the SQL repository does so Login's verifier works against
// it unchanged.
type memUserStore struct {
	mu    sync.Mutex
	users map[string]model.User // keyed by email
	seq   int
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]model.User{}}
}

func (s *memUserStore) Create(_ context.Context, email, password, role string, cost int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; ok {
		return "", repository.ErrEmailExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return "", err
	}
	s.seq++
	id := fmt.Sprintf("u-%d", s.seq)
	s.users[email] = model.User{ID: id, Email: email, PasswordHash: hash, Role: role}
	return id, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := u
	return &cp, nil
}
