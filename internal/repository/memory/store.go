// Package memory is the in-process directory store. A Store is created once
// at startup, shared by the services and discarded at exit; nothing is
// persisted across restarts.
package memory

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-directory/internal/model"
	"github.com/jwalitptl/clinic-directory/internal/repository"
)

var _ repository.Store = (*Store)(nil)

// Store keeps clinics, workshops and bookings in maps plus an insertion
// order index per collection. All methods are safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	clinics   map[uuid.UUID]*model.Clinic
	workshops map[uuid.UUID]*model.Workshop
	bookings  map[uuid.UUID]*model.Booking

	clinicOrder   []uuid.UUID
	workshopOrder []uuid.UUID
	bookingOrder  []uuid.UUID

	now   func() time.Time
	newID func() uuid.UUID
	rnd   *rand.Rand
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *Store) { s.newID = gen }
}

// WithRand sets the random source used for seed-only defaults
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rnd = r }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		clinics:   make(map[uuid.UUID]*model.Clinic),
		workshops: make(map[uuid.UUID]*model.Workshop),
		bookings:  make(map[uuid.UUID]*model.Booking),
		now:       time.Now,
		newID:     uuid.New,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats is a point-in-time count of the stored entities
type Stats struct {
	Clinics   int
	Workshops int
	Bookings  int
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Clinics:   len(s.clinics),
		Workshops: len(s.workshops),
		Bookings:  len(s.bookings),
	}
}
