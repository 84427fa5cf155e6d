package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-directory/internal/model"
	"github.com/jwalitptl/clinic-directory/internal/repository"
)

func (s *Store) ListBookings(_ context.Context) []*model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Booking, 0, len(s.bookingOrder))
	for _, id := range s.bookingOrder {
		b := *s.bookings[id]
		out = append(out, &b)
	}
	return out
}

func (s *Store) GetBooking(_ context.Context, id uuid.UUID) (*model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	out := *b
	return &out, true
}

// CreateBooking reserves a seat and stores the booking in one critical
// section, so concurrent callers can never push a workshop past capacity.
// The draft's WorkshopID and user fields are used; id, status and creation
// time are assigned here.
func (s *Store) CreateBooking(_ context.Context, draft *model.Booking) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.workshops[draft.WorkshopID]
	if !ok {
		return nil, repository.ErrWorkshopNotFound
	}
	if w.IsFull() {
		return nil, repository.ErrWorkshopFull
	}

	b := &model.Booking{
		Base: model.Base{
			ID:        s.newID(),
			CreatedAt: s.now(),
		},
		WorkshopID: draft.WorkshopID,
		UserName:   draft.UserName,
		UserEmail:  draft.UserEmail,
		UserPhone:  draft.UserPhone,
		Status:     model.BookingStatusConfirmed,
	}
	s.bookings[b.ID] = b
	s.bookingOrder = append(s.bookingOrder, b.ID)
	w.CurrentParticipants++

	out := *b
	return &out, nil
}

func (s *Store) ListBookingsByWorkshop(_ context.Context, workshopID uuid.UUID) []*model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Booking
	for _, id := range s.bookingOrder {
		if b := s.bookings[id]; b.WorkshopID == workshopID {
			cp := *b
			out = append(out, &cp)
		}
	}
	if out == nil {
		out = []*model.Booking{}
	}
	return out
}
