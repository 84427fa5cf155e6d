package booking

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-directory/internal/model"
	"github.com/jwalitptl/clinic-directory/internal/repository"
	"github.com/jwalitptl/clinic-directory/pkg/errors"
	"github.com/jwalitptl/clinic-directory/pkg/metrics"
)

const (
	EventBookingCreated = "booking.created"

	reasonFull     = "full"
	reasonNotFound = "workshop_not_found"
)

type BookingServicer interface {
	CreateBooking(ctx context.Context, in model.BookingInput) (*model.Booking, error)
	ListBookings(ctx context.Context) ([]*model.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error)
}

// EventQueue accepts domain events for asynchronous publishing
type EventQueue interface {
	Enqueue(eventType string, payload interface{}) bool
}

type Service struct {
	workshops repository.WorkshopRepository
	bookings  repository.BookingRepository
	events    EventQueue
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

func NewService(
	workshops repository.WorkshopRepository,
	bookings repository.BookingRepository,
	events EventQueue,
	metrics *metrics.Metrics,
	logger zerolog.Logger,
) *Service {
	return &Service{
		workshops: workshops,
		bookings:  bookings,
		events:    events,
		metrics:   metrics,
		logger:    logger,
	}
}

// CreateBooking reserves a seat on the workshop named by in.WorkshopID. The
// store repeats the capacity check under its lock, so the early check here
// only avoids work for requests that are already known to fail.
func (s *Service) CreateBooking(ctx context.Context, in model.BookingInput) (*model.Booking, error) {
	workshopID, err := uuid.Parse(in.WorkshopID)
	if err != nil {
		s.reject(reasonNotFound, in.WorkshopID)
		return nil, errors.NewNotFound("Workshop", err)
	}

	workshop, ok := s.workshops.GetWorkshop(ctx, workshopID)
	if !ok {
		s.reject(reasonNotFound, in.WorkshopID)
		return nil, errors.NewNotFound("Workshop", nil)
	}
	if workshop.IsFull() {
		s.reject(reasonFull, in.WorkshopID)
		return nil, errors.NewBusinessRule("Workshop is fully booked", repository.ErrWorkshopFull)
	}

	booking, err := s.bookings.CreateBooking(ctx, &model.Booking{
		WorkshopID: workshopID,
		UserName:   in.UserName,
		UserEmail:  in.UserEmail,
		UserPhone:  in.UserPhone,
	})
	switch {
	case stderrors.Is(err, repository.ErrWorkshopNotFound):
		s.reject(reasonNotFound, in.WorkshopID)
		return nil, errors.NewNotFound("Workshop", err)
	case stderrors.Is(err, repository.ErrWorkshopFull):
		s.reject(reasonFull, in.WorkshopID)
		return nil, errors.NewBusinessRule("Workshop is fully booked", err)
	case err != nil:
		return nil, errors.NewInternal("failed to create booking", err)
	}

	s.metrics.BookingsCreated.Inc()

	seatsLeft := 0
	if updated, ok := s.workshops.GetWorkshop(ctx, workshopID); ok {
		seatsLeft = updated.SeatsLeft()
	}

	s.logger.Info().
		Str("booking_id", booking.ID.String()).
		Str("workshop_id", workshopID.String()).
		Int("seats_left", seatsLeft).
		Msg("Booking created")

	s.events.Enqueue(EventBookingCreated, model.BookingEvent{
		BookingID:  booking.ID,
		WorkshopID: workshopID,
		UserEmail:  booking.UserEmail,
		SeatsLeft:  seatsLeft,
	})

	return booking, nil
}

func (s *Service) reject(reason, workshopID string) {
	s.metrics.BookingsRejected.WithLabelValues(reason).Inc()
	s.logger.Info().
		Str("workshop_id", workshopID).
		Str("reason", reason).
		Msg("Booking rejected")
}

func (s *Service) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewInternal("failed to list bookings", err)
	}
	return s.bookings.ListBookings(ctx), nil
}

func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, ok := s.bookings.GetBooking(ctx, id)
	if !ok {
		return nil, errors.NewNotFound("Booking", nil)
	}
	return booking, nil
}
