package workshop

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-directory/internal/model"
	"github.com/jwalitptl/clinic-directory/internal/repository"
	"github.com/jwalitptl/clinic-directory/pkg/errors"
)

type WorkshopServicer interface {
	ListWorkshops(ctx context.Context, filter model.WorkshopFilter) ([]*model.Workshop, error)
	GetWorkshop(ctx context.Context, id uuid.UUID) (*model.Workshop, error)
	CreateWorkshop(ctx context.Context, in model.WorkshopInput) (*model.Workshop, error)
	UpdateWorkshop(ctx context.Context, id uuid.UUID, update model.WorkshopUpdate) (*model.Workshop, error)
	WorkshopBookings(ctx context.Context, id uuid.UUID) ([]*model.Booking, error)
}

type Service struct {
	workshops repository.WorkshopRepository
	bookings  repository.BookingRepository
}

func NewService(workshops repository.WorkshopRepository, bookings repository.BookingRepository) *Service {
	return &Service{workshops: workshops, bookings: bookings}
}

func (s *Service) ListWorkshops(ctx context.Context, filter model.WorkshopFilter) ([]*model.Workshop, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewInternal("failed to list workshops", err)
	}
	return s.workshops.ListWorkshops(ctx, filter), nil
}

func (s *Service) GetWorkshop(ctx context.Context, id uuid.UUID) (*model.Workshop, error) {
	workshop, ok := s.workshops.GetWorkshop(ctx, id)
	if !ok {
		return nil, errors.NewNotFound("Workshop", nil)
	}
	return workshop, nil
}

func (s *Service) CreateWorkshop(ctx context.Context, in model.WorkshopInput) (*model.Workshop, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewInternal("failed to create workshop", err)
	}
	return s.workshops.CreateWorkshop(ctx, in), nil
}

func (s *Service) UpdateWorkshop(ctx context.Context, id uuid.UUID, update model.WorkshopUpdate) (*model.Workshop, error) {
	workshop, ok, err := s.workshops.UpdateWorkshop(ctx, id, update)
	switch {
	case stderrors.Is(err, repository.ErrInvalidCapacity):
		return nil, errors.NewBadRequest("Participant count must be between 0 and the workshop capacity", err)
	case err != nil:
		return nil, errors.NewInternal("failed to update workshop", err)
	case !ok:
		return nil, errors.NewNotFound("Workshop", nil)
	}
	return workshop, nil
}

// WorkshopBookings lists the bookings made against one workshop
func (s *Service) WorkshopBookings(ctx context.Context, id uuid.UUID) ([]*model.Booking, error) {
	if _, ok := s.workshops.GetWorkshop(ctx, id); !ok {
		return nil, errors.NewNotFound("Workshop", nil)
	}
	return s.bookings.ListBookingsByWorkshop(ctx, id), nil
}
