package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-directory/internal/model"
)

// Lookups report absence through the boolean; they never fail for a missing id.
type (
	// ClinicRepository handles clinic listings
	ClinicRepository interface {
		ListClinics(ctx context.Context, filter model.ClinicFilter) []*model.Clinic
		GetClinic(ctx context.Context, id uuid.UUID) (*model.Clinic, bool)
		CreateClinic(ctx context.Context, in model.ClinicInput) *model.Clinic
	}

	// WorkshopRepository handles workshops and their seat counts.
	// UpdateWorkshop fails with ErrInvalidCapacity.
	WorkshopRepository interface {
		ListWorkshops(ctx context.Context, filter model.WorkshopFilter) []*model.Workshop
		GetWorkshop(ctx context.Context, id uuid.UUID) (*model.Workshop, bool)
		CreateWorkshop(ctx context.Context, in model.WorkshopInput) *model.Workshop
		UpdateWorkshop(ctx context.Context, id uuid.UUID, update model.WorkshopUpdate) (*model.Workshop, bool, error)
	}

	// BookingRepository handles bookings. CreateBooking must reserve the seat
	// atomically with storing the booking, and fails with ErrWorkshopNotFound
	// or ErrWorkshopFull.
	BookingRepository interface {
		ListBookings(ctx context.Context) []*model.Booking
		GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, bool)
		CreateBooking(ctx context.Context, booking *model.Booking) (*model.Booking, error)
		ListBookingsByWorkshop(ctx context.Context, workshopID uuid.UUID) []*model.Booking
	}

	// Store is the full directory store
	Store interface {
		ClinicRepository
		WorkshopRepository
		BookingRepository
	}
)
