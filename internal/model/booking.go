package model

import "github.com/google/uuid"

type BookingStatus string

// Bookings are confirmed on creation; there is no cancellation flow.
const BookingStatusConfirmed BookingStatus = "confirmed"

// Booking is a user's reservation against one workshop
type Booking struct {
	Base
	WorkshopID uuid.UUID     `json:"workshopId"`
	UserName   string        `json:"userName"`
	UserEmail  string        `json:"userEmail"`
	UserPhone  string        `json:"userPhone"`
	Status     BookingStatus `json:"status"`
}

type BookingInput struct {
	WorkshopID string `json:"workshopId" binding:"required"`
	UserName   string `json:"userName" binding:"required,min=2"`
	UserEmail  string `json:"userEmail" binding:"required,email"`
	UserPhone  string `json:"userPhone" binding:"required,min=10"`
}

// BookingEvent is published after a booking is stored
type BookingEvent struct {
	BookingID  uuid.UUID `json:"bookingId"`
	WorkshopID uuid.UUID `json:"workshopId"`
	UserEmail  string    `json:"userEmail"`
	SeatsLeft  int       `json:"seatsLeft"`
}
