package repository

import "errors"

var (
	// ErrWorkshopNotFound is returned when a booking references an unknown workshop
	ErrWorkshopNotFound = errors.New("repository: workshop not found")

	// ErrWorkshopFull is returned when a workshop has no seats left
	ErrWorkshopFull = errors.New("repository: workshop is fully booked")

	// ErrInvalidCapacity is returned when an update would leave
	// currentParticipants outside [0, maxParticipants]
	ErrInvalidCapacity = errors.New("repository: invalid workshop capacity")
)
