package model

import (
	"time"

	"github.com/google/uuid"
)

// Base contains the fields every directory entity carries
type Base struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// DateLayout is the calendar date format used by workshops and filters
const DateLayout = "2006-01-02"

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
