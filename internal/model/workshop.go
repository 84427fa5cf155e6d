package model

// Workshop is a scheduled group session with a capacity limit
type Workshop struct {
	Base
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Category            string   `json:"category"`
	Instructor          string   `json:"instructor"`
	Date                string   `json:"date"`
	Time                string   `json:"time"`
	Duration            string   `json:"duration"`
	Price               int      `json:"price"`
	MaxParticipants     int      `json:"maxParticipants"`
	CurrentParticipants int      `json:"currentParticipants"`
	Location            string   `json:"location"`
	Image               string   `json:"image"`
	Tags                []string `json:"tags"`
}

type WorkshopInput struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	Instructor      string   `json:"instructor" binding:"required"`
	Date            string   `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string   `json:"time" binding:"required"`
	Duration        string   `json:"duration" binding:"required"`
	Price           int      `json:"price" binding:"gte=0"`
	MaxParticipants int      `json:"maxParticipants" binding:"required,gte=1"`
	Location        string   `json:"location" binding:"required"`
	Image           string   `json:"image" binding:"required"`
	Tags            []string `json:"tags" binding:"omitempty,dive,required"`
}

// WorkshopUpdate is a partial update; nil fields are left untouched
type WorkshopUpdate struct {
	Title               *string  `json:"title" binding:"omitempty,min=1"`
	Description         *string  `json:"description" binding:"omitempty,min=1"`
	Category            *string  `json:"category" binding:"omitempty,min=1"`
	Instructor          *string  `json:"instructor" binding:"omitempty,min=1"`
	Date                *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time                *string  `json:"time" binding:"omitempty,min=1"`
	Duration            *string  `json:"duration" binding:"omitempty,min=1"`
	Price               *int     `json:"price" binding:"omitempty,gte=0"`
	MaxParticipants     *int     `json:"maxParticipants" binding:"omitempty,gte=1"`
	CurrentParticipants *int     `json:"currentParticipants" binding:"omitempty,gte=0"`
	Location            *string  `json:"location" binding:"omitempty,min=1"`
	Image               *string  `json:"image" binding:"omitempty,min=1"`
	Tags                []string `json:"tags" binding:"omitempty,dive,required"`
}

type WorkshopFilter struct {
	Category string `form:"category"`
	Date     string `form:"date"`
}

// SeatsLeft reports how many more bookings the workshop can take
func (w *Workshop) SeatsLeft() int {
	left := w.MaxParticipants - w.CurrentParticipants
	if left < 0 {
		return 0
	}
	return left
}

func (w *Workshop) IsFull() bool {
	return w.CurrentParticipants >= w.MaxParticipants
}

func (w *Workshop) Clone() *Workshop {
	out := *w
	out.Tags = cloneStrings(w.Tags)
	return &out
}

// Apply merges the non-nil fields of u into w
func (u *WorkshopUpdate) Apply(w *Workshop) {
	if u.Title != nil {
		w.Title = *u.Title
	}
	if u.Description != nil {
		w.Description = *u.Description
	}
	if u.Category != nil {
		w.Category = *u.Category
	}
	if u.Instructor != nil {
		w.Instructor = *u.Instructor
	}
	if u.Date != nil {
		w.Date = *u.Date
	}
	if u.Time != nil {
		w.Time = *u.Time
	}
	if u.Duration != nil {
		w.Duration = *u.Duration
	}
	if u.Price != nil {
		w.Price = *u.Price
	}
	if u.MaxParticipants != nil {
		w.MaxParticipants = *u.MaxParticipants
	}
	if u.CurrentParticipants != nil {
		w.CurrentParticipants = *u.CurrentParticipants
	}
	if u.Location != nil {
		w.Location = *u.Location
	}
	if u.Image != nil {
		w.Image = *u.Image
	}
	if u.Tags != nil {
		w.Tags = cloneStrings(u.Tags)
	}
}
