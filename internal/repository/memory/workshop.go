package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-directory/internal/model"
	"github.com/jwalitptl/clinic-directory/internal/repository"
)

// ListWorkshops returns matching workshops ordered by ascending date.
// Workshops sharing a date keep insertion order; unparsable dates sort last.
func (s *Store) ListWorkshops(_ context.Context, filter model.WorkshopFilter) []*model.Workshop {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category := strings.ToLower(filter.Category)

	out := make([]*model.Workshop, 0, len(s.workshopOrder))
	for _, id := range s.workshopOrder {
		w := s.workshops[id]
		if category != "" && !strings.Contains(strings.ToLower(w.Category), category) {
			continue
		}
		if filter.Date != "" && w.Date != filter.Date {
			continue
		}
		out = append(out, w.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return dateBefore(out[i].Date, out[j].Date)
	})
	return out
}

func (s *Store) GetWorkshop(_ context.Context, id uuid.UUID) (*model.Workshop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.workshops[id]
	if !ok {
		return nil, false
	}
	return w.Clone(), true
}

// CreateWorkshop stores a new workshop with no participants
func (s *Store) CreateWorkshop(_ context.Context, in model.WorkshopInput) *model.Workshop {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertWorkshop(in, 0)
}

// UpdateWorkshop merges update into the stored workshop. The boolean is false
// when id is unknown; ErrInvalidCapacity leaves the workshop unchanged.
func (s *Store) UpdateWorkshop(_ context.Context, id uuid.UUID, update model.WorkshopUpdate) (*model.Workshop, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.workshops[id]
	if !ok {
		return nil, false, nil
	}

	merged := current.Clone()
	update.Apply(merged)
	if merged.MaxParticipants <= 0 || merged.CurrentParticipants < 0 ||
		merged.CurrentParticipants > merged.MaxParticipants {
		return nil, true, repository.ErrInvalidCapacity
	}

	s.workshops[id] = merged
	return merged.Clone(), true, nil
}

// insertWorkshop requires s.mu held for writing
func (s *Store) insertWorkshop(in model.WorkshopInput, participants int) *model.Workshop {
	w := &model.Workshop{
		Base: model.Base{
			ID:        s.newID(),
			CreatedAt: s.now(),
		},
		Title:               in.Title,
		Description:         in.Description,
		Category:            in.Category,
		Instructor:          in.Instructor,
		Date:                in.Date,
		Time:                in.Time,
		Duration:            in.Duration,
		Price:               in.Price,
		MaxParticipants:     in.MaxParticipants,
		CurrentParticipants: participants,
		Location:            in.Location,
		Image:               in.Image,
		Tags:                in.Tags,
	}
	stored := w.Clone()
	s.workshops[stored.ID] = stored
	s.workshopOrder = append(s.workshopOrder, stored.ID)
	return stored.Clone()
}

func dateBefore(a, b string) bool {
	ta, errA := time.Parse(model.DateLayout, a)
	tb, errB := time.Parse(model.DateLayout, b)
	switch {
	case errA != nil:
		return false
	case errB != nil:
		return true
	default:
		return ta.Before(tb)
	}
}
