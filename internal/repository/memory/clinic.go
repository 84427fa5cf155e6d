package memory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-directory/internal/model"
)

func (s *Store) ListClinics(_ context.Context, filter model.ClinicFilter) []*model.Clinic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	location := strings.ToLower(filter.Location)
	specialty := strings.ToLower(filter.Specialty)
	service := strings.ToLower(filter.Service)

	out := make([]*model.Clinic, 0, len(s.clinicOrder))
	for _, id := range s.clinicOrder {
		c := s.clinics[id]
		if location != "" && !strings.Contains(strings.ToLower(c.Location), location) {
			continue
		}
		if specialty != "" && !anyContains(c.Specialties, specialty) {
			continue
		}
		if service != "" && !anyContains(c.Services, service) {
			continue
		}
		out = append(out, c.Clone())
	}
	return out
}

func (s *Store) GetClinic(_ context.Context, id uuid.UUID) (*model.Clinic, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clinics[id]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// CreateClinic stores a new, verified clinic with no reviews yet
func (s *Store) CreateClinic(_ context.Context, in model.ClinicInput) *model.Clinic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertClinic(in, 0, 0)
}

// insertClinic requires s.mu held for writing
func (s *Store) insertClinic(in model.ClinicInput, rating, reviewCount int) *model.Clinic {
	c := &model.Clinic{
		Base: model.Base{
			ID:        s.newID(),
			CreatedAt: s.now(),
		},
		Name:         in.Name,
		Description:  in.Description,
		Location:     in.Location,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		Website:      in.Website,
		Specialties:  in.Specialties,
		Services:     in.Services,
		Availability: in.Availability,
		PriceRange:   in.PriceRange,
		Rating:       rating,
		ReviewCount:  reviewCount,
		Image:        in.Image,
		Verified:     true,
	}
	stored := c.Clone()
	s.clinics[stored.ID] = stored
	s.clinicOrder = append(s.clinicOrder, stored.ID)
	return stored.Clone()
}

// anyContains reports whether any value contains needle; needle must be lower case
func anyContains(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
