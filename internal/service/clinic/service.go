package clinic

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-directory/internal/model"
	"github.com/jwalitptl/clinic-directory/internal/repository"
	"github.com/jwalitptl/clinic-directory/pkg/errors"
)

type ClinicServicer interface {
	ListClinics(ctx context.Context, filter model.ClinicFilter) ([]*model.Clinic, error)
	GetClinic(ctx context.Context, id uuid.UUID) (*model.Clinic, error)
	CreateClinic(ctx context.Context, in model.ClinicInput) (*model.Clinic, error)
}

type Service struct {
	repo repository.ClinicRepository
}

func NewService(repo repository.ClinicRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListClinics(ctx context.Context, filter model.ClinicFilter) ([]*model.Clinic, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewInternal("failed to list clinics", err)
	}
	return s.repo.ListClinics(ctx, filter), nil
}

func (s *Service) GetClinic(ctx context.Context, id uuid.UUID) (*model.Clinic, error) {
	clinic, ok := s.repo.GetClinic(ctx, id)
	if !ok {
		return nil, errors.NewNotFound("Clinic", nil)
	}
	return clinic, nil
}

func (s *Service) CreateClinic(ctx context.Context, in model.ClinicInput) (*model.Clinic, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewInternal("failed to create clinic", err)
	}
	return s.repo.CreateClinic(ctx, in), nil
}
