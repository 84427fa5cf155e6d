package clinic

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-directory/internal/model"
	"github.com/jwalitptl/clinic-directory/internal/repository/memory"
	"github.com/jwalitptl/clinic-directory/pkg/errors"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	store := memory.NewStore()
	memory.Seed(context.Background(), store)
	return NewService(store)
}

func TestListClinics(t *testing.T) {
	svc := setupService(t)

	all, err := svc.ListClinics(context.Background(), model.ClinicFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mumbai, err := svc.ListClinics(context.Background(), model.ClinicFilter{Location: "mumbai"})
	require.NoError(t, err)
	assert.Len(t, mumbai, 1)
}

func TestGetClinic(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	all, err := svc.ListClinics(ctx, model.ClinicFilter{})
	require.NoError(t, err)

	got, err := svc.GetClinic(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, all[0].Name, got.Name)

	_, err = svc.GetClinic(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Equal(t, "Clinic not found", err.Error())
}

func TestCreateClinic(t *testing.T) {
	svc := setupService(t)

	created, err := svc.CreateClinic(context.Background(), model.ClinicInput{
		Name:         "Harbor Counselling",
		Description:  "Walk-in counselling",
		Location:     "Chennai",
		Address:      "1 Marina Road",
		Phone:        "+91 44 1234 5678",
		Email:        "hello@harbor.in",
		Specialties:  []string{"Grief"},
		Services:     []string{"Individual Therapy"},
		Availability: "Mon-Fri",
		PriceRange:   "₹1000-2000",
		Image:        "harbor.jpg",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.Verified)
	assert.Zero(t, created.Rating)
}

func TestListClinics_CancelledContext(t *testing.T) {
	svc := setupService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ListClinics(ctx, model.ClinicFilter{})
	assert.True(t, errors.Is(err, errors.ErrInternal))
}
