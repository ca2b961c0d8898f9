package reminders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	reminderRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reminder"
	vehicleRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return genNow }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReminderRepo struct {
	reminders []*domain.ServiceReminder

	completedID string
	deleted     int64
}

func (r *fakeReminderRepo) Create(ctx context.Context, rem *domain.ServiceReminder) (*domain.ServiceReminder, error) {
	r.reminders = append(r.reminders, rem)
	return rem, nil
}

func (r *fakeReminderRepo) ListIncomplete(ctx context.Context, vehicleID *string) ([]*domain.ServiceReminder, error) {
	var out []*domain.ServiceReminder
	for _, rem := range r.reminders {
		if rem.Completed {
			continue
		}
		if vehicleID != nil && rem.VehicleID != *vehicleID {
			continue
		}
		out = append(out, rem)
	}
	return out, nil
}

func (r *fakeReminderRepo) ExistsIncompleteByTitle(ctx context.Context, vehicleID, title string) (bool, error) {
	for _, rem := range r.reminders {
		if !rem.Completed && rem.VehicleID == vehicleID && rem.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReminderRepo) MarkCompleted(ctx context.Context, id string, updatedAt time.Time) error {
	for _, rem := range r.reminders {
		if rem.ID == id {
			rem.Completed = true
			rem.UpdatedAt = updatedAt
			r.completedID = id
			return nil
		}
	}
	return reminderRepo.ErrReminderNotFound
}

func (r *fakeReminderRepo) DeleteCompleted(ctx context.Context) (int64, error) {
	kept := r.reminders[:0]
	for _, rem := range r.reminders {
		if rem.Completed {
			r.deleted++
			continue
		}
		kept = append(kept, rem)
	}
	r.reminders = kept
	return r.deleted, nil
}

type fakeVehicleGetter struct {
	vehicle *domain.Vehicle
}

func (r *fakeVehicleGetter) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if r.vehicle == nil || r.vehicle.ID != id {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return r.vehicle, nil
}

func newTestService(reminders *fakeReminderRepo, vehicles *fakeVehicleGetter) *Service {
	svc := NewService(reminders, vehicles, nopLogger{})
	svc.timeProvider = fixedTime{}
	return svc
}

func highMileageVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:           "vehicle-1",
		Make:         "Ford",
		Model:        "Focus",
		Year:         2023,
		Registration: "AB12CDE",
		Mileage:      80000,
		FuelType:     domain.FuelPetrol,
	}
}

func TestGenerateForVehicle_PersistsReminders(t *testing.T) {
	repo := &fakeReminderRepo{}
	svc := newTestService(repo, &fakeVehicleGetter{vehicle: highMileageVehicle()})

	resp, err := svc.GenerateForVehicle(context.Background(), "vehicle-1")
	require.NoError(t, err)

	require.Len(t, resp.Reminders, 1)
	assert.Contains(t, resp.Reminders[0].Title, "High Mileage")
	assert.NotEmpty(t, resp.Reminders[0].ID)

	require.Len(t, repo.reminders, 1)
	assert.True(t, repo.reminders[0].CreatedAt.Equal(genNow))
}

func TestGenerateForVehicle_DeduplicatesByTitle(t *testing.T) {
	repo := &fakeReminderRepo{}
	svc := newTestService(repo, &fakeVehicleGetter{vehicle: highMileageVehicle()})

	first, err := svc.GenerateForVehicle(context.Background(), "vehicle-1")
	require.NoError(t, err)
	require.Len(t, first.Reminders, 1)

	second, err := svc.GenerateForVehicle(context.Background(), "vehicle-1")
	require.NoError(t, err)

	assert.Empty(t, second.Reminders)
	assert.Len(t, repo.reminders, 1)
}

func TestGenerateForVehicle_CompletedDoesNotBlockRegeneration(t *testing.T) {
	repo := &fakeReminderRepo{}
	svc := newTestService(repo, &fakeVehicleGetter{vehicle: highMileageVehicle()})

	first, err := svc.GenerateForVehicle(context.Background(), "vehicle-1")
	require.NoError(t, err)
	require.Len(t, first.Reminders, 1)

	require.NoError(t, svc.Complete(context.Background(), first.Reminders[0].ID))

	second, err := svc.GenerateForVehicle(context.Background(), "vehicle-1")
	require.NoError(t, err)
	assert.Len(t, second.Reminders, 1)
}

func TestGenerateForVehicle_VehicleNotFound(t *testing.T) {
	svc := newTestService(&fakeReminderRepo{}, &fakeVehicleGetter{})

	_, err := svc.GenerateForVehicle(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestComplete_NotFound(t *testing.T) {
	svc := newTestService(&fakeReminderRepo{}, &fakeVehicleGetter{})

	err := svc.Complete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestListIncomplete_FiltersByVehicle(t *testing.T) {
	repo := &fakeReminderRepo{
		reminders: []*domain.ServiceReminder{
			{ID: "r-1", VehicleID: "vehicle-1", Title: "A", DueDate: genNow},
			{ID: "r-2", VehicleID: "vehicle-2", Title: "B", DueDate: genNow},
			{ID: "r-3", VehicleID: "vehicle-1", Title: "C", DueDate: genNow, Completed: true},
		},
	}
	svc := newTestService(repo, &fakeVehicleGetter{})

	resp, err := svc.ListIncomplete(context.Background(), ptr.Ptr("vehicle-1"))
	require.NoError(t, err)

	require.Len(t, resp.Reminders, 1)
	assert.Equal(t, "r-1", resp.Reminders[0].ID)
}

func TestCleanupCompleted(t *testing.T) {
	repo := &fakeReminderRepo{
		reminders: []*domain.ServiceReminder{
			{ID: "r-1", VehicleID: "vehicle-1", Completed: true},
			{ID: "r-2", VehicleID: "vehicle-1", Completed: true},
			{ID: "r-3", VehicleID: "vehicle-1"},
		},
	}
	svc := newTestService(repo, &fakeVehicleGetter{})

	resp, err := svc.CleanupCompleted(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Deleted)
	assert.Len(t, repo.reminders, 1)
}
