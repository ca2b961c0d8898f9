package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
)

type fakeVehicleRepo struct {
	vehicle *domain.Vehicle
	err     error
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, _ string) (*domain.Vehicle, error) {
	return f.vehicle, f.err
}

type fakeServiceTypeRepo struct {
	serviceType *domain.ServiceType
	err         error
}

func (f *fakeServiceTypeRepo) GetByID(_ context.Context, _ string) (*domain.ServiceType, error) {
	return f.serviceType, f.err
}

type fakeBookingRepo struct {
	sameDay []*domain.ServiceBooking
	created *domain.ServiceBooking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.ServiceBooking) (*domain.ServiceBooking, error) {
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) GetByVehicleAndDay(_ context.Context, _ string, _ time.Time) ([]*domain.ServiceBooking, error) {
	return f.sameDay, nil
}

type fakeReminderRepo struct {
	created *domain.ServiceReminder
}

func (f *fakeReminderRepo) Create(_ context.Context, rem *domain.ServiceReminder) (*domain.ServiceReminder, error) {
	f.created = rem
	return rem, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var ucNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(bookings *fakeBookingRepo, reminders *fakeReminderRepo) *UseCase {
	uc := NewUseCase(
		&fakeVehicleRepo{vehicle: &domain.Vehicle{
			ID:       "veh-1",
			Year:     2023,
			Mileage:  30000,
			FuelType: domain.FuelPetrol,
		}},
		&fakeServiceTypeRepo{serviceType: &domain.ServiceType{
			ID:       "st-1",
			Name:     "Full Service",
			PriceMin: 100,
			PriceMax: 200,
		}},
		bookings,
		reminders,
		&fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedTime{t: ucNow}
	return uc
}

func TestExecuteRejectsPastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeReminderRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID:     "veh-1",
		ServiceTypeID: "st-1",
		ScheduledDate: ucNow.Add(-time.Hour),
	})

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecuteRejectsSameDayConflict(t *testing.T) {
	bookings := &fakeBookingRepo{
		sameDay: []*domain.ServiceBooking{
			{ID: "existing", Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(bookings, &fakeReminderRepo{})

	// Конфликт считается по календарному дню независимо от статуса
	_, err := uc.Execute(context.Background(), &Request{
		VehicleID:     "veh-1",
		ServiceTypeID: "st-1",
		ScheduledDate: ucNow.Add(4 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrSameDayConflict)
	assert.Nil(t, bookings.created)
}

func TestExecuteCreatesScheduledBooking(t *testing.T) {
	bookings := &fakeBookingRepo{}
	reminders := &fakeReminderRepo{}
	uc := newTestUseCase(bookings, reminders)

	scheduled := ucNow.AddDate(0, 0, 3)
	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID:     "veh-1",
		ServiceTypeID: "st-1",
		ScheduledDate: scheduled,
		Notes:         ptr.Ptr("check brakes"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.InDelta(t, 100.0, resp.EstimatedCost, 0.001)

	// В пределах недели авто-напоминание не создается
	assert.Nil(t, resp.ReminderID)
	assert.Nil(t, reminders.created)
}

func TestExecuteCreatesReminderForFarBooking(t *testing.T) {
	bookings := &fakeBookingRepo{}
	reminders := &fakeReminderRepo{}
	uc := newTestUseCase(bookings, reminders)

	scheduled := ucNow.AddDate(0, 0, 14)
	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID:     "veh-1",
		ServiceTypeID: "st-1",
		ScheduledDate: scheduled,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.ReminderID)
	require.NotNil(t, reminders.created)

	assert.Equal(t, "veh-1", reminders.created.VehicleID)
	assert.Equal(t, domain.ReminderService, reminders.created.Type)
	assert.False(t, reminders.created.Urgent)
	// Напоминание ставится за два дня до визита
	assert.Equal(t, scheduled.AddDate(0, 0, -2), reminders.created.DueDate)
}

func TestExecuteValidatesInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeReminderRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID:     "",
		ServiceTypeID: "st-1",
		ScheduledDate: ucNow.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		VehicleID:     "veh-1",
		ServiceTypeID: "  ",
		ScheduledDate: ucNow.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
