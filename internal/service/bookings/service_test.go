package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-GarageService/internal/service/bookings/models"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
)

var svcNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return svcNow }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[string]*domain.ServiceBooking

	updatedID            string
	updatedStatus        domain.BookingStatus
	updatedActualCost    *float64
	updatedCompletedDate *time.Time
}

func newFakeBookingRepo(bookings ...*domain.ServiceBooking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*domain.ServiceBooking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*domain.ServiceBooking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) List(ctx context.Context, vehicleID *string, status *domain.BookingStatus) ([]*domain.ServiceBooking, error) {
	var out []*domain.ServiceBooking
	for _, b := range r.bookings {
		if vehicleID != nil && b.VehicleID != *vehicleID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, actualCost *float64, completedDate *time.Time, updatedAt time.Time) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	r.updatedID = id
	r.updatedStatus = status
	r.updatedActualCost = actualCost
	r.updatedCompletedDate = completedDate
	return nil
}

func newTestService(repo *fakeBookingRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedTime{}
	return svc
}

func testBooking(status domain.BookingStatus) *domain.ServiceBooking {
	return &domain.ServiceBooking{
		ID:            "booking-1",
		VehicleID:     "vehicle-1",
		ServiceTypeID: ptr.Ptr("st-full"),
		ScheduledDate: svcNow.AddDate(0, 0, 3),
		Status:        status,
		EstimatedCost: 120,
		CreatedAt:     svcNow.AddDate(0, 0, -1),
		UpdatedAt:     svcNow.AddDate(0, 0, -1),
	}
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(domain.StatusScheduled))
	svc := newTestService(repo)

	resp, err := svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{
		Status: string(domain.StatusConfirmed),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
	assert.Nil(t, repo.updatedActualCost)
	assert.True(t, resp.UpdatedAt.Equal(svcNow))
}

func TestUpdateStatus_ForbiddenTransition(t *testing.T) {
	cases := []struct {
		from domain.BookingStatus
		to   domain.BookingStatus
	}{
		{domain.StatusCompleted, domain.StatusConfirmed},
		{domain.StatusScheduled, domain.StatusInProgress},
		{domain.StatusScheduled, domain.StatusCompleted},
		{domain.StatusCancelled, domain.StatusScheduled},
		{domain.StatusConfirmed, domain.StatusCompleted},
	}

	for _, tc := range cases {
		repo := newFakeBookingRepo(testBooking(tc.from))
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{
			Status: string(tc.to),
		})
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		assert.Empty(t, repo.updatedID, "%s -> %s must not touch the repository", tc.from, tc.to)
	}
}

func TestUpdateStatus_CompletedRequiresActualCost(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(domain.StatusInProgress))
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{
		Status: string(domain.StatusCompleted),
	})
	assert.ErrorIs(t, err, ErrActualCostRequired)

	_, err = svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{
		Status:     string(domain.StatusCompleted),
		ActualCost: ptr.Ptr(-10.0),
	})
	assert.ErrorIs(t, err, ErrActualCostRequired)
}

func TestUpdateStatus_CompletedDefaultsCompletedDate(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(domain.StatusInProgress))
	svc := newTestService(repo)

	resp, err := svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{
		Status:     string(domain.StatusCompleted),
		ActualCost: ptr.Ptr(135.50),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CompletedDate)
	assert.True(t, resp.CompletedDate.Equal(svcNow))
	require.NotNil(t, resp.ActualCost)
	assert.Equal(t, 135.50, *resp.ActualCost)

	require.NotNil(t, repo.updatedCompletedDate)
	assert.True(t, repo.updatedCompletedDate.Equal(svcNow))
}

func TestUpdateStatus_CompletedKeepsExplicitDate(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(domain.StatusInProgress))
	svc := newTestService(repo)

	completed := svcNow.AddDate(0, 0, -1)
	resp, err := svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{
		Status:        string(domain.StatusCompleted),
		ActualCost:    ptr.Ptr(99.0),
		CompletedDate: &completed,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CompletedDate)
	assert.True(t, resp.CompletedDate.Equal(completed))
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(domain.StatusScheduled))
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{
		Status: "pending",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_BookingNotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	_, err := svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{
		Status: string(domain.StatusConfirmed),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	for _, from := range []domain.BookingStatus{domain.StatusScheduled, domain.StatusConfirmed, domain.StatusInProgress} {
		repo := newFakeBookingRepo(testBooking(from))
		svc := newTestService(repo)

		resp, err := svc.Cancel(context.Background(), "booking-1")
		require.NoError(t, err, "cancel from %s", from)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	}
}

func TestCancel_TerminalStatus(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(domain.StatusCompleted))
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), "booking-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("pending")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_FiltersByVehicleAndStatus(t *testing.T) {
	b1 := testBooking(domain.StatusScheduled)
	b2 := testBooking(domain.StatusCompleted)
	b2.ID = "booking-2"
	b3 := testBooking(domain.StatusScheduled)
	b3.ID = "booking-3"
	b3.VehicleID = "vehicle-2"

	svc := newTestService(newFakeBookingRepo(b1, b2, b3))

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		VehicleID: ptr.Ptr("vehicle-1"),
		Status:    ptr.Ptr(string(domain.StatusScheduled)),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "booking-1", resp.Bookings[0].ID)
}
