package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from BookingStatus
		to   BookingStatus
	}{
		{StatusScheduled, StatusConfirmed},
		{StatusScheduled, StatusCancelled},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusCancelled},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
	}

	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s must be allowed", tc.from, tc.to)
	}

	forbidden := []struct {
		from BookingStatus
		to   BookingStatus
	}{
		{StatusScheduled, StatusInProgress},
		{StatusScheduled, StatusCompleted},
		{StatusConfirmed, StatusCompleted},
		{StatusCompleted, StatusScheduled},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusScheduled},
		{StatusCancelled, StatusConfirmed},
	}

	for _, tc := range forbidden {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s must be forbidden", tc.from, tc.to)
	}
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	for _, terminal := range []BookingStatus{StatusCompleted, StatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, to := range []BookingStatus{StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled} {
			assert.False(t, CanTransition(terminal, to), "%s -> %s must be forbidden", terminal, to)
		}
	}
}

func TestBookingStatusIsValid(t *testing.T) {
	for _, s := range []BookingStatus{StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, BookingStatus("pending").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestIsSameCalendarDay(t *testing.T) {
	b := &ServiceBooking{
		ScheduledDate: time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC),
	}

	// Разница только во времени суток - всё равно тот же день
	assert.True(t, b.IsSameCalendarDay(time.Date(2026, 9, 15, 18, 30, 0, 0, time.UTC)))
	assert.False(t, b.IsSameCalendarDay(time.Date(2026, 9, 16, 9, 0, 0, 0, time.UTC)))
	assert.False(t, b.IsSameCalendarDay(time.Date(2027, 9, 15, 9, 0, 0, 0, time.UTC)))
}

func TestIsActive(t *testing.T) {
	active := []BookingStatus{StatusScheduled, StatusConfirmed, StatusInProgress}
	for _, s := range active {
		b := &ServiceBooking{Status: s}
		assert.True(t, b.IsActive(), "status %s must be active", s)
	}

	for _, s := range []BookingStatus{StatusCompleted, StatusCancelled} {
		b := &ServiceBooking{Status: s}
		assert.False(t, b.IsActive(), "status %s must not be active", s)
	}
}
