package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklySchedule_Validate(t *testing.T) {
	t.Run("default schedule is valid", func(t *testing.T) {
		require.NoError(t, DefaultWeeklySchedule().Validate())
	})

	t.Run("all-closed schedule is valid", func(t *testing.T) {
		var closed WeeklySchedule
		require.NoError(t, closed.Validate())
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		var s WeeklySchedule
		s[time.Monday] = &OpeningHours{StartHour: 17, EndHour: 8}
		require.Error(t, s.Validate())
	})

	t.Run("hours out of range are rejected", func(t *testing.T) {
		var s WeeklySchedule
		s[time.Monday] = &OpeningHours{StartHour: 8, EndHour: 25}
		require.Error(t, s.Validate())
	})
}

func TestWeeklySchedule_HoursFor(t *testing.T) {
	s := DefaultWeeklySchedule()

	assert.Nil(t, s.HoursFor(time.Sunday))

	wed := s.HoursFor(time.Wednesday)
	require.NotNil(t, wed)
	assert.Equal(t, 8, wed.StartHour)
	assert.Equal(t, 17, wed.EndHour)

	sat := s.HoursFor(time.Saturday)
	require.NotNil(t, sat)
	assert.Equal(t, 12, sat.EndHour)
}

func TestFindService(t *testing.T) {
	t.Run("known services resolve with catalog price", func(t *testing.T) {
		svc, ok := FindService("Car", "Express Wash")
		require.True(t, ok)
		assert.Equal(t, 150.0, svc.Price)

		svc, ok = FindService("Boat", "Full Deck & Hull")
		require.True(t, ok)
		assert.Equal(t, 1500.0, svc.Price)
	})

	t.Run("lookup is exact per category", func(t *testing.T) {
		// Услуга существует, но в другой категории
		_, ok := FindService("Boat", "Express Wash")
		assert.False(t, ok)

		_, ok = FindService("Car", "Unknown")
		assert.False(t, ok)
	})
}

func TestBookingStatus(t *testing.T) {
	t.Run("only confirmed blocks a slot", func(t *testing.T) {
		assert.True(t, (&Booking{Status: StatusConfirmed}).BlocksSlot())
		assert.False(t, (&Booking{Status: StatusPending}).BlocksSlot())
		assert.False(t, (&Booking{Status: StatusCancelled}).BlocksSlot())
	})

	t.Run("parse known statuses", func(t *testing.T) {
		for _, s := range []string{"pending", "confirmed", "cancelled"} {
			parsed, ok := ParseBookingStatus(s)
			require.True(t, ok)
			assert.Equal(t, s, string(parsed))
		}
	})

	t.Run("parse rejects unknown status", func(t *testing.T) {
		_, ok := ParseBookingStatus("done")
		require.False(t, ok)
	})
}
