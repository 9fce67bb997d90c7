package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
	"github.com/TPD2004/kenton-car-wash/pkg/types"
)

// testSchedule Пн-Пт 8-17, Сб 8-12, Вс выходной
func testSchedule() domain.WeeklySchedule {
	return domain.DefaultWeeklySchedule()
}

func TestGenerateDailySlots(t *testing.T) {
	schedule := testSchedule()

	t.Run("weekday produces hourly slots up to but excluding closing hour", func(t *testing.T) {
		// 2026-09-02 - среда
		wednesday := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
		require.Equal(t, time.Wednesday, wednesday.Weekday())

		slots := GenerateDailySlots(wednesday, schedule)

		require.Len(t, slots, 9)
		assert.Equal(t, types.TimeString("08:00"), slots[0])
		assert.Equal(t, types.TimeString("16:00"), slots[8])
		for _, s := range slots {
			assert.NotEqual(t, types.TimeString("17:00"), s)
		}
	})

	t.Run("saturday has short schedule", func(t *testing.T) {
		saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
		require.Equal(t, time.Saturday, saturday.Weekday())

		slots := GenerateDailySlots(saturday, schedule)

		assert.Equal(t, []types.TimeString{"08:00", "09:00", "10:00", "11:00"}, slots)
	})

	t.Run("sunday is closed - empty list, not nil panic", func(t *testing.T) {
		sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
		require.Equal(t, time.Sunday, sunday.Weekday())

		slots := GenerateDailySlots(sunday, schedule)

		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("deterministic for the same date and schedule", func(t *testing.T) {
		monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

		first := GenerateDailySlots(monday, schedule)
		second := GenerateDailySlots(monday, schedule)

		assert.Equal(t, first, second)
	})

	t.Run("zero-length interval behaves as closed", func(t *testing.T) {
		var custom domain.WeeklySchedule
		custom[time.Monday] = &domain.OpeningHours{StartHour: 10, EndHour: 10}
		monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

		assert.Empty(t, GenerateDailySlots(monday, custom))
	})

	t.Run("labels are zero-padded", func(t *testing.T) {
		var custom domain.WeeklySchedule
		custom[time.Monday] = &domain.OpeningHours{StartHour: 7, EndHour: 10}
		monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

		slots := GenerateDailySlots(monday, custom)

		assert.Equal(t, []types.TimeString{"07:00", "08:00", "09:00"}, slots)
	})
}

func TestMarkAvailability(t *testing.T) {
	candidates := []types.TimeString{"08:00", "09:00", "10:00", "11:00"}

	t.Run("no bookings - everything available", func(t *testing.T) {
		slots := MarkAvailability(candidates, BuildBookedSet(nil))

		require.Len(t, slots, 4)
		for _, s := range slots {
			assert.True(t, s.Available)
		}
	})

	t.Run("booked labels become unavailable, order and length preserved", func(t *testing.T) {
		booked := BuildBookedSet([]types.TimeString{"09:00", "11:00"})

		slots := MarkAvailability(candidates, booked)

		require.Len(t, slots, 4)
		assert.Equal(t, Slot{StartTime: "08:00", Available: true}, slots[0])
		assert.Equal(t, Slot{StartTime: "09:00", Available: false}, slots[1])
		assert.Equal(t, Slot{StartTime: "10:00", Available: true}, slots[2])
		assert.Equal(t, Slot{StartTime: "11:00", Available: false}, slots[3])
	})

	t.Run("comparison is exact string match", func(t *testing.T) {
		// "9:00" без ведущего нуля не должен блокировать слот "09:00"
		booked := BuildBookedSet([]types.TimeString{"9:00"})

		slots := MarkAvailability(candidates, booked)

		assert.True(t, slots[1].Available)
	})

	t.Run("booked label outside the schedule is ignored", func(t *testing.T) {
		booked := BuildBookedSet([]types.TimeString{"22:00"})

		slots := MarkAvailability(candidates, booked)

		for _, s := range slots {
			assert.True(t, s.Available)
		}
	})
}

func TestResponse_AvailableOnly(t *testing.T) {
	resp := &Response{
		Slots: []Slot{
			{StartTime: "08:00", Available: true},
			{StartTime: "09:00", Available: false},
			{StartTime: "10:00", Available: true},
		},
	}

	free := resp.AvailableOnly()

	require.Len(t, free, 2)
	assert.Equal(t, types.TimeString("08:00"), free[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), free[1].StartTime)
}
