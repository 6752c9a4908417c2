//go:build unit

package course_test

import (
	"testing"
	"time"

	"basecampus-api/internal/domain/booking"
	"basecampus-api/internal/domain/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(t *testing.T, day, startHour, startMin, endHour, endMin int) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(
		time.Date(2025, 6, day, startHour, startMin, 0, 0, time.UTC),
		time.Date(2025, 6, day, endHour, endMin, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return slot
}

func TestBuildScheduleSummary(t *testing.T) {
	t.Run("empty schedule renders empty summary", func(t *testing.T) {
		assert.Equal(t, "", course.BuildScheduleSummary(nil))
		assert.Equal(t, "", course.BuildScheduleSummary([]booking.TimeSlot{}))
	})

	t.Run("single session", func(t *testing.T) {
		slots := []booking.TimeSlot{slotAt(t, 1, 9, 0, 10, 0)}
		assert.Equal(t, "2025-06-01 (09:00 - 10:00)", course.BuildScheduleSummary(slots))
	})

	t.Run("sessions sorted ascending regardless of input order", func(t *testing.T) {
		slots := []booking.TimeSlot{
			slotAt(t, 15, 14, 0, 16, 0),
			slotAt(t, 1, 9, 0, 10, 30),
			slotAt(t, 8, 9, 0, 10, 30),
		}

		want := "2025-06-01 (09:00 - 10:30)\n" +
			"2025-06-08 (09:00 - 10:30)\n" +
			"2025-06-15 (14:00 - 16:00)"
		assert.Equal(t, want, course.BuildScheduleSummary(slots))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		first := slotAt(t, 20, 9, 0, 10, 0)
		second := slotAt(t, 5, 9, 0, 10, 0)
		slots := []booking.TimeSlot{first, second}

		course.BuildScheduleSummary(slots)

		assert.Equal(t, first, slots[0])
		assert.Equal(t, second, slots[1])
	})
}
