//go:build unit

package booking_test

import (
	"testing"
	"time"

	"basecampus-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("valid slot", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(base, base.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, slot.Start())
		assert.Equal(t, base.Add(2*time.Hour), slot.End())
		assert.InDelta(t, 2.0, slot.Hours(), 0.0001)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base.Add(-time.Hour))
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	slot := func(startOffset, endOffset time.Duration) booking.TimeSlot {
		return mustSlot(t, base.Add(startOffset), base.Add(endOffset))
	}

	tests := []struct {
		name string
		a, b booking.TimeSlot
		want bool
	}{
		{
			name: "disjoint slots",
			a:    slot(0, time.Hour),
			b:    slot(2*time.Hour, 3*time.Hour),
			want: false,
		},
		{
			name: "partial overlap",
			a:    slot(0, 2*time.Hour),
			b:    slot(time.Hour, 3*time.Hour),
			want: true,
		},
		{
			name: "contained slot",
			a:    slot(0, 4*time.Hour),
			b:    slot(time.Hour, 2*time.Hour),
			want: true,
		},
		{
			name: "identical slots",
			a:    slot(0, time.Hour),
			b:    slot(0, time.Hour),
			want: true,
		},
		{
			name: "touching endpoints conflict",
			a:    slot(0, time.Hour),
			b:    slot(time.Hour, 2*time.Hour),
			want: true,
		},
		{
			name: "one minute apart",
			a:    slot(0, time.Hour),
			b:    slot(time.Hour+time.Minute, 2*time.Hour),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeSlotWithin(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC)

	t.Run("inside the window", func(t *testing.T) {
		slot := mustSlot(t, from.AddDate(0, 0, 10), from.AddDate(0, 0, 10).Add(time.Hour))
		assert.True(t, slot.Within(from, to))
	})

	t.Run("starting at the window boundary", func(t *testing.T) {
		slot := mustSlot(t, from, from.Add(time.Hour))
		assert.True(t, slot.Within(from, to))
	})

	t.Run("ending past the window", func(t *testing.T) {
		slot := mustSlot(t, to.Add(-30*time.Minute), to.Add(30*time.Minute))
		assert.False(t, slot.Within(from, to))
	})

	t.Run("starting before the window", func(t *testing.T) {
		slot := mustSlot(t, from.Add(-time.Hour), from.Add(time.Hour))
		assert.False(t, slot.Within(from, to))
	})
}

func TestTimeSlotSummary(t *testing.T) {
	slot := mustSlot(t,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
	)
	assert.Equal(t, "2025-06-01 (09:00 - 10:30)", slot.Summary())
}

func TestNotes(t *testing.T) {
	assert.True(t, booking.NewNotes("").IsEmpty())
	assert.False(t, booking.NewNotes("bring projector").IsEmpty())
	assert.Equal(t, "bring projector", booking.NewNotes("bring projector").String())
}
