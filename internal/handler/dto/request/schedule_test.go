//go:build unit

package request_test

import (
	"testing"
	"time"

	"basecampus-api/internal/domain/booking"
	reqdto "basecampus-api/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionInputToSlot(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)

	t.Run("parses date and times in the given location", func(t *testing.T) {
		in := reqdto.SessionInput{Date: "2025-06-01", StartTime: "09:00", EndTime: "10:30"}
		slot, err := in.ToSlot(lima)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, lima), slot.Start())
		assert.Equal(t, time.Date(2025, 6, 1, 10, 30, 0, 0, lima), slot.End())
	})

	t.Run("error names the offending session", func(t *testing.T) {
		in := reqdto.SessionInput{Date: "2025-06-01", StartTime: "9am", EndTime: "10:30"}
		_, err := in.ToSlot(lima)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "session 2025-06-01 9am")
	})

	t.Run("invalid end time", func(t *testing.T) {
		in := reqdto.SessionInput{Date: "2025-06-01", StartTime: "09:00", EndTime: "25:00"}
		_, err := in.ToSlot(lima)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid end time")
	})

	t.Run("end not after start", func(t *testing.T) {
		in := reqdto.SessionInput{Date: "2025-06-01", StartTime: "10:00", EndTime: "09:00"}
		_, err := in.ToSlot(lima)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})
}

func TestSessionInputNotesValue(t *testing.T) {
	assert.True(t, reqdto.SessionInput{}.NotesValue().IsEmpty())

	notes := "bring laptops"
	in := reqdto.SessionInput{Notes: &notes}
	assert.Equal(t, "bring laptops", in.NotesValue().String())
}
