//go:build unit

package booking_test

import (
	"testing"
	"time"

	"basecampus-api/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	slot := mustSlot(t,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
	)
	userID := uuid.New()
	roomID := uuid.New()

	t.Run("created pending", func(t *testing.T) {
		b, err := booking.NewBooking(userID, nil, roomID, slot, booking.NewNotes(""))
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, roomID, *b.RoomID())
		assert.Nil(t, b.CourseID())
		assert.True(t, b.IsOwnedBy(userID))
	})

	t.Run("room required", func(t *testing.T) {
		_, err := booking.NewBooking(userID, nil, uuid.Nil, slot, booking.NewNotes(""))
		assert.ErrorIs(t, err, booking.ErrMissingRoom)
	})
}

func TestNewCourseSession(t *testing.T) {
	slot := mustSlot(t,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
	)
	userID := uuid.New()
	courseID := uuid.New()
	roomID := uuid.New()

	t.Run("online live session is roomless and confirmed", func(t *testing.T) {
		b, err := booking.NewCourseSession(userID, courseID, &roomID, slot, booking.NewNotes(""), true)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Nil(t, b.RoomID())
		assert.Equal(t, courseID, *b.CourseID())
	})

	t.Run("in-person session waits in pending", func(t *testing.T) {
		b, err := booking.NewCourseSession(userID, courseID, &roomID, slot, booking.NewNotes(""), false)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, roomID, *b.RoomID())
	})

	t.Run("in-person session requires a room", func(t *testing.T) {
		_, err := booking.NewCourseSession(userID, courseID, nil, slot, booking.NewNotes(""), false)
		assert.ErrorIs(t, err, booking.ErrMissingRoom)

		nilRoom := uuid.Nil
		_, err = booking.NewCourseSession(userID, courseID, &nilRoom, slot, booking.NewNotes(""), false)
		assert.ErrorIs(t, err, booking.ErrMissingRoom)
	})
}

func TestApplyEdit(t *testing.T) {
	slot := mustSlot(t,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
	)
	userID := uuid.New()
	roomID := uuid.New()

	t.Run("edit drops confirmation back to pending", func(t *testing.T) {
		b := booking.ReconstructBooking(
			uuid.New(), userID, nil, &roomID, slot,
			booking.StatusConfirmed, booking.NewNotes(""),
			time.Now(), time.Now(),
		)

		newSlot := mustSlot(t, slot.Start().Add(time.Hour), slot.End().Add(time.Hour))
		newRoom := uuid.New()
		require.NoError(t, b.ApplyEdit(newRoom, newSlot, booking.NewNotes("moved")))

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, newRoom, *b.RoomID())
		assert.Equal(t, newSlot, b.Slot())
		assert.Equal(t, "moved", b.Notes().String())
	})

	t.Run("edit requires a room", func(t *testing.T) {
		b, err := booking.NewBooking(userID, nil, roomID, slot, booking.NewNotes(""))
		require.NoError(t, err)
		assert.ErrorIs(t, b.ApplyEdit(uuid.Nil, slot, booking.NewNotes("")), booking.ErrMissingRoom)
	})
}

func TestIsCancelled(t *testing.T) {
	slot := mustSlot(t,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
	)
	roomID := uuid.New()
	b := booking.ReconstructBooking(
		uuid.New(), uuid.New(), nil, &roomID, slot,
		booking.StatusCancelled, booking.NewNotes(""),
		time.Now(), time.Now(),
	)
	assert.True(t, b.IsCancelled())
}
