package request

import (
	"strings"
	"time"

	"basecampus-api/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID    uuid.UUID  `json:"room_id" binding:"required"`
	CourseID  *uuid.UUID `json:"course_id,omitempty"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   time.Time  `json:"end_time" binding:"required"`
	Notes     *string    `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToDomain(userID uuid.UUID) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(userID, r.CourseID, r.RoomID, slot, r.notes())
}

func (r CreateBookingRequest) notes() booking.Notes {
	if r.Notes == nil {
		return booking.NewNotes("")
	}
	return booking.NewNotes(strings.TrimSpace(*r.Notes))
}

type UpdateBookingRequest struct {
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Notes     *string   `json:"notes,omitempty"`
}

func (r UpdateBookingRequest) Slot() (booking.TimeSlot, error) {
	return booking.NewTimeSlot(r.StartTime, r.EndTime)
}

func (r UpdateBookingRequest) NotesValue() booking.Notes {
	if r.Notes == nil {
		return booking.NewNotes("")
	}
	return booking.NewNotes(strings.TrimSpace(*r.Notes))
}
