//go:build unit || e2e

package builder

import (
	"time"

	dombooking "basecampus-api/internal/domain/booking"
	reqdto "basecampus-api/internal/handler/dto/request"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID    uuid.UUID
	CourseID  *uuid.UUID
	RoomID    uuid.UUID
	RoomName  string
	StartTime time.Time
	EndTime   time.Time
	Notes     string
	Status    string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:    uuid.New(),
		RoomID:    uuid.New(),
		RoomName:  "Sala Miraflores",
		StartTime: time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 12, 11, 0, 0, 0, time.UTC),
		Notes:     "whiteboard needed",
		Status:    string(dombooking.StatusPending),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := dombooking.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.UserID, b.CourseID, b.RoomID, slot, dombooking.NewNotes(b.Notes))
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	notes := b.Notes
	return reqdto.CreateBookingRequest{
		RoomID:    b.RoomID,
		CourseID:  b.CourseID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Notes:     &notes,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	notes := b.Notes
	return reqdto.UpdateBookingRequest{
		RoomID:    b.RoomID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Notes:     &notes,
	}
}

func (b *BookingBuilder) BuildRM() *readmodel.BookingRM {
	now := time.Now()
	roomID := b.RoomID
	roomName := b.RoomName
	notes := b.Notes
	return &readmodel.BookingRM{
		ID:        uuid.New(),
		UserID:    b.UserID,
		CourseID:  b.CourseID,
		RoomID:    &roomID,
		RoomName:  &roomName,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status,
		Notes:     &notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
