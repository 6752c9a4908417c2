package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingRoom   = errors.New("a room is required for in-person sessions")
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Booking is one scheduled time block for a room (or an online session
// with no room). Created pending; only an online-live course session is
// born confirmed, since there is no physical room to contend for.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	courseID  *uuid.UUID
	roomID    *uuid.UUID
	slot      TimeSlot
	status    Status
	notes     Notes
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(userID uuid.UUID, courseID *uuid.UUID, roomID uuid.UUID, slot TimeSlot, notes Notes) (*Booking, error) {
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}

	rid := roomID
	return &Booking{
		id:       uuid.New(),
		userID:   userID,
		courseID: courseID,
		roomID:   &rid,
		slot:     slot,
		status:   StatusPending,
		notes:    notes,
	}, nil
}

// NewCourseSession builds one booking row of a course schedule.
// Online-live sessions carry no room and are auto-confirmed; everything
// else requests a room and waits in pending.
func NewCourseSession(userID, courseID uuid.UUID, roomID *uuid.UUID, slot TimeSlot, notes Notes, onlineLive bool) (*Booking, error) {
	b := &Booking{
		id:       uuid.New(),
		userID:   userID,
		courseID: &courseID,
		slot:     slot,
		notes:    notes,
	}

	if onlineLive {
		b.status = StatusConfirmed
		b.roomID = nil
		return b, nil
	}

	if roomID == nil || *roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	b.status = StatusPending
	b.roomID = roomID
	return b, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	courseID, roomID *uuid.UUID,
	slot TimeSlot,
	status Status,
	notes Notes,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		courseID:  courseID,
		roomID:    roomID,
		slot:      slot,
		status:    status,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ApplyEdit replaces the mutable fields of a booking. Any edit drops the
// booking back to pending: a previously granted confirmation does not
// survive a change of room or time.
func (b *Booking) ApplyEdit(roomID uuid.UUID, slot TimeSlot, notes Notes) error {
	if roomID == uuid.Nil {
		return ErrMissingRoom
	}

	rid := roomID
	b.roomID = &rid
	b.slot = slot
	b.notes = notes
	b.status = StatusPending
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) CourseID() *uuid.UUID { return b.courseID }
func (b *Booking) RoomID() *uuid.UUID   { return b.roomID }
func (b *Booking) Slot() TimeSlot       { return b.slot }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Notes() Notes         { return b.notes }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
