package request

import (
	"fmt"
	"time"

	"basecampus-api/internal/domain/booking"

	"github.com/google/uuid"
)

// SessionInput is one schedule row as the editor submits it: a date plus
// wall-clock start and end times, interpreted in the platform timezone.
type SessionInput struct {
	Date      string     `json:"date" binding:"required"`
	StartTime string     `json:"start_time" binding:"required"`
	EndTime   string     `json:"end_time" binding:"required"`
	RoomID    *uuid.UUID `json:"room_id,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// ToSlot combines date and times into a concrete slot. The returned
// error names the offending session so a batch failure is actionable.
func (s SessionInput) ToSlot(loc *time.Location) (booking.TimeSlot, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", s.Date+" "+s.StartTime, loc)
	if err != nil {
		return booking.TimeSlot{}, fmt.Errorf("session %s %s: invalid start time", s.Date, s.StartTime)
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", s.Date+" "+s.EndTime, loc)
	if err != nil {
		return booking.TimeSlot{}, fmt.Errorf("session %s %s: invalid end time", s.Date, s.EndTime)
	}

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return booking.TimeSlot{}, fmt.Errorf("session %s %s: %w", s.Date, s.StartTime, err)
	}
	return slot, nil
}

func (s SessionInput) NotesValue() booking.Notes {
	if s.Notes == nil {
		return booking.NewNotes("")
	}
	return booking.NewNotes(*s.Notes)
}

// An empty session list is valid for a replace: it clears the whole
// schedule, so "required" would reject a legitimate request here.
type ReplaceScheduleRequest struct {
	Sessions []SessionInput `json:"sessions" binding:"dive"`
}

type AddSessionsRequest struct {
	Sessions []SessionInput `json:"sessions" binding:"required,min=1,dive"`
}
