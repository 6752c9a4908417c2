package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingRM struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	CourseID    *uuid.UUID `json:"course_id,omitempty"`
	CourseTitle *string    `json:"course_title,omitempty"`
	RoomID      *uuid.UUID `json:"room_id,omitempty"`
	RoomName    *string    `json:"room_name,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Status      string     `json:"status"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SessionRM is the editable form of one schedule row, as the schedule
// editor consumes it (date and wall-clock times split apart).
type SessionRM struct {
	BookingID uuid.UUID  `json:"id"`
	Date      string     `json:"date"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
	RoomID    *uuid.UUID `json:"room_id,omitempty"`
	Status    string     `json:"status"`
}

type RoomRM struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MinCapacity     int32     `json:"min_capacity"`
	MaxCapacity     int32     `json:"max_capacity"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type QuotaRM struct {
	LimitHours float64 `json:"limit_hours"`
	UsedHours  float64 `json:"used_hours"`
}
