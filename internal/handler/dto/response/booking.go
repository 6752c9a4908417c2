package response

import (
	"time"

	"basecampus-api/internal/domain/booking"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	CourseID  *uuid.UUID `json:"courseId,omitempty"`
	RoomID    *uuid.UUID `json:"roomId,omitempty"`
	StartTime time.Time  `json:"startTime"`
	EndTime   time.Time  `json:"endTime"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID(),
		UserID:    b.UserID(),
		CourseID:  b.CourseID(),
		RoomID:    b.RoomID(),
		StartTime: b.Slot().Start(),
		EndTime:   b.Slot().End(),
		Status:    b.Status().String(),
		Notes:     b.Notes().String(),
	}
}

type BookingListResponse struct {
	ID          uuid.UUID  `json:"id"`
	CourseID    *uuid.UUID `json:"courseId,omitempty"`
	CourseTitle *string    `json:"courseTitle,omitempty"`
	RoomID      *uuid.UUID `json:"roomId,omitempty"`
	RoomName    *string    `json:"roomName,omitempty"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     time.Time  `json:"endTime"`
	Status      string     `json:"status"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingListResponse {
	var resp BookingListResponse
	mapRM(&resp, rm)
	return &resp
}

type SessionResponse struct {
	ID        uuid.UUID  `json:"id"`
	Date      string     `json:"date"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	RoomID    *uuid.UUID `json:"roomId,omitempty"`
	Status    string     `json:"status"`
}

func FromSessionRM(rm *readmodel.SessionRM) *SessionResponse {
	return &SessionResponse{
		ID:        rm.BookingID,
		Date:      rm.Date,
		StartTime: rm.StartTime,
		EndTime:   rm.EndTime,
		RoomID:    rm.RoomID,
		Status:    rm.Status,
	}
}

type RoomResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MinCapacity     int32     `json:"minCapacity"`
	MaxCapacity     int32     `json:"maxCapacity"`
	HourlyRateCents int64     `json:"hourlyRateCents"`
}

func FromRoomRM(rm *readmodel.RoomRM) *RoomResponse {
	var resp RoomResponse
	mapRM(&resp, rm)
	return &resp
}

type QuotaResponse struct {
	LimitHours     float64 `json:"limitHours"`
	UsedHours      float64 `json:"usedHours"`
	RemainingHours float64 `json:"remainingHours"`
}

func FromQuotaRM(rm *readmodel.QuotaRM) *QuotaResponse {
	remaining := rm.LimitHours - rm.UsedHours
	if remaining < 0 {
		remaining = 0
	}
	return &QuotaResponse{
		LimitHours:     rm.LimitHours,
		UsedHours:      rm.UsedHours,
		RemainingHours: remaining,
	}
}
