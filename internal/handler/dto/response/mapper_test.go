//go:build unit

package response

import (
	"testing"
	"time"

	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMapRM(t *testing.T) {
	t.Run("copies every matching field of a read model", func(t *testing.T) {
		maxStudents := int32(20)
		roomID := uuid.New()
		rm := &readmodel.CourseRM{
			ID:              uuid.New(),
			MentorID:        uuid.New(),
			Title:           "Go Basics",
			Description:     "An introduction",
			PriceCents:      150000,
			Modality:        "hybrid",
			IsLive:          true,
			IsPublished:     true,
			MaxStudents:     &maxStudents,
			Address:         "Av. Larco 123",
			MeetingPlatform: "zoom",
			RoomID:          &roomID,
			ScheduleInfo:    "2025-06-01 (09:00 - 10:30)",
			ImageURL:        "https://example.com/img.png",
			LogoURL:         "https://example.com/logo.png",
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}

		resp := FromCourseRM(rm)

		assert.Equal(t, rm.ID, resp.ID)
		assert.Equal(t, rm.MentorID, resp.MentorID)
		assert.Equal(t, rm.Title, resp.Title)
		assert.Equal(t, rm.Description, resp.Description)
		assert.Equal(t, rm.PriceCents, resp.PriceCents)
		assert.Equal(t, rm.Modality, resp.Modality)
		assert.Equal(t, rm.IsLive, resp.IsLive)
		assert.Equal(t, rm.IsPublished, resp.IsPublished)
		assert.Equal(t, rm.MaxStudents, resp.MaxStudents)
		assert.Equal(t, rm.Address, resp.Address)
		assert.Equal(t, rm.MeetingPlatform, resp.MeetingPlatform)
		assert.Equal(t, rm.RoomID, resp.RoomID)
		assert.Equal(t, rm.ScheduleInfo, resp.ScheduleInfo)
		assert.Equal(t, rm.ImageURL, resp.ImageURL)
		assert.Equal(t, rm.LogoURL, resp.LogoURL)
	})

	t.Run("does not panic on a mismatched pair", func(t *testing.T) {
		var dst struct{ Title int }
		assert.NotPanics(t, func() {
			mapRM(&dst, &readmodel.CourseRM{Title: "Go Basics"})
		})
	})
}
