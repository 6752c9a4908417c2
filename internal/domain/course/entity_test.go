//go:build unit

package course_test

import (
	"strings"
	"testing"

	"basecampus-api/internal/domain/course"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse(t *testing.T) {
	mentorID := uuid.New()

	t.Run("valid course", func(t *testing.T) {
		c, err := course.NewCourse(mentorID, "  Go Basics  ", "intro", 4900, course.ModalityOnline, false)
		require.NoError(t, err)
		assert.Equal(t, "Go Basics", c.Title())
		assert.Equal(t, mentorID, c.MentorID())
		assert.False(t, c.IsPublished())
		assert.Equal(t, "", c.ScheduleInfo())
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := course.NewCourse(mentorID, "   ", "", 0, course.ModalityOnline, false)
		assert.ErrorIs(t, err, course.ErrEmptyTitle)
	})

	t.Run("title too long", func(t *testing.T) {
		_, err := course.NewCourse(mentorID, strings.Repeat("a", course.MaxTitleLength+1), "", 0, course.ModalityOnline, false)
		assert.ErrorIs(t, err, course.ErrTitleTooLong)
	})

	t.Run("invalid modality", func(t *testing.T) {
		_, err := course.NewCourse(mentorID, "Go Basics", "", 0, course.Modality("remote"), false)
		assert.ErrorIs(t, err, course.ErrInvalidModality)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := course.NewCourse(mentorID, "Go Basics", "", -1, course.ModalityOnline, false)
		assert.ErrorIs(t, err, course.ErrNegativePrice)
	})
}

func TestIsOnlineLive(t *testing.T) {
	mentorID := uuid.New()

	tests := []struct {
		name     string
		modality course.Modality
		isLive   bool
		want     bool
	}{
		{name: "online live", modality: course.ModalityOnline, isLive: true, want: true},
		{name: "online recorded", modality: course.ModalityOnline, isLive: false, want: false},
		{name: "in-person live", modality: course.ModalityInPerson, isLive: true, want: false},
		{name: "hybrid live", modality: course.ModalityHybrid, isLive: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := course.NewCourse(mentorID, "Go Basics", "", 0, tt.modality, tt.isLive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.IsOnlineLive())
		})
	}
}

func TestApplyPatch(t *testing.T) {
	mentorID := uuid.New()
	roomID := uuid.New()

	newCourse := func(t *testing.T) *course.Course {
		c, err := course.NewCourse(mentorID, "Go Basics", "intro", 4900, course.ModalityOnline, false)
		require.NoError(t, err)
		return c
	}

	t.Run("patch replaces mutable fields", func(t *testing.T) {
		c := newCourse(t)
		max := int32(20)
		err := c.ApplyPatch(course.Patch{
			Title:           "Advanced Go",
			Description:     "deep dive",
			PriceCents:      9900,
			Modality:        course.ModalityHybrid,
			IsLive:          true,
			MaxStudents:     &max,
			Address:         "Av. Arequipa 123",
			MeetingPlatform: "zoom",
			RoomID:          &roomID,
			ImageURL:        "https://cdn.example.com/img.png",
		})
		require.NoError(t, err)

		assert.Equal(t, "Advanced Go", c.Title())
		assert.Equal(t, int64(9900), c.PriceCents())
		assert.Equal(t, course.ModalityHybrid, c.Modality())
		assert.Equal(t, int32(20), *c.MaxStudents())
		assert.Equal(t, roomID, *c.RoomID())
	})

	t.Run("patch keeps ownership and publication state", func(t *testing.T) {
		c := newCourse(t)
		err := c.ApplyPatch(course.Patch{Title: "x", Modality: course.ModalityOnline})
		require.NoError(t, err)
		assert.Equal(t, mentorID, c.MentorID())
		assert.False(t, c.IsPublished())
	})

	t.Run("patch validation", func(t *testing.T) {
		c := newCourse(t)
		assert.ErrorIs(t, c.ApplyPatch(course.Patch{Title: "", Modality: course.ModalityOnline}), course.ErrEmptyTitle)
		assert.ErrorIs(t, c.ApplyPatch(course.Patch{Title: "x", Modality: course.Modality("bad")}), course.ErrInvalidModality)
		assert.ErrorIs(t, c.ApplyPatch(course.Patch{Title: "x", Modality: course.ModalityOnline, PriceCents: -5}), course.ErrNegativePrice)
	})
}
