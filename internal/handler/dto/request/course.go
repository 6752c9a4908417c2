package request

import (
	"basecampus-api/internal/domain/course"

	"github.com/google/uuid"
)

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	Modality    string `json:"modality" binding:"required"`
	IsLive      bool   `json:"is_live"`
}

func (r CreateCourseRequest) ToDomain(mentorID uuid.UUID) (*course.Course, error) {
	return course.NewCourse(mentorID, r.Title, r.Description, r.PriceCents, course.Modality(r.Modality), r.IsLive)
}

type UpdateCourseRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	PriceCents      int64      `json:"price_cents" binding:"min=0"`
	Modality        string     `json:"modality" binding:"required"`
	IsLive          bool       `json:"is_live"`
	MaxStudents     *int32     `json:"max_students,omitempty"`
	Address         string     `json:"address"`
	MeetingPlatform string     `json:"meeting_platform"`
	RoomID          *uuid.UUID `json:"room_id,omitempty"`
	ImageURL        string     `json:"image_url"`
	LogoURL         string     `json:"logo_url"`
}

func (r UpdateCourseRequest) ToPatch() course.Patch {
	return course.Patch{
		Title:           r.Title,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		Modality:        course.Modality(r.Modality),
		IsLive:          r.IsLive,
		MaxStudents:     r.MaxStudents,
		Address:         r.Address,
		MeetingPlatform: r.MeetingPlatform,
		RoomID:          r.RoomID,
		ImageURL:        r.ImageURL,
		LogoURL:         r.LogoURL,
	}
}

type PublishCourseRequest struct {
	Published bool `json:"published"`
}

type CreateModuleRequest struct {
	Title        string     `json:"title" binding:"required"`
	Position     int32      `json:"position" binding:"min=0"`
	InstructorID *uuid.UUID `json:"instructor_id,omitempty"`
}

type UpdateModuleRequest struct {
	Title        string     `json:"title" binding:"required"`
	Position     int32      `json:"position" binding:"min=0"`
	InstructorID *uuid.UUID `json:"instructor_id,omitempty"`
}

type CreateLessonRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url"`
	Position int32  `json:"position" binding:"min=0"`
}

type UpdateLessonRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url"`
	Position int32  `json:"position" binding:"min=0"`
}
