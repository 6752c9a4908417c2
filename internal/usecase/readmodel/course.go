package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CourseRM struct {
	ID              uuid.UUID  `json:"id"`
	MentorID        uuid.UUID  `json:"mentor_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	PriceCents      int64      `json:"price_cents"`
	Modality        string     `json:"modality"`
	IsLive          bool       `json:"is_live"`
	IsPublished     bool       `json:"is_published"`
	MaxStudents     *int32     `json:"max_students,omitempty"`
	Address         string     `json:"address,omitempty"`
	MeetingPlatform string     `json:"meeting_platform,omitempty"`
	RoomID          *uuid.UUID `json:"room_id,omitempty"`
	ScheduleInfo    string     `json:"schedule_info"`
	ImageURL        string     `json:"image_url,omitempty"`
	LogoURL         string     `json:"logo_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ModuleRM struct {
	ID           uuid.UUID `json:"id"`
	CourseID     uuid.UUID `json:"course_id"`
	Title        string    `json:"title"`
	Position     int32     `json:"position"`
	InstructorID *uuid.UUID `json:"instructor_id,omitempty"`
}

type LessonRM struct {
	ID       uuid.UUID `json:"id"`
	ModuleID uuid.UUID `json:"module_id"`
	Title    string    `json:"title"`
	Content  string    `json:"content,omitempty"`
	VideoURL string    `json:"video_url,omitempty"`
	Position int32     `json:"position"`
}

type StudentProgressRM struct {
	UserID             uuid.UUID `json:"user_id"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	AvatarURL          string    `json:"avatar_url,omitempty"`
	EnrolledAt         time.Time `json:"enrolled_at"`
	CompletedLessons   int64     `json:"completed_lessons"`
	TotalLessons       int64     `json:"total_lessons"`
	ProgressPercentage float64   `json:"progress_percentage"`
	AverageQuizGrade   *float64  `json:"average_quiz_grade,omitempty"`
}
