package response

import (
	"time"

	"basecampus-api/internal/domain/course"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CourseResponse struct {
	ID              uuid.UUID  `json:"id"`
	MentorID        uuid.UUID  `json:"mentorId"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	PriceCents      int64      `json:"priceCents"`
	Modality        string     `json:"modality"`
	IsLive          bool       `json:"isLive"`
	IsPublished     bool       `json:"isPublished"`
	MaxStudents     *int32     `json:"maxStudents,omitempty"`
	Address         string     `json:"address,omitempty"`
	MeetingPlatform string     `json:"meetingPlatform,omitempty"`
	RoomID          *uuid.UUID `json:"roomId,omitempty"`
	ScheduleInfo    string     `json:"scheduleInfo"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	LogoURL         string     `json:"logoUrl,omitempty"`
}

func FromCourse(c *course.Course) *CourseResponse {
	return &CourseResponse{
		ID:              c.ID(),
		MentorID:        c.MentorID(),
		Title:           c.Title(),
		Description:     c.Description(),
		PriceCents:      c.PriceCents(),
		Modality:        c.Modality().String(),
		IsLive:          c.IsLive(),
		IsPublished:     c.IsPublished(),
		MaxStudents:     c.MaxStudents(),
		Address:         c.Address(),
		MeetingPlatform: c.MeetingPlatform(),
		RoomID:          c.RoomID(),
		ScheduleInfo:    c.ScheduleInfo(),
		ImageURL:        c.ImageURL(),
		LogoURL:         c.LogoURL(),
	}
}

func FromCourseRM(rm *readmodel.CourseRM) *CourseResponse {
	var resp CourseResponse
	mapRM(&resp, rm)
	return &resp
}

type ModuleResponse struct {
	ID           uuid.UUID  `json:"id"`
	CourseID     uuid.UUID  `json:"courseId"`
	Title        string     `json:"title"`
	Position     int32      `json:"position"`
	InstructorID *uuid.UUID `json:"instructorId,omitempty"`
}

func FromModuleRM(rm *readmodel.ModuleRM) *ModuleResponse {
	var resp ModuleResponse
	mapRM(&resp, rm)
	return &resp
}

type LessonResponse struct {
	ID       uuid.UUID `json:"id"`
	ModuleID uuid.UUID `json:"moduleId"`
	Title    string    `json:"title"`
	Content  string    `json:"content,omitempty"`
	VideoURL string    `json:"videoUrl,omitempty"`
	Position int32     `json:"position"`
}

func FromLessonRM(rm *readmodel.LessonRM) *LessonResponse {
	var resp LessonResponse
	mapRM(&resp, rm)
	return &resp
}

type StudentProgressResponse struct {
	UserID             uuid.UUID `json:"userId"`
	FullName           string    `json:"fullName"`
	Email              string    `json:"email"`
	AvatarURL          string    `json:"avatarUrl,omitempty"`
	EnrolledAt         time.Time `json:"enrolledAt"`
	CompletedLessons   int64     `json:"completedLessons"`
	TotalLessons       int64     `json:"totalLessons"`
	ProgressPercentage float64   `json:"progressPercentage"`
	AverageQuizGrade   *float64  `json:"averageQuizGrade,omitempty"`
}

func FromStudentProgressRM(rm *readmodel.StudentProgressRM) *StudentProgressResponse {
	var resp StudentProgressResponse
	mapRM(&resp, rm)
	return &resp
}
