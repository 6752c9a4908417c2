package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type InviteRM struct {
	ID        uuid.UUID `json:"id"`
	CourseID  uuid.UUID `json:"course_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

type InstructorRM struct {
	InstructorID uuid.UUID `json:"instructor_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	AddedAt      time.Time `json:"added_at"`
}
