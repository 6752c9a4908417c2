package response

import (
	"time"

	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type InviteResponse struct {
	ID       uuid.UUID `json:"id"`
	CourseID uuid.UUID `json:"courseId"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Token    string    `json:"token"`
}

func FromInviteRM(rm *readmodel.InviteRM) *InviteResponse {
	var resp InviteResponse
	mapRM(&resp, rm)
	return &resp
}

type InstructorResponse struct {
	InstructorID uuid.UUID `json:"instructorId"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	AddedAt      time.Time `json:"addedAt"`
}

func FromInstructorRM(rm *readmodel.InstructorRM) *InstructorResponse {
	var resp InstructorResponse
	mapRM(&resp, rm)
	return &resp
}
