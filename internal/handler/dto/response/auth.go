package response

import (
	"basecampus-api/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	FullName          string    `json:"fullName"`
	Headline          string    `json:"headline,omitempty"`
	Bio               string    `json:"bio,omitempty"`
	Website           string    `json:"website,omitempty"`
	LinkedinURL       string    `json:"linkedinUrl,omitempty"`
	InstagramURL      string    `json:"instagramUrl,omitempty"`
	Whatsapp          string    `json:"whatsapp,omitempty"`
	AvatarURL         string    `json:"avatarUrl,omitempty"`
	MonthlyHoursLimit *float64  `json:"monthlyHoursLimit,omitempty"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:                u.ID(),
		Email:             u.Email().String(),
		Role:              u.Role().String(),
		FullName:          u.FullName(),
		Headline:          u.Headline(),
		Bio:               u.Bio(),
		Website:           u.Website(),
		LinkedinURL:       u.LinkedinURL(),
		InstagramURL:      u.InstagramURL(),
		Whatsapp:          u.Whatsapp(),
		AvatarURL:         u.AvatarURL(),
		MonthlyHoursLimit: u.MonthlyHoursLimit(),
	}
}
