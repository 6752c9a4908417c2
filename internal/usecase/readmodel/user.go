package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type UserRM struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	FullName          string    `json:"full_name"`
	Headline          string    `json:"headline,omitempty"`
	Bio               string    `json:"bio,omitempty"`
	Website           string    `json:"website,omitempty"`
	LinkedinURL       string    `json:"linkedin_url,omitempty"`
	InstagramURL      string    `json:"instagram_url,omitempty"`
	Whatsapp          string    `json:"whatsapp,omitempty"`
	AvatarURL         string    `json:"avatar_url,omitempty"`
	MonthlyHoursLimit *float64  `json:"monthly_hours_limit,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}
