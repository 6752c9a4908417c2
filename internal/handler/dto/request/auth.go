package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=student mentor"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UpdateProfileRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Headline     string  `json:"headline"`
	Bio          string  `json:"bio"`
	Website      string  `json:"website"`
	LinkedinURL  string  `json:"linkedin_url"`
	InstagramURL string  `json:"instagram_url"`
	Whatsapp     string  `json:"whatsapp"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
}
