package request

type InviteInstructorRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=instructor assistant"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}
