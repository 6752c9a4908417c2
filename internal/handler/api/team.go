package api

import (
	"errors"
	"net/http"

	reqdto "basecampus-api/internal/handler/dto/request"
	resdto "basecampus-api/internal/handler/dto/response"
	"basecampus-api/internal/handler/middleware"
	"basecampus-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamHandler struct {
	teamUseCase usecase.TeamUseCase
	authUseCase usecase.AuthUseCase
}

func NewTeamHandler(teamUseCase usecase.TeamUseCase, authUseCase usecase.AuthUseCase) *TeamHandler {
	return &TeamHandler{
		teamUseCase: teamUseCase,
		authUseCase: authUseCase,
	}
}

// @Summary Invite instructor
// @Description Invite an instructor or assistant to a course by email
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.InviteInstructorRequest true "Invite fields"
// @Success 201 {object} resdto.InviteResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /courses/{id}/team/invites [post]
func (h *TeamHandler) InviteInstructor(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}

	var req reqdto.InviteInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	invite, err := h.teamUseCase.InviteInstructor(c.Request.Context(), courseID, req, userID, role)
	if err != nil {
		h.respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInviteRM(invite))
}

// @Summary Revoke invite
// @Tags team
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param inviteId path string true "Invite ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id}/team/invites/{inviteId} [delete]
func (h *TeamHandler) RevokeInvite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}
	inviteID, err := uuid.Parse(c.Param("inviteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invite ID",
		})
		return
	}

	if err := h.teamUseCase.RevokeInvite(c.Request.Context(), courseID, inviteID, userID, role); err != nil {
		h.respondTeamError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Accept invite
// @Description Join a course team using an invite token issued for the caller's email
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AcceptInviteRequest true "Invite token"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /team/invites/accept [post]
func (h *TeamHandler) AcceptInvite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	account, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	courseID, err := h.teamUseCase.AcceptInvite(c.Request.Context(), req.Token, userID, account.Email().String())
	if err != nil {
		h.respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courseId": courseID,
	})
}

// @Summary List invites
// @Tags team
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {array} resdto.InviteResponse
// @Failure 403 {object} map[string]string
// @Router /courses/{id}/team/invites [get]
func (h *TeamHandler) GetInvites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}

	invites, err := h.teamUseCase.GetInvites(c.Request.Context(), courseID, userID, role)
	if err != nil {
		h.respondTeamError(c, err)
		return
	}

	responses := make([]*resdto.InviteResponse, len(invites))
	for i, rm := range invites {
		responses[i] = resdto.FromInviteRM(rm)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary List instructors
// @Tags team
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {array} resdto.InstructorResponse
// @Router /courses/{id}/team [get]
func (h *TeamHandler) GetInstructors(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}

	instructors, err := h.teamUseCase.GetInstructors(c.Request.Context(), courseID)
	if err != nil {
		h.respondTeamError(c, err)
		return
	}

	responses := make([]*resdto.InstructorResponse, len(instructors))
	for i, rm := range instructors {
		responses[i] = resdto.FromInstructorRM(rm)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Remove instructor
// @Tags team
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param instructorId path string true "Instructor ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Router /courses/{id}/team/{instructorId} [delete]
func (h *TeamHandler) RemoveInstructor(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}
	instructorID, err := uuid.Parse(c.Param("instructorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid instructor ID",
		})
		return
	}

	if err := h.teamUseCase.RemoveInstructor(c.Request.Context(), courseID, instructorID, userID, role); err != nil {
		h.respondTeamError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Course not found",
		})
	case errors.Is(err, usecase.ErrInviteNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Invite not found",
		})
	case errors.Is(err, usecase.ErrDuplicateInvite):
		c.JSON(http.StatusConflict, gin.H{
			"error": "An invite for this email already exists",
		})
	case errors.Is(err, usecase.ErrInviteMismatch):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Invite was issued for a different email",
		})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to manage this course team",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
