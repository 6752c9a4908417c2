package api

import (
	"errors"
	"net/http"

	reqdto "basecampus-api/internal/handler/dto/request"
	resdto "basecampus-api/internal/handler/dto/response"
	"basecampus-api/internal/handler/middleware"
	"basecampus-api/internal/usecase"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleUseCase usecase.ScheduleUseCase
}

func NewScheduleHandler(scheduleUseCase usecase.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUseCase: scheduleUseCase,
	}
}

// @Summary Replace course schedule
// @Description Replace every session of a course with the submitted list in one transaction
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.ReplaceScheduleRequest true "Full session list"
// @Success 200 {array} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /courses/{id}/schedule [put]
func (h *ScheduleHandler) ReplaceSchedule(c *gin.Context) {
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

	var req reqdto.ReplaceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sessions, err := h.scheduleUseCase.ReplaceSchedule(c.Request.Context(), courseID, req, userID, role)
	if err != nil {
		h.respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponses(sessions))
}

// @Summary Add course sessions
// @Description Append sessions to a course schedule without touching existing ones
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.AddSessionsRequest true "Sessions to add"
// @Success 200 {array} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /courses/{id}/schedule [post]
func (h *ScheduleHandler) AddSessions(c *gin.Context) {
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

	var req reqdto.AddSessionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sessions, err := h.scheduleUseCase.AddSessions(c.Request.Context(), courseID, req, userID, role)
	if err != nil {
		h.respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponses(sessions))
}

// @Summary Get course schedule
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {array} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /courses/{id}/schedule [get]
func (h *ScheduleHandler) GetCourseSchedule(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}

	sessions, err := h.scheduleUseCase.GetCourseSchedule(c.Request.Context(), courseID)
	if err != nil {
		h.respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponses(sessions))
}

// @Summary Get monthly quota usage
// @Description Hours booked by the current user in the current calendar month against their limit
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.QuotaResponse
// @Router /me/quota [get]
func (h *ScheduleHandler) GetMonthlyUsage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	quota, err := h.scheduleUseCase.GetMonthlyUsage(c.Request.Context(), userID)
	if err != nil {
		h.respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuotaRM(quota))
}

func (h *ScheduleHandler) respondScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Course not found",
		})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to manage this course schedule",
		})
	case errors.Is(err, usecase.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, usecase.ErrQuotaExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Monthly booking hours quota exceeded",
		})
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func toSessionResponses(sessions []*readmodel.SessionRM) []*resdto.SessionResponse {
	responses := make([]*resdto.SessionResponse, len(sessions))
	for i, rm := range sessions {
		responses[i] = resdto.FromSessionRM(rm)
	}
	return responses
}
