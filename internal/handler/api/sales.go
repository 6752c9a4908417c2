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

type SalesHandler struct {
	salesUseCase usecase.SalesUseCase
}

func NewSalesHandler(salesUseCase usecase.SalesUseCase) *SalesHandler {
	return &SalesHandler{
		salesUseCase: salesUseCase,
	}
}

// @Summary Create payment link
// @Description Create a shareable checkout link for a course, optionally tagged per seller
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentLinkRequest true "Payment link fields"
// @Success 201 {object} resdto.PaymentLinkResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payment-links [post]
func (h *SalesHandler) CreatePaymentLink(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.CreatePaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	link, err := h.salesUseCase.CreatePaymentLink(c.Request.Context(), req, userID, role)
	if err != nil {
		h.respondSalesError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentLinkRM(link))
}

// @Summary Get payment link
// @Description Public checkout view, counts a view on each fetch
// @Tags sales
// @Produce json
// @Param id path string true "Payment link ID"
// @Success 200 {object} resdto.PaymentLinkResponse
// @Failure 404 {object} map[string]string
// @Router /payment-links/{id} [get]
func (h *SalesHandler) GetPaymentLink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment link ID",
		})
		return
	}

	link, err := h.salesUseCase.GetPaymentLink(c.Request.Context(), id)
	if err != nil {
		h.respondSalesError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentLinkRM(link))
}

// @Summary Activate or deactivate payment link
// @Tags sales
// @Accept json
// @Security BearerAuth
// @Param id path string true "Payment link ID"
// @Param request body reqdto.SetPaymentLinkActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payment-links/{id}/active [post]
func (h *SalesHandler) SetPaymentLinkActive(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment link ID",
		})
		return
	}

	var req reqdto.SetPaymentLinkActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.salesUseCase.SetPaymentLinkActive(c.Request.Context(), id, req.Active, userID, role); err != nil {
		h.respondSalesError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete payment link
// @Tags sales
// @Security BearerAuth
// @Param id path string true "Payment link ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payment-links/{id} [delete]
func (h *SalesHandler) DeletePaymentLink(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment link ID",
		})
		return
	}

	if err := h.salesUseCase.DeletePaymentLink(c.Request.Context(), id, userID, role); err != nil {
		h.respondSalesError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List my payment links
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentLinkResponse
// @Router /payment-links [get]
func (h *SalesHandler) GetMyPaymentLinks(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	links, err := h.salesUseCase.GetMentorPaymentLinks(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.PaymentLinkResponse, len(links))
	for i, rm := range links {
		responses[i] = resdto.FromPaymentLinkRM(rm)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Enroll through payment link
// @Description Enroll the current user in the linked course; enrolling twice returns the existing enrollment
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment link ID"
// @Success 200 {object} resdto.EnrollmentResultResponse
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /payment-links/{id}/enroll [post]
func (h *SalesHandler) EnrollThroughLink(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment link ID",
		})
		return
	}

	result, err := h.salesUseCase.EnrollThroughLink(c.Request.Context(), id, userID)
	if err != nil {
		h.respondSalesError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEnrollmentResult(result))
}

// @Summary List my enrollments
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EnrollmentResponse
// @Router /enrollments [get]
func (h *SalesHandler) GetMyEnrollments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	enrollments, err := h.salesUseCase.GetUserEnrollments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.EnrollmentResponse, len(enrollments))
	for i, rm := range enrollments {
		responses[i] = resdto.FromEnrollmentRM(rm)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Course student progress
// @Description Per-student lesson completion and quiz grades for a course
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {array} resdto.StudentProgressResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id}/progress [get]
func (h *SalesHandler) GetStudentProgress(c *gin.Context) {
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

	progress, err := h.salesUseCase.GetStudentProgress(c.Request.Context(), courseID, userID, role)
	if err != nil {
		h.respondSalesError(c, err)
		return
	}

	responses := make([]*resdto.StudentProgressResponse, len(progress))
	for i, rm := range progress {
		responses[i] = resdto.FromStudentProgressRM(rm)
	}
	c.JSON(http.StatusOK, responses)
}

func (h *SalesHandler) respondSalesError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPaymentLinkNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Payment link not found",
		})
	case errors.Is(err, usecase.ErrPaymentLinkInactive):
		c.JSON(http.StatusGone, gin.H{
			"error": "Payment link is no longer active",
		})
	case errors.Is(err, usecase.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Course not found",
		})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to manage sales for this course",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
