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

type QuizHandler struct {
	quizUseCase usecase.QuizUseCase
}

func NewQuizHandler(quizUseCase usecase.QuizUseCase) *QuizHandler {
	return &QuizHandler{
		quizUseCase: quizUseCase,
	}
}

// @Summary Create quiz
// @Description Attach a quiz to a lesson of a course
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.CreateQuizRequest true "Quiz fields"
// @Success 201 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id}/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
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

	var req reqdto.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.quizUseCase.CreateQuiz(c.Request.Context(), courseID, req, userID, role)
	if err != nil {
		h.respondQuizError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": created.ID(),
	})
}

// @Summary Delete quiz
// @Tags quizzes
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	quizID, err := uuid.Parse(c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quiz ID",
		})
		return
	}

	if err := h.quizUseCase.DeleteQuiz(c.Request.Context(), quizID, userID, role); err != nil {
		h.respondQuizError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get lesson quiz
// @Description Quiz with questions and options for a lesson
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} resdto.QuizResponse
// @Failure 404 {object} map[string]string
// @Router /lessons/{lessonId}/quiz [get]
func (h *QuizHandler) GetLessonQuiz(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("lessonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lesson ID",
		})
		return
	}

	found, err := h.quizUseCase.GetQuizForLesson(c.Request.Context(), lessonID)
	if err != nil {
		h.respondQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuizRM(found))
}

// @Summary Add question
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param request body reqdto.AddQuestionRequest true "Question fields"
// @Success 201 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId}/questions [post]
func (h *QuizHandler) AddQuestion(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	quizID, err := uuid.Parse(c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quiz ID",
		})
		return
	}

	var req reqdto.AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	question, err := h.quizUseCase.AddQuestion(c.Request.Context(), quizID, req, userID, role)
	if err != nil {
		h.respondQuizError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": question.ID(),
	})
}

// @Summary Remove question
// @Tags quizzes
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param questionId path string true "Question ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId}/questions/{questionId} [delete]
func (h *QuizHandler) RemoveQuestion(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	quizID, err := uuid.Parse(c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quiz ID",
		})
		return
	}
	questionID, err := uuid.Parse(c.Param("questionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid question ID",
		})
		return
	}

	if err := h.quizUseCase.RemoveQuestion(c.Request.Context(), quizID, questionID, userID, role); err != nil {
		h.respondQuizError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add option
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param questionId path string true "Question ID"
// @Param request body reqdto.AddOptionRequest true "Option fields"
// @Success 201 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId}/questions/{questionId}/options [post]
func (h *QuizHandler) AddOption(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	quizID, err := uuid.Parse(c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quiz ID",
		})
		return
	}
	questionID, err := uuid.Parse(c.Param("questionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid question ID",
		})
		return
	}

	var req reqdto.AddOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	option, err := h.quizUseCase.AddOption(c.Request.Context(), quizID, questionID, req, userID, role)
	if err != nil {
		h.respondQuizError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": option.ID(),
	})
}

// @Summary Remove option
// @Tags quizzes
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param optionId path string true "Option ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId}/options/{optionId} [delete]
func (h *QuizHandler) RemoveOption(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	quizID, err := uuid.Parse(c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quiz ID",
		})
		return
	}
	optionID, err := uuid.Parse(c.Param("optionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid option ID",
		})
		return
	}

	if err := h.quizUseCase.RemoveOption(c.Request.Context(), quizID, optionID, userID, role); err != nil {
		h.respondQuizError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark correct option
// @Description Mark one option as correct, clearing any previous correct mark on the question
// @Tags quizzes
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param questionId path string true "Question ID"
// @Param optionId path string true "Option ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId}/questions/{questionId}/options/{optionId}/correct [post]
func (h *QuizHandler) MarkCorrectOption(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	quizID, err := uuid.Parse(c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quiz ID",
		})
		return
	}
	questionID, err := uuid.Parse(c.Param("questionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid question ID",
		})
		return
	}
	optionID, err := uuid.Parse(c.Param("optionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid option ID",
		})
		return
	}

	if err := h.quizUseCase.MarkCorrectOption(c.Request.Context(), quizID, questionID, optionID, userID, role); err != nil {
		h.respondQuizError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Submit quiz attempt
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param request body reqdto.SubmitAttemptRequest true "Attempt fields"
// @Success 201 {object} resdto.AttemptResponse
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId}/attempts [post]
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	quizID, err := uuid.Parse(c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quiz ID",
		})
		return
	}

	var req reqdto.SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	attempt, err := h.quizUseCase.SubmitAttempt(c.Request.Context(), quizID, req, userID)
	if err != nil {
		h.respondQuizError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAttempt(attempt))
}

// @Summary List my attempts
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Success 200 {array} resdto.AttemptResponse
// @Router /quizzes/{quizId}/attempts [get]
func (h *QuizHandler) GetMyAttempts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	quizID, err := uuid.Parse(c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quiz ID",
		})
		return
	}

	attempts, err := h.quizUseCase.GetUserAttempts(c.Request.Context(), quizID, userID)
	if err != nil {
		h.respondQuizError(c, err)
		return
	}

	responses := make([]*resdto.AttemptResponse, len(attempts))
	for i, rm := range attempts {
		responses[i] = resdto.FromAttemptRM(rm)
	}
	c.JSON(http.StatusOK, responses)
}

func (h *QuizHandler) respondQuizError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Quiz not found",
		})
	case errors.Is(err, usecase.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Question not found",
		})
	case errors.Is(err, usecase.ErrOptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Option not found",
		})
	case errors.Is(err, usecase.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Course not found",
		})
	case errors.Is(err, usecase.ErrLessonNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Lesson not found",
		})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to manage this quiz",
		})
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
