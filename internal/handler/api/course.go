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

type CourseHandler struct {
	courseUseCase usecase.CourseUseCase
}

func NewCourseHandler(courseUseCase usecase.CourseUseCase) *CourseHandler {
	return &CourseHandler{
		courseUseCase: courseUseCase,
	}
}

// @Summary Create course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourseRequest true "Course fields"
// @Success 201 {object} resdto.CourseResponse
// @Failure 400 {object} map[string]string
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.courseUseCase.CreateCourse(c.Request.Context(), req, userID)
	if err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCourse(created))
}

// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} resdto.CourseResponse
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}

	found, err := h.courseUseCase.GetCourse(c.Request.Context(), id)
	if err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourse(found))
}

// @Summary Update course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.UpdateCourseRequest true "Course fields"
// @Success 200 {object} resdto.CourseResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
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
			"error": "Invalid course ID",
		})
		return
	}

	var req reqdto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.courseUseCase.UpdateCourse(c.Request.Context(), id, req, userID, role)
	if err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourse(updated))
}

// @Summary Publish or unpublish course
// @Tags courses
// @Accept json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.PublishCourseRequest true "Publish flag"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id}/publish [post]
func (h *CourseHandler) PublishCourse(c *gin.Context) {
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
			"error": "Invalid course ID",
		})
		return
	}

	var req reqdto.PublishCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.courseUseCase.PublishCourse(c.Request.Context(), id, req.Published, userID, role); err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete course
// @Tags courses
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
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
			"error": "Invalid course ID",
		})
		return
	}

	if err := h.courseUseCase.DeleteCourse(c.Request.Context(), id, userID, role); err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List my courses
// @Description Courses owned by the current mentor
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CourseResponse
// @Router /courses/mine [get]
func (h *CourseHandler) GetMyCourses(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	courses, err := h.courseUseCase.GetMentorCourses(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.CourseResponse, len(courses))
	for i, rm := range courses {
		responses[i] = resdto.FromCourseRM(rm)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary List published courses
// @Description Public catalog of published courses
// @Tags courses
// @Produce json
// @Success 200 {array} resdto.CourseResponse
// @Router /courses [get]
func (h *CourseHandler) GetPublishedCourses(c *gin.Context) {
	courses, err := h.courseUseCase.GetPublishedCourses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.CourseResponse, len(courses))
	for i, rm := range courses {
		responses[i] = resdto.FromCourseRM(rm)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Add module
// @Tags syllabus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.CreateModuleRequest true "Module fields"
// @Success 201 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id}/modules [post]
func (h *CourseHandler) AddModule(c *gin.Context) {
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

	var req reqdto.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	moduleID, err := h.courseUseCase.AddModule(c.Request.Context(), courseID, req, userID, role)
	if err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": moduleID,
	})
}

// @Summary Update module
// @Tags syllabus
// @Accept json
// @Security BearerAuth
// @Param moduleId path string true "Module ID"
// @Param request body reqdto.UpdateModuleRequest true "Module fields"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /modules/{moduleId} [put]
func (h *CourseHandler) UpdateModule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	moduleID, err := uuid.Parse(c.Param("moduleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid module ID",
		})
		return
	}

	var req reqdto.UpdateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.courseUseCase.UpdateModule(c.Request.Context(), moduleID, req, userID, role); err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remove module
// @Tags syllabus
// @Security BearerAuth
// @Param moduleId path string true "Module ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /modules/{moduleId} [delete]
func (h *CourseHandler) RemoveModule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	moduleID, err := uuid.Parse(c.Param("moduleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid module ID",
		})
		return
	}

	if err := h.courseUseCase.RemoveModule(c.Request.Context(), moduleID, userID, role); err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get syllabus
// @Description Modules of a course ordered by position
// @Tags syllabus
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {array} resdto.ModuleResponse
// @Failure 404 {object} map[string]string
// @Router /courses/{id}/modules [get]
func (h *CourseHandler) GetSyllabus(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}

	modules, err := h.courseUseCase.GetSyllabus(c.Request.Context(), courseID)
	if err != nil {
		h.respondCourseError(c, err)
		return
	}

	responses := make([]*resdto.ModuleResponse, len(modules))
	for i, rm := range modules {
		responses[i] = resdto.FromModuleRM(rm)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary List module lessons
// @Tags syllabus
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {array} resdto.LessonResponse
// @Failure 404 {object} map[string]string
// @Router /modules/{moduleId}/lessons [get]
func (h *CourseHandler) GetModuleLessons(c *gin.Context) {
	moduleID, err := uuid.Parse(c.Param("moduleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid module ID",
		})
		return
	}

	lessons, err := h.courseUseCase.GetModuleLessons(c.Request.Context(), moduleID)
	if err != nil {
		h.respondCourseError(c, err)
		return
	}

	responses := make([]*resdto.LessonResponse, len(lessons))
	for i, rm := range lessons {
		responses[i] = resdto.FromLessonRM(rm)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Add lesson
// @Tags syllabus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param moduleId path string true "Module ID"
// @Param request body reqdto.CreateLessonRequest true "Lesson fields"
// @Success 201 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /modules/{moduleId}/lessons [post]
func (h *CourseHandler) AddLesson(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	moduleID, err := uuid.Parse(c.Param("moduleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid module ID",
		})
		return
	}

	var req reqdto.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	lessonID, err := h.courseUseCase.AddLesson(c.Request.Context(), moduleID, req, userID, role)
	if err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": lessonID,
	})
}

// @Summary Update lesson
// @Tags syllabus
// @Accept json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Param request body reqdto.UpdateLessonRequest true "Lesson fields"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{lessonId} [put]
func (h *CourseHandler) UpdateLesson(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	lessonID, err := uuid.Parse(c.Param("lessonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lesson ID",
		})
		return
	}

	var req reqdto.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.courseUseCase.UpdateLesson(c.Request.Context(), lessonID, req, userID, role); err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remove lesson
// @Tags syllabus
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{lessonId} [delete]
func (h *CourseHandler) RemoveLesson(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	lessonID, err := uuid.Parse(c.Param("lessonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lesson ID",
		})
		return
	}

	if err := h.courseUseCase.RemoveLesson(c.Request.Context(), lessonID, userID, role); err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark lesson complete
// @Tags syllabus
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /lessons/{lessonId}/complete [post]
func (h *CourseHandler) CompleteLesson(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	lessonID, err := uuid.Parse(c.Param("lessonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lesson ID",
		})
		return
	}

	if err := h.courseUseCase.CompleteLesson(c.Request.Context(), lessonID, userID); err != nil {
		h.respondCourseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CourseHandler) respondCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Course not found",
		})
	case errors.Is(err, usecase.ErrModuleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Module not found",
		})
	case errors.Is(err, usecase.ErrLessonNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Lesson not found",
		})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to manage this course",
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
