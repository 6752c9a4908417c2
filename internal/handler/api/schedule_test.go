//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"basecampus-api/internal/domain/user"
	"basecampus-api/internal/handler/api"
	resdto "basecampus-api/internal/handler/dto/response"
	"basecampus-api/internal/pkg/errs"
	"basecampus-api/internal/usecase"
	"basecampus-api/internal/usecase/readmodel"
	"basecampus-api/tests/common/builder"
	"basecampus-api/tests/common/httptest"
	"basecampus-api/tests/common/testutil"
	usecasemock "basecampus-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockScheduleUseCase
	handler     *api.ScheduleHandler
	userID      uuid.UUID
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockScheduleUseCase(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockUseCase)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMentor)
		c.Next()
	}

	// Setup routes
	s.router.PUT("/courses/:id/schedule", authMiddleware, s.handler.ReplaceSchedule)
	s.router.POST("/courses/:id/schedule", authMiddleware, s.handler.AddSessions)
	s.router.GET("/courses/:id/schedule", authMiddleware, s.handler.GetCourseSchedule)
	s.router.GET("/me/quota", authMiddleware, s.handler.GetMonthlyUsage)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

// ================================================================================
// TestReplaceSchedule
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestReplaceSchedule() {
	sb := builder.NewScheduleBuilder()
	url := "/courses/" + sb.CourseID.String() + "/schedule"
	reqBody := sb.BuildReplaceRequestDTO()
	returnRMs := sb.BuildSessionRMs()

	s.Run("success: returns the stored schedule", func() {
		s.mockUseCase.EXPECT().
			ReplaceSchedule(gomock.Any(), sb.CourseID, gomock.Any(), s.userID, user.RoleMentor).
			Return(returnRMs, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body []resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, len(returnRMs))
		s.Equal(returnRMs[0].Date, body[0].Date)
	})

	s.Run("success: empty list clears the schedule", func() {
		s.mockUseCase.EXPECT().
			ReplaceSchedule(gomock.Any(), sb.CourseID, gomock.Any(), s.userID, user.RoleMentor).
			Return([]*readmodel.SessionRM{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"sessions": []any{}}, "bearer-token")

		var body []resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("sessions", "not-a-list"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 403 Forbidden for a course owned by someone else", func() {
		s.mockUseCase.EXPECT().
			ReplaceSchedule(gomock.Any(), sb.CourseID, gomock.Any(), s.userID, user.RoleMentor).
			Return(nil, usecase.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("error: 404 Not Found on unknown course", func() {
		s.mockUseCase.EXPECT().
			ReplaceSchedule(gomock.Any(), sb.CourseID, gomock.Any(), s.userID, user.RoleMentor).
			Return(nil, usecase.ErrCourseNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Course not found")
	})
}

// ================================================================================
// TestAddSessions
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestAddSessions() {
	sb := builder.NewScheduleBuilder()
	url := "/courses/" + sb.CourseID.String() + "/schedule"
	reqBody := sb.BuildAddRequestDTO()
	returnRMs := sb.BuildSessionRMs()

	s.Run("success: returns the full schedule after the append", func() {
		s.mockUseCase.EXPECT().
			AddSessions(gomock.Any(), sb.CourseID, gomock.Any(), s.userID, user.RoleMentor).
			Return(returnRMs, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body []resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, len(returnRMs))
	})

	s.Run("error: 400 Bad Request on empty batch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"sessions": []any{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 Conflict when a session overlaps a confirmed booking", func() {
		s.mockUseCase.EXPECT().
			AddSessions(gomock.Any(), sb.CourseID, gomock.Any(), s.userID, user.RoleMentor).
			Return(nil, errs.Wrap(usecase.ErrBookingConflict, "session 2025-06-12 09:00")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "session 2025-06-12 09:00")
	})

	s.Run("error: 422 Unprocessable Entity when quota is exceeded", func() {
		s.mockUseCase.EXPECT().
			AddSessions(gomock.Any(), sb.CourseID, gomock.Any(), s.userID, user.RoleMentor).
			Return(nil, usecase.ErrQuotaExceeded).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "quota exceeded")
	})
}

// ================================================================================
// TestGetCourseSchedule
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestGetCourseSchedule() {
	sb := builder.NewScheduleBuilder()
	url := "/courses/" + sb.CourseID.String() + "/schedule"
	returnRMs := sb.BuildSessionRMs()

	s.Run("success: lists sessions in order", func() {
		s.mockUseCase.EXPECT().GetCourseSchedule(gomock.Any(), sb.CourseID).
			Return(returnRMs, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 3)
		s.Equal("2025-06-01", body[0].Date)
		s.Equal("2025-06-15", body[2].Date)
	})

	s.Run("error: 400 Bad Request on malformed course id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses/nope/schedule", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid course ID")
	})
}

// ================================================================================
// TestGetMonthlyUsage
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestGetMonthlyUsage() {
	s.Run("success: reports used, limit and remaining hours", func() {
		s.mockUseCase.EXPECT().GetMonthlyUsage(gomock.Any(), gomock.Any()).
			Return(&readmodel.QuotaRM{LimitHours: 32, UsedHours: 20.5}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/quota", nil, "bearer-token")

		var body resdto.QuotaResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(32.0, body.LimitHours)
		s.Equal(20.5, body.UsedHours)
		s.Equal(11.5, body.RemainingHours)
	})

	s.Run("success: remaining never goes negative", func() {
		s.mockUseCase.EXPECT().GetMonthlyUsage(gomock.Any(), gomock.Any()).
			Return(&readmodel.QuotaRM{LimitHours: 32, UsedHours: 40}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/quota", nil, "bearer-token")

		var body resdto.QuotaResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(0.0, body.RemainingHours)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/quota", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
