//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"basecampus-api/internal/domain/user"
	"basecampus-api/internal/handler/api"
	resdto "basecampus-api/internal/handler/dto/response"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
	userID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUseCase)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleStudent)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.GetMyBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PUT("/bookings/:id", authMiddleware, s.handler.UpdateBooking)
	s.router.POST("/bookings/:id/confirm", authMiddleware, s.handler.ConfirmBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.DeleteBooking)
	s.router.GET("/rooms", authMiddleware, s.handler.ListRooms)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildCreateRequestDTO()
	returnEntity, err := bb.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(returnEntity, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnEntity.ID(), body.ID)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		missing := []string{"room_id", "start_time", "end_time"}
		for _, field := range missing {
			body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("error: 404 Not Found when the room does not exist", func() {
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, usecase.ErrRoomNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 409 Conflict when the slot is taken", func() {
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, usecase.ErrBookingConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflicts")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bb := builder.NewBookingBuilder()
	returnEntity, err := bb.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns the booking", func() {
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), returnEntity.ID()).
			Return(returnEntity, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnEntity.ID().String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnEntity.ID(), body.ID)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found on unknown id", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), id).
			Return(nil, usecase.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestGetMyBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetMyBookings() {
	bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = "confirmed"
	})
	rm := bb.BuildRM()
	rm.UserID = s.userID

	s.mockUseCase.EXPECT().GetUserBookings(gomock.Any(), gomock.Any()).
		Return([]*readmodel.BookingRM{rm}, nil).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

	var body []resdto.BookingListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal(rm.ID, body[0].ID)
	s.Equal("confirmed", body[0].Status)
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockUseCase.EXPECT().CancelBooking(gomock.Any(), id, gomock.Any(), user.RoleStudent).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for someone else's booking", func() {
		s.mockUseCase.EXPECT().CancelBooking(gomock.Any(), id, gomock.Any(), user.RoleStudent).
			Return(usecase.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})
}

// ================================================================================
// TestConfirmBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/confirm"

	s.Run("success: returns 204 No Content", func() {
		s.mockUseCase.EXPECT().ConfirmBooking(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when another booking was confirmed first", func() {
		s.mockUseCase.EXPECT().ConfirmBooking(gomock.Any(), id).
			Return(usecase.ErrBookingConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflicts")
	})
}

// ================================================================================
// TestListRooms
// ================================================================================

func (s *BookingHandlerTestSuite) TestListRooms() {
	rooms := []*readmodel.RoomRM{
		{ID: uuid.New(), Name: "Sala Miraflores", MinCapacity: 2, MaxCapacity: 12, HourlyRateCents: 5000},
	}

	s.mockUseCase.EXPECT().ListRooms(gomock.Any()).Return(rooms, nil).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "bearer-token")

	var body []resdto.RoomResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal(rooms[0].Name, body[0].Name)
}
