//go:build e2e

package booking_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"basecampus-api/internal/domain/user"
	"basecampus-api/internal/handler/dto/request"
	"basecampus-api/internal/handler/dto/response"
	"basecampus-api/tests/common/authtest"
	"basecampus-api/tests/common/dbtest"
	"basecampus-api/tests/common/httptest"
	"basecampus-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createBooking(t *testing.T, token string, roomID uuid.UUID, start, end time.Time) response.BookingResponse {
	t.Helper()

	reqBody := request.CreateBookingRequest{
		RoomID:    roomID,
		StartTime: start,
		EndTime:   end,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *BookingSuite) confirmBooking(t *testing.T, token string, id uuid.UUID) *nethttptest.ResponseRecorder {
	t.Helper()
	return httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id.String()+"/confirm", nil, token)
}

// =============================================================================
// TestBookingLifecycle - create, confirm, conflict and cancel flows
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: booking starts pending and an admin confirms it", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "student@example.com", string(user.RoleStudent))
		dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 8)

		token := authtest.LoginUser(t, s.Router, "student@example.com", "password123")
		start := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)
		created := s.createBooking(t, token, roomID, start, start.Add(2*time.Hour))
		require.Equal(t, "pending", created.Status)

		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
		w := s.confirmBooking(t, adminToken, created.ID)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, gw.Code)
		var got response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &got))

		expected := created
		expected.Status = "confirmed"
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "StartTime", "EndTime"),
		}
		require.Empty(t, cmp.Diff(expected, got, opts...))
		require.True(t, got.StartTime.Equal(created.StartTime))
	})

	s.Run("Normal case: two pending requests for the same slot coexist until one is granted", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "ana@example.com", string(user.RoleStudent))
		dbtest.CreateTestUser(t, s.DB, "luis@example.com", string(user.RoleStudent))
		dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 8)

		anaToken := authtest.LoginUser(t, s.Router, "ana@example.com", "password123")
		luisToken := authtest.LoginUser(t, s.Router, "luis@example.com", "password123")
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		start := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)
		first := s.createBooking(t, anaToken, roomID, start, start.Add(2*time.Hour))
		second := s.createBooking(t, luisToken, roomID, start, start.Add(2*time.Hour))

		w := s.confirmBooking(t, adminToken, first.ID)
		require.Equal(t, http.StatusNoContent, w.Code)

		// The granted booking now blocks the slot.
		w = s.confirmBooking(t, adminToken, second.ID)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Edge case: a booking that merely touches a confirmed one at the boundary conflicts", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "ana@example.com", string(user.RoleStudent))
		dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 8)

		anaToken := authtest.LoginUser(t, s.Router, "ana@example.com", "password123")
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		start := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)
		confirmed := s.createBooking(t, anaToken, roomID, start, start.Add(2*time.Hour))
		require.Equal(t, http.StatusNoContent, s.confirmBooking(t, adminToken, confirmed.ID).Code)

		// Starts exactly when the confirmed booking ends.
		reqBody := request.CreateBookingRequest{
			RoomID:    roomID,
			StartTime: start.Add(2 * time.Hour),
			EndTime:   start.Add(3 * time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, anaToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// One minute later is free.
		reqBody.StartTime = start.Add(2*time.Hour + time.Minute)
		reqBody.EndTime = start.Add(3 * time.Hour)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, anaToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Normal case: cancelling a confirmed booking releases the slot", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "ana@example.com", string(user.RoleStudent))
		dbtest.CreateTestUser(t, s.DB, "luis@example.com", string(user.RoleStudent))
		dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 8)

		anaToken := authtest.LoginUser(t, s.Router, "ana@example.com", "password123")
		luisToken := authtest.LoginUser(t, s.Router, "luis@example.com", "password123")
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		start := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)
		first := s.createBooking(t, anaToken, roomID, start, start.Add(2*time.Hour))
		require.Equal(t, http.StatusNoContent, s.confirmBooking(t, adminToken, first.ID).Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+first.ID.String()+"/cancel", nil, anaToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		second := s.createBooking(t, luisToken, roomID, start, start.Add(2*time.Hour))
		require.Equal(t, http.StatusNoContent, s.confirmBooking(t, adminToken, second.ID).Code)
	})

	s.Run("Error case: a student cannot cancel someone else's booking", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "ana@example.com", string(user.RoleStudent))
		dbtest.CreateTestUser(t, s.DB, "luis@example.com", string(user.RoleStudent))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 8)

		anaToken := authtest.LoginUser(t, s.Router, "ana@example.com", "password123")
		luisToken := authtest.LoginUser(t, s.Router, "luis@example.com", "password123")

		start := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)
		created := s.createBooking(t, anaToken, roomID, start, start.Add(time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+created.ID.String()+"/cancel", nil, luisToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestListBookings - listing and room catalog
// =============================================================================

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: a user sees only their own bookings", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "ana@example.com", string(user.RoleStudent))
		dbtest.CreateTestUser(t, s.DB, "luis@example.com", string(user.RoleStudent))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 8)

		anaToken := authtest.LoginUser(t, s.Router, "ana@example.com", "password123")
		luisToken := authtest.LoginUser(t, s.Router, "luis@example.com", "password123")

		start := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)
		s.createBooking(t, anaToken, roomID, start, start.Add(time.Hour))
		s.createBooking(t, anaToken, roomID, start.Add(24*time.Hour), start.Add(25*time.Hour))
		s.createBooking(t, luisToken, roomID, start.Add(48*time.Hour), start.Add(49*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, anaToken)
		require.Equal(t, http.StatusOK, w.Code)

		var list []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list, 2)
	})

	s.Run("Normal case: room catalog is available to authenticated users", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "ana@example.com", string(user.RoleStudent))
		token := authtest.LoginUser(t, s.Router, "ana@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rooms", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var rooms []response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		require.NotEmpty(t, rooms)
	})
}
