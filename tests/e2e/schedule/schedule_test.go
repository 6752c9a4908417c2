//go:build e2e

package schedule_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"basecampus-api/internal/domain/user"
	"basecampus-api/internal/handler/dto/request"
	"basecampus-api/internal/handler/dto/response"
	"basecampus-api/internal/pkg/clock"
	"basecampus-api/tests/common/authtest"
	"basecampus-api/tests/common/dbtest"
	"basecampus-api/tests/common/httptest"
	"basecampus-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ScheduleSuite struct {
	e2e.SharedSuite
}

func (s *ScheduleSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestScheduleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ScheduleSuite))
}

func scheduleURL(courseID uuid.UUID) string {
	return "/api/courses/" + courseID.String() + "/schedule"
}

func sessionInputs(roomID *uuid.UUID, dates ...string) []request.SessionInput {
	inputs := make([]request.SessionInput, 0, len(dates))
	for _, date := range dates {
		inputs = append(inputs, request.SessionInput{
			Date:      date,
			StartTime: "09:00",
			EndTime:   "10:30",
			RoomID:    roomID,
		})
	}
	return inputs
}

func (s *ScheduleSuite) scheduleInfo(t *testing.T, courseID uuid.UUID) string {
	t.Helper()
	var info string
	err := s.DB.QueryRow(context.Background(),
		"SELECT schedule_info FROM courses WHERE id = $1", courseID).Scan(&info)
	require.NoError(t, err)
	return info
}

// =============================================================================
// TestReplaceSchedule - full schedule swap and summary resync
// =============================================================================

func (s *ScheduleSuite) TestReplaceSchedule() {
	s.Run("Normal case: replace swaps the whole schedule and rewrites the summary", func() {
		t := s.T()

		mentorID := dbtest.CreateTestUser(t, s.DB, "mentor@example.com", string(user.RoleMentor))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 12)
		courseID := dbtest.CreateTestCourse(t, s.DB, mentorID, "Go Basics", "in-person", false)

		token := authtest.LoginUser(t, s.Router, "mentor@example.com", "password123")

		reqBody := request.ReplaceScheduleRequest{
			Sessions: sessionInputs(&roomID, "2025-06-15", "2025-06-01", "2025-06-08"),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, scheduleURL(courseID), reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var sessions []response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &sessions))
		require.Len(t, sessions, 3)
		for _, session := range sessions {
			require.Equal(t, "pending", session.Status)
		}

		// Summary is rebuilt from the stored rows, sorted ascending.
		want := "2025-06-01 (09:00 - 10:30)\n" +
			"2025-06-08 (09:00 - 10:30)\n" +
			"2025-06-15 (09:00 - 10:30)"
		require.Equal(t, want, s.scheduleInfo(t, courseID))

		// A second replace drops the old rows entirely.
		reqBody = request.ReplaceScheduleRequest{
			Sessions: sessionInputs(&roomID, "2025-07-01"),
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, scheduleURL(courseID), reqBody, token)
		require.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &sessions))
		require.Len(t, sessions, 1)
		require.Equal(t, "2025-07-01 (09:00 - 10:30)", s.scheduleInfo(t, courseID))
	})

	s.Run("Normal case: an empty replace clears the schedule and the summary", func() {
		t := s.T()

		mentorID := dbtest.CreateTestUser(t, s.DB, "mentor@example.com", string(user.RoleMentor))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 12)
		courseID := dbtest.CreateTestCourse(t, s.DB, mentorID, "Go Basics", "in-person", false)

		token := authtest.LoginUser(t, s.Router, "mentor@example.com", "password123")

		reqBody := request.ReplaceScheduleRequest{Sessions: sessionInputs(&roomID, "2025-06-01")}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, scheduleURL(courseID), reqBody, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, scheduleURL(courseID),
			request.ReplaceScheduleRequest{}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var sessions []response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &sessions))
		require.Empty(t, sessions)
		require.Equal(t, "", s.scheduleInfo(t, courseID))
	})

	s.Run("Normal case: online live sessions need no room and are confirmed immediately", func() {
		t := s.T()

		mentorID := dbtest.CreateTestUser(t, s.DB, "mentor@example.com", string(user.RoleMentor))
		courseID := dbtest.CreateTestCourse(t, s.DB, mentorID, "Live Go", "online", true)

		token := authtest.LoginUser(t, s.Router, "mentor@example.com", "password123")

		reqBody := request.ReplaceScheduleRequest{Sessions: sessionInputs(nil, "2025-06-01", "2025-06-08")}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, scheduleURL(courseID), reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var sessions []response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &sessions))
		require.Len(t, sessions, 2)
		for _, session := range sessions {
			require.Equal(t, "confirmed", session.Status)
			require.Nil(t, session.RoomID)
		}
	})

	s.Run("Error case: an in-person session without a room rejects the whole batch", func() {
		t := s.T()

		mentorID := dbtest.CreateTestUser(t, s.DB, "mentor@example.com", string(user.RoleMentor))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 12)
		courseID := dbtest.CreateTestCourse(t, s.DB, mentorID, "Go Basics", "in-person", false)

		token := authtest.LoginUser(t, s.Router, "mentor@example.com", "password123")

		inputs := sessionInputs(&roomID, "2025-06-01")
		inputs = append(inputs, sessionInputs(nil, "2025-06-08")...)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, scheduleURL(courseID),
			request.ReplaceScheduleRequest{Sessions: inputs}, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		// Nothing was written.
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, scheduleURL(courseID), nil, token)
		require.Equal(t, http.StatusOK, gw.Code)
		var sessions []response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &sessions))
		require.Empty(t, sessions)
	})

	s.Run("Error case: only the owning mentor or an admin may edit the schedule", func() {
		t := s.T()

		mentorID := dbtest.CreateTestUser(t, s.DB, "mentor@example.com", string(user.RoleMentor))
		dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleMentor))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 12)
		courseID := dbtest.CreateTestCourse(t, s.DB, mentorID, "Go Basics", "in-person", false)

		otherToken := authtest.LoginUser(t, s.Router, "other@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, scheduleURL(courseID),
			request.ReplaceScheduleRequest{Sessions: sessionInputs(&roomID, "2025-06-01")}, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestAddSessions - appending to an existing schedule
// =============================================================================

func (s *ScheduleSuite) TestAddSessions() {
	s.Run("Normal case: added sessions keep existing ones in place", func() {
		t := s.T()

		mentorID := dbtest.CreateTestUser(t, s.DB, "mentor@example.com", string(user.RoleMentor))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 12)
		courseID := dbtest.CreateTestCourse(t, s.DB, mentorID, "Go Basics", "in-person", false)

		token := authtest.LoginUser(t, s.Router, "mentor@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, scheduleURL(courseID),
			request.ReplaceScheduleRequest{Sessions: sessionInputs(&roomID, "2025-06-01")}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, scheduleURL(courseID),
			request.AddSessionsRequest{Sessions: sessionInputs(&roomID, "2025-06-08")}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var sessions []response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &sessions))
		require.Len(t, sessions, 2)
	})

	s.Run("Error case: one session overlapping a confirmed booking rejects the whole batch", func() {
		t := s.T()

		mentorID := dbtest.CreateTestUser(t, s.DB, "mentor@example.com", string(user.RoleMentor))
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleStudent))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 12)
		courseID := dbtest.CreateTestCourse(t, s.DB, mentorID, "Go Basics", "in-person", false)

		// Someone else already holds the room on the 15th.
		lima, err := time.LoadLocation("America/Lima")
		require.NoError(t, err)
		confirmedStart := time.Date(2025, 6, 15, 9, 30, 0, 0, lima)
		_, err = s.DB.Exec(context.Background(),
			"INSERT INTO bookings (id, user_id, room_id, start_time, end_time, status, notes) VALUES ($1, $2, $3, $4, $5, 'confirmed', '')",
			uuid.New(), otherID, roomID, confirmedStart, confirmedStart.Add(time.Hour))
		require.NoError(t, err)

		token := authtest.LoginUser(t, s.Router, "mentor@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scheduleURL(courseID),
			request.AddSessionsRequest{Sessions: sessionInputs(&roomID,
				"2025-06-01", "2025-06-08", "2025-06-15", "2025-06-22", "2025-06-29")}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "2025-06-15 09:00")

		// Nothing was written, not even the sessions before the conflict.
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, scheduleURL(courseID), nil, token)
		require.Equal(t, http.StatusOK, gw.Code)
		var sessions []response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &sessions))
		require.Empty(t, sessions)
	})
}

// =============================================================================
// TestMonthlyQuota - advisory usage reporting
// =============================================================================

func (s *ScheduleSuite) TestMonthlyQuota() {
	s.Run("Normal case: quota reports hours booked in the current month", func() {
		t := s.T()

		mentorID := dbtest.CreateTestUser(t, s.DB, "mentor@example.com", string(user.RoleMentor))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 12)
		courseID := dbtest.CreateTestCourse(t, s.DB, mentorID, "Go Basics", "in-person", false)

		token := authtest.LoginUser(t, s.Router, "mentor@example.com", "password123")

		lima, err := time.LoadLocation("America/Lima")
		require.NoError(t, err)
		today := time.Now().In(lima).Format("2006-01-02")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, scheduleURL(courseID),
			request.ReplaceScheduleRequest{Sessions: sessionInputs(&roomID, today)}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		qw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/me/quota", nil, token)
		require.Equal(t, http.StatusOK, qw.Code)

		var quota response.QuotaResponse
		require.NoError(t, httptest.DecodeResponseBody(t, qw.Body, &quota))
		require.Equal(t, 32.0, quota.LimitHours)
		require.Equal(t, 1.5, quota.UsedHours)
		require.Equal(t, 30.5, quota.RemainingHours)
	})

	s.Run("Normal case: exceeding the limit is advisory and does not block the save", func() {
		t := s.T()

		mentorID := dbtest.CreateTestUser(t, s.DB, "mentor@example.com", string(user.RoleMentor))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 12)
		courseID := dbtest.CreateTestCourse(t, s.DB, mentorID, "Go Basics", "in-person", false)

		// A one hour monthly limit for this mentor.
		_, err := s.DB.Exec(context.Background(),
			"UPDATE users SET monthly_hours_limit = 1 WHERE id = $1", mentorID)
		require.NoError(t, err)

		token := authtest.LoginUser(t, s.Router, "mentor@example.com", "password123")

		lima, err := time.LoadLocation("America/Lima")
		require.NoError(t, err)
		today := time.Now().In(lima).Format("2006-01-02")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, scheduleURL(courseID),
			request.ReplaceScheduleRequest{Sessions: sessionInputs(&roomID, today)}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		qw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/me/quota", nil, token)
		require.Equal(t, http.StatusOK, qw.Code)

		var quota response.QuotaResponse
		require.NoError(t, httptest.DecodeResponseBody(t, qw.Body, &quota))
		require.Equal(t, 1.0, quota.LimitHours)
		require.Equal(t, 1.5, quota.UsedHours)
		require.Equal(t, 0.0, quota.RemainingHours)
	})

	s.Run("Edge case: a booking spilling into the next month is not counted", func() {
		t := s.T()

		mentorID := dbtest.CreateTestUser(t, s.DB, "mentor@example.com", string(user.RoleMentor))
		roomID := dbtest.CreateTestRoom(t, s.DB, "Sala Surco", 12)

		lima, err := time.LoadLocation("America/Lima")
		require.NoError(t, err)
		from, to := clock.MonthRange(time.Now().In(lima))

		insertBooking := func(start, end time.Time) {
			_, err := s.DB.Exec(context.Background(),
				"INSERT INTO bookings (id, user_id, room_id, start_time, end_time, status, notes) VALUES ($1, $2, $3, $4, $5, 'pending', '')",
				uuid.New(), mentorID, roomID, start, end)
			require.NoError(t, err)
		}
		// Two hours fully inside the month, three hours straddling the
		// month boundary. Only the first counts toward usage.
		insertBooking(from.Add(10*time.Hour), from.Add(12*time.Hour))
		insertBooking(to.Add(-time.Hour), to.Add(2*time.Hour))

		token := authtest.LoginUser(t, s.Router, "mentor@example.com", "password123")
		qw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/me/quota", nil, token)
		require.Equal(t, http.StatusOK, qw.Code)

		var quota response.QuotaResponse
		require.NoError(t, httptest.DecodeResponseBody(t, qw.Body, &quota))
		require.Equal(t, 2.0, quota.UsedHours)
	})
}
