//go:build e2e

package auth_test

import (
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"basecampus-api/internal/domain/user"
	"basecampus-api/internal/handler/dto/request"
	"basecampus-api/tests/common/dbtest"
	"basecampus-api/tests/common/httptest"
	"basecampus-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const resetURL = "/api/auth/password-reset"

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) requestReset(t *testing.T, email string) *nethttptest.ResponseRecorder {
	t.Helper()
	return httptest.PerformRequest(t, s.Router, http.MethodPost, resetURL,
		request.RequestPasswordResetRequest{Email: email}, "")
}

func (s *AuthSuite) seedResetAttempts(t *testing.T, userID uuid.UUID, n int, createdAt time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := s.DB.Exec(context.Background(),
			"INSERT INTO password_reset_attempts (id, user_id, created_at) VALUES ($1, $2, $3)",
			uuid.New(), userID, createdAt)
		require.NoError(t, err)
	}
}

// =============================================================================
// TestPasswordReset - rate limited reset requests
// =============================================================================

func (s *AuthSuite) TestPasswordReset() {
	s.Run("Normal case: requests beyond the cap are rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "ana@example.com", string(user.RoleStudent))

		for i := 0; i < 3; i++ {
			w := s.requestReset(t, "ana@example.com")
			require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
		}
		w := s.requestReset(t, "ana@example.com")
		require.Equal(t, http.StatusTooManyRequests, w.Code, w.Body.String())
	})

	s.Run("Normal case: the cap is a rolling day, not a calendar day", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "ana@example.com", string(user.RoleStudent))

		// Attempts from 23 hours ago still count against the cap even
		// when they happened before midnight.
		s.seedResetAttempts(t, userID, 3, time.Now().Add(-23*time.Hour))
		w := s.requestReset(t, "ana@example.com")
		require.Equal(t, http.StatusTooManyRequests, w.Code, w.Body.String())
	})

	s.Run("Normal case: attempts older than a day free the cap up again", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "ana@example.com", string(user.RoleStudent))

		s.seedResetAttempts(t, userID, 3, time.Now().Add(-25*time.Hour))
		w := s.requestReset(t, "ana@example.com")
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	})

	s.Run("Normal case: unknown emails are accepted without recording anything", func() {
		t := s.T()

		w := s.requestReset(t, "ghost@example.com")
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

		var count int64
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM password_reset_attempts").Scan(&count))
		require.Zero(t, count)
	})
}
