//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"basecampus-api/internal/domain/user"
	"basecampus-api/internal/infra"
	"basecampus-api/internal/pkg/clock"
	"basecampus-api/internal/pkg/config"
	"basecampus-api/internal/usecase"
	"basecampus-api/internal/usecase/readmodel"
	usecasemock "basecampus-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleUseCaseTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	bookingRepo *usecasemock.MockBookingRepository
	courseRepo  *usecasemock.MockCourseRepository
	userRepo    *usecasemock.MockUserRepository
	clock       *clock.MockClock
	useCase     usecase.ScheduleUseCase
}

func (s *ScheduleUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookingRepo = usecasemock.NewMockBookingRepository(s.ctrl)
	s.courseRepo = usecasemock.NewMockCourseRepository(s.ctrl)
	s.userRepo = usecasemock.NewMockUserRepository(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))

	uc, err := usecase.NewScheduleUseCase(
		s.bookingRepo, s.courseRepo, s.userRepo, nil, s.clock, config.NewTestConfig(),
	)
	require.NoError(s.T(), err)
	s.useCase = uc
}

func (s *ScheduleUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ScheduleUseCaseTestSuite) newMentor(limit *float64) *user.User {
	s.T().Helper()
	email, err := user.NewEmail("mentor@example.com")
	require.NoError(s.T(), err)
	u, err := user.NewUser(email, "hash", "Mentor", user.RoleMentor)
	require.NoError(s.T(), err)
	if limit == nil {
		return u
	}
	return user.ReconstructUser(
		u.ID(), u.Email(), u.PasswordHash(), u.Role(), u.FullName(),
		"", "", "", "", "", "", "", limit, true, u.CreatedAt(), u.UpdatedAt(),
	)
}

func (s *ScheduleUseCaseTestSuite) TestGetCourseSchedule() {
	courseID := uuid.New()
	sessions := []*readmodel.SessionRM{
		{BookingID: uuid.New(), Date: "2025-06-12", StartTime: "09:00", EndTime: "11:00", Status: "pending"},
	}
	s.bookingRepo.EXPECT().ListSessionsByCourse(gomock.Any(), courseID).Return(sessions, nil)

	got, err := s.useCase.GetCourseSchedule(context.Background(), courseID)
	require.NoError(s.T(), err)
	require.Len(s.T(), got, 1)
	assert.Equal(s.T(), "2025-06-12", got[0].Date)
}

func (s *ScheduleUseCaseTestSuite) TestGetMonthlyUsage() {
	s.Run("default limit applies when the user has none", func() {
		mentor := s.newMentor(nil)
		s.userRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), mentor.ID()).Return(mentor, nil)
		s.bookingRepo.EXPECT().
			SumHoursInRange(gomock.Any(), gomock.Any(), mentor.ID(), gomock.Any(), gomock.Any()).
			Return(12.5, nil)

		quota, err := s.useCase.GetMonthlyUsage(context.Background(), mentor.ID())
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 32.0, quota.LimitHours)
		assert.Equal(s.T(), 12.5, quota.UsedHours)
	})

	s.Run("custom limit wins over the default", func() {
		limit := 48.0
		mentor := s.newMentor(&limit)
		s.userRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), mentor.ID()).Return(mentor, nil)
		s.bookingRepo.EXPECT().
			SumHoursInRange(gomock.Any(), gomock.Any(), mentor.ID(), gomock.Any(), gomock.Any()).
			Return(0.0, nil)

		quota, err := s.useCase.GetMonthlyUsage(context.Background(), mentor.ID())
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 48.0, quota.LimitHours)
	})

	s.Run("usage window covers the whole calendar month", func() {
		mentor := s.newMentor(nil)
		lima, err := time.LoadLocation("America/Lima")
		require.NoError(s.T(), err)

		var gotFrom, gotTo time.Time
		s.userRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), mentor.ID()).Return(mentor, nil)
		s.bookingRepo.EXPECT().
			SumHoursInRange(gomock.Any(), gomock.Any(), mentor.ID(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, from, to time.Time) (float64, error) {
				gotFrom, gotTo = from, to
				return 0, nil
			})

		_, err = s.useCase.GetMonthlyUsage(context.Background(), mentor.ID())
		require.NoError(s.T(), err)
		assert.Equal(s.T(), time.Date(2025, 6, 1, 0, 0, 0, 0, lima), gotFrom)
		assert.True(s.T(), gotTo.After(time.Date(2025, 6, 30, 23, 59, 59, 0, lima)))
		assert.True(s.T(), gotTo.Before(time.Date(2025, 7, 1, 0, 0, 0, 0, lima)))
	})

	s.Run("unknown user", func() {
		id := uuid.New()
		s.userRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := s.useCase.GetMonthlyUsage(context.Background(), id)
		assert.ErrorIs(s.T(), err, usecase.ErrUserNotFound)
	})
}

func TestScheduleUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleUseCaseTestSuite))
}
