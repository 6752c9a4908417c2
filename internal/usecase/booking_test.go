//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"basecampus-api/internal/domain/booking"
	"basecampus-api/internal/domain/user"
	"basecampus-api/internal/infra"
	"basecampus-api/internal/pkg/clock"
	"basecampus-api/internal/usecase"
	"basecampus-api/internal/usecase/readmodel"
	usecasemock "basecampus-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	bookingRepo *usecasemock.MockBookingRepository
	roomRepo    *usecasemock.MockRoomRepository
	courseRepo  *usecasemock.MockCourseRepository
	useCase     usecase.BookingUseCase
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookingRepo = usecasemock.NewMockBookingRepository(s.ctrl)
	s.roomRepo = usecasemock.NewMockRoomRepository(s.ctrl)
	s.courseRepo = usecasemock.NewMockCourseRepository(s.ctrl)

	fixed := clock.NewMockClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	s.useCase = usecase.NewBookingUseCase(s.bookingRepo, s.roomRepo, s.courseRepo, nil, fixed)
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BookingUseCaseTestSuite) newRoomBooking(ownerID uuid.UUID) *booking.Booking {
	s.T().Helper()
	slot, err := booking.NewTimeSlot(
		time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 12, 11, 0, 0, 0, time.UTC),
	)
	require.NoError(s.T(), err)

	entity, err := booking.NewBooking(ownerID, nil, uuid.New(), slot, booking.NewNotes(""))
	require.NoError(s.T(), err)
	return entity
}

func (s *BookingUseCaseTestSuite) TestGetBooking() {
	s.Run("returns the booking", func() {
		ownerID := uuid.New()
		entity := s.newRoomBooking(ownerID)
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)

		got, err := s.useCase.GetBooking(context.Background(), entity.ID())
		require.NoError(s.T(), err)
		assert.Equal(s.T(), entity.ID(), got.ID())
		assert.Equal(s.T(), ownerID, got.UserID())
	})

	s.Run("maps repository not found", func() {
		id := uuid.New()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.useCase.GetBooking(context.Background(), id)
		assert.ErrorIs(s.T(), err, usecase.ErrBookingNotFound)
	})
}

func (s *BookingUseCaseTestSuite) TestGetUserBookings() {
	userID := uuid.New()
	rms := []*readmodel.BookingRM{
		{ID: uuid.New(), UserID: userID, Status: "confirmed"},
		{ID: uuid.New(), UserID: userID, Status: "pending"},
	}
	s.bookingRepo.EXPECT().ListByUser(gomock.Any(), userID).Return(rms, nil)

	got, err := s.useCase.GetUserBookings(context.Background(), userID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), got, 2)
	assert.Equal(s.T(), rms[0].ID, got[0].ID)
}

func (s *BookingUseCaseTestSuite) TestCancelBooking() {
	s.Run("owner cancels own booking", func() {
		ownerID := uuid.New()
		entity := s.newRoomBooking(ownerID)

		s.bookingRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.bookingRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), entity.ID(), booking.StatusCancelled).
			Return(nil)

		err := s.useCase.CancelBooking(context.Background(), entity.ID(), ownerID, user.RoleStudent)
		assert.NoError(s.T(), err)
	})

	s.Run("admin cancels someone else's booking", func() {
		entity := s.newRoomBooking(uuid.New())

		s.bookingRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.bookingRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), entity.ID(), booking.StatusCancelled).
			Return(nil)

		err := s.useCase.CancelBooking(context.Background(), entity.ID(), uuid.New(), user.RoleAdmin)
		assert.NoError(s.T(), err)
	})

	s.Run("non-owner cannot cancel", func() {
		entity := s.newRoomBooking(uuid.New())
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)

		err := s.useCase.CancelBooking(context.Background(), entity.ID(), uuid.New(), user.RoleMentor)
		assert.ErrorIs(s.T(), err, usecase.ErrForbidden)
	})

	s.Run("cancelling a course session resyncs the schedule summary", func() {
		mentorID := uuid.New()
		courseID := uuid.New()
		roomID := uuid.New()
		slot, err := booking.NewTimeSlot(
			time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 12, 11, 0, 0, 0, time.UTC),
		)
		require.NoError(s.T(), err)
		entity, err := booking.NewCourseSession(mentorID, courseID, &roomID, slot, booking.NewNotes(""), false)
		require.NoError(s.T(), err)

		remaining, err := booking.NewTimeSlot(
			time.Date(2025, 6, 19, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 19, 11, 0, 0, 0, time.UTC),
		)
		require.NoError(s.T(), err)

		s.bookingRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.bookingRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), entity.ID(), booking.StatusCancelled).
			Return(nil)
		s.bookingRepo.EXPECT().
			ListActiveSlotsByCourse(gomock.Any(), gomock.Any(), courseID).
			Return([]booking.TimeSlot{remaining}, nil)
		s.courseRepo.EXPECT().
			SetScheduleInfo(gomock.Any(), gomock.Any(), courseID, "2025-06-19 (09:00 - 11:00)").
			Return(nil)

		err = s.useCase.CancelBooking(context.Background(), entity.ID(), mentorID, user.RoleMentor)
		assert.NoError(s.T(), err)
	})
}

func (s *BookingUseCaseTestSuite) TestDeleteBooking() {
	s.Run("owner deletes own booking", func() {
		ownerID := uuid.New()
		entity := s.newRoomBooking(ownerID)

		s.bookingRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.bookingRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), entity.ID()).Return(nil)

		err := s.useCase.DeleteBooking(context.Background(), entity.ID(), ownerID, user.RoleStudent)
		assert.NoError(s.T(), err)
	})

	s.Run("non-owner cannot delete", func() {
		entity := s.newRoomBooking(uuid.New())
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)

		err := s.useCase.DeleteBooking(context.Background(), entity.ID(), uuid.New(), user.RoleStudent)
		assert.ErrorIs(s.T(), err, usecase.ErrForbidden)
	})

	s.Run("missing booking", func() {
		id := uuid.New()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		err := s.useCase.DeleteBooking(context.Background(), id, uuid.New(), user.RoleAdmin)
		assert.ErrorIs(s.T(), err, usecase.ErrBookingNotFound)
	})
}

func (s *BookingUseCaseTestSuite) TestListRooms() {
	rms := []*readmodel.RoomRM{
		{ID: uuid.New(), Name: "Sala A", MinCapacity: 2, MaxCapacity: 10},
	}
	s.roomRepo.EXPECT().List(gomock.Any()).Return(rms, nil)

	got, err := s.useCase.ListRooms(context.Background())
	require.NoError(s.T(), err)
	require.Len(s.T(), got, 1)
	assert.Equal(s.T(), "Sala A", got[0].Name)
}

func TestBookingUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}
