package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"basecampus-api/internal/domain/booking"
	"basecampus-api/internal/domain/course"
	"basecampus-api/internal/domain/user"
	reqdto "basecampus-api/internal/handler/dto/request"
	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"
	"basecampus-api/internal/pkg/clock"
	"basecampus-api/internal/pkg/config"
	"basecampus-api/internal/pkg/errs"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrQuotaExceeded = errors.New("monthly room hours quota exceeded")

type ScheduleUseCase interface {
	ReplaceSchedule(ctx context.Context, courseID uuid.UUID, req reqdto.ReplaceScheduleRequest, userID uuid.UUID, role user.Role) ([]*readmodel.SessionRM, error)
	AddSessions(ctx context.Context, courseID uuid.UUID, req reqdto.AddSessionsRequest, userID uuid.UUID, role user.Role) ([]*readmodel.SessionRM, error)
	GetCourseSchedule(ctx context.Context, courseID uuid.UUID) ([]*readmodel.SessionRM, error)
	GetMonthlyUsage(ctx context.Context, userID uuid.UUID) (*readmodel.QuotaRM, error)
}

type scheduleUseCaseImpl struct {
	bookingRepo BookingRepository
	courseRepo  CourseRepository
	userRepo    UserRepository
	db          *pgxpool.Pool
	clock       clock.Clock
	quotaCfg    config.QuotaConfig
	location    *time.Location
}

func NewScheduleUseCase(
	bookingRepo BookingRepository,
	courseRepo CourseRepository,
	userRepo UserRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.Config,
) (ScheduleUseCase, error) {
	loc, err := time.LoadLocation(cfg.DB.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load schedule timezone")
	}

	return &scheduleUseCaseImpl{
		bookingRepo: bookingRepo,
		courseRepo:  courseRepo,
		userRepo:    userRepo,
		db:          db,
		clock:       clock,
		quotaCfg:    cfg.Quota,
		location:    loc,
	}, nil
}

// ReplaceSchedule swaps the entire stored schedule of a course for the
// submitted one in a single transaction, then recomputes the course's
// schedule summary from what was actually written. Every inserted
// session starts over in pending unless the course is online-live, in
// which case sessions carry no room and are confirmed immediately.
func (s *scheduleUseCaseImpl) ReplaceSchedule(ctx context.Context, courseID uuid.UUID, req reqdto.ReplaceScheduleRequest, userID uuid.UUID, role user.Role) ([]*readmodel.SessionRM, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	courseEntity, err := s.loadOwnedCourse(ctx, tx, courseID, userID, role)
	if err != nil {
		return nil, err
	}

	sessions, err := s.buildSessions(courseEntity, req.Sessions)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.DeleteByCourse(ctx, tx, courseID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := s.checkQuota(ctx, tx, courseEntity.MentorID(), sessions); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.CreateBatch(ctx, tx, sessions); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := syncScheduleInfo(ctx, tx, s.bookingRepo, s.courseRepo, courseID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return s.GetCourseSchedule(ctx, courseID)
}

// AddSessions appends sessions to the existing schedule. Validation is
// all-or-nothing: one bad row or one conflicting room slot rejects the
// whole batch before anything is written.
func (s *scheduleUseCaseImpl) AddSessions(ctx context.Context, courseID uuid.UUID, req reqdto.AddSessionsRequest, userID uuid.UUID, role user.Role) ([]*readmodel.SessionRM, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	courseEntity, err := s.loadOwnedCourse(ctx, tx, courseID, userID, role)
	if err != nil {
		return nil, err
	}

	sessions, err := s.buildSessions(courseEntity, req.Sessions)
	if err != nil {
		return nil, err
	}

	if err := s.checkSessionConflicts(ctx, tx, sessions); err != nil {
		return nil, err
	}

	if err := s.checkQuota(ctx, tx, courseEntity.MentorID(), sessions); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.CreateBatch(ctx, tx, sessions); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := syncScheduleInfo(ctx, tx, s.bookingRepo, s.courseRepo, courseID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return s.GetCourseSchedule(ctx, courseID)
}

func (s *scheduleUseCaseImpl) GetCourseSchedule(ctx context.Context, courseID uuid.UUID) ([]*readmodel.SessionRM, error) {
	sessions, err := s.bookingRepo.ListSessionsByCourse(ctx, courseID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list course schedule")
	}
	return sessions, nil
}

func (s *scheduleUseCaseImpl) GetMonthlyUsage(ctx context.Context, userID uuid.UUID) (*readmodel.QuotaRM, error) {
	userEntity, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	from, to := clock.MonthRange(s.clock.Now().In(s.location))
	used, err := s.bookingRepo.SumHoursInRange(ctx, s.db, userID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sum booked hours")
	}

	return &readmodel.QuotaRM{
		LimitHours: userEntity.EffectiveMonthlyHours(s.quotaCfg.DefaultMonthlyHours),
		UsedHours:  used,
	}, nil
}

func (s *scheduleUseCaseImpl) loadOwnedCourse(ctx context.Context, tx db.DBTX, courseID, userID uuid.UUID, role user.Role) (*course.Course, error) {
	courseEntity, err := s.courseRepo.FindByID(ctx, tx, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !courseEntity.IsOwnedBy(userID) && role != user.RoleAdmin {
		return nil, ErrForbidden
	}
	return courseEntity, nil
}

func (s *scheduleUseCaseImpl) buildSessions(courseEntity *course.Course, inputs []reqdto.SessionInput) ([]*booking.Booking, error) {
	onlineLive := courseEntity.IsOnlineLive()

	sessions := make([]*booking.Booking, 0, len(inputs))
	for _, in := range inputs {
		slot, err := in.ToSlot(s.location)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidationFailed)
		}

		roomID := in.RoomID
		if roomID == nil && !onlineLive {
			roomID = courseEntity.RoomID()
		}

		b, err := booking.NewCourseSession(courseEntity.MentorID(), courseEntity.ID(), roomID, slot, in.NotesValue(), onlineLive)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "session "+in.Date+" "+in.StartTime), ErrDomainValidationFailed)
		}
		sessions = append(sessions, b)
	}
	return sessions, nil
}

// checkSessionConflicts walks the batch in order and rejects it whole
// as soon as one session overlaps a confirmed booking on its room. The
// error names the offending session's start so the caller can surface
// it. Roomless sessions have no physical contention and are skipped.
func (s *scheduleUseCaseImpl) checkSessionConflicts(ctx context.Context, tx db.DBTX, sessions []*booking.Booking) error {
	for _, b := range sessions {
		if b.RoomID() == nil {
			continue
		}
		conflict, err := s.bookingRepo.HasConflict(ctx, tx, *b.RoomID(), b.Slot().Start(), b.Slot().End(), nil)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflict {
			return errs.Wrap(ErrBookingConflict, "session "+b.Slot().Start().In(s.location).Format("2006-01-02 15:04"))
		}
	}
	return nil
}

// checkQuota projects the mentor's room hours for the current month if
// the new sessions land. With enforcement off the projection is only
// logged, matching the advisory behavior of the quota display.
func (s *scheduleUseCaseImpl) checkQuota(ctx context.Context, tx db.DBTX, mentorID uuid.UUID, sessions []*booking.Booking) error {
	from, to := clock.MonthRange(s.clock.Now().In(s.location))

	used, err := s.bookingRepo.SumHoursInRange(ctx, tx, mentorID, from, to)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	projected := used
	for _, b := range sessions {
		if b.Slot().Within(from, to) {
			projected += b.Slot().Hours()
		}
	}

	userEntity, err := s.userRepo.FindByID(ctx, tx, mentorID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	limit := userEntity.EffectiveMonthlyHours(s.quotaCfg.DefaultMonthlyHours)

	if projected <= limit {
		return nil
	}

	if s.quotaCfg.Enforce {
		return ErrQuotaExceeded
	}
	slog.Info("monthly hours quota exceeded",
		"mentor_id", mentorID, "projected_hours", projected, "limit_hours", limit)
	return nil
}

// syncScheduleInfo recomputes the denormalized schedule text of a course
// from its non-cancelled bookings. Always a full recompute so the stored
// summary cannot drift from the booking rows.
func syncScheduleInfo(ctx context.Context, tx db.DBTX, bookings BookingRepository, courses CourseRepository, courseID uuid.UUID) error {
	slots, err := bookings.ListActiveSlotsByCourse(ctx, tx, courseID)
	if err != nil {
		return err
	}
	return courses.SetScheduleInfo(ctx, tx, courseID, course.BuildScheduleSummary(slots))
}
