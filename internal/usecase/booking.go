package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"basecampus-api/internal/domain/booking"
	"basecampus-api/internal/domain/room"
	"basecampus-api/internal/domain/user"
	reqdto "basecampus-api/internal/handler/dto/request"
	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"
	"basecampus-api/internal/pkg/clock"
	"basecampus-api/internal/pkg/errs"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingConflict = errors.New("time slot conflicts with a confirmed booking")
	ErrForbidden       = errors.New("operation not allowed for this user")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	CreateBatch(ctx context.Context, tx db.DBTX, bs []*booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	HasConflict(ctx context.Context, tx db.DBTX, roomID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	DeleteByCourse(ctx context.Context, tx db.DBTX, courseID uuid.UUID) error
	ListActiveSlotsByCourse(ctx context.Context, tx db.DBTX, courseID uuid.UUID) ([]booking.TimeSlot, error)
	ListSessionsByCourse(ctx context.Context, courseID uuid.UUID) ([]*readmodel.SessionRM, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error)
	SumHoursInRange(ctx context.Context, tx db.DBTX, userID uuid.UUID, from, to time.Time) (float64, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error)
	List(ctx context.Context) ([]*readmodel.RoomRM, error)
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*booking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest, userID uuid.UUID, role user.Role) (*booking.Booking, error)
	ConfirmBooking(ctx context.Context, id uuid.UUID) error
	CancelBooking(ctx context.Context, id uuid.UUID, userID uuid.UUID, role user.Role) error
	DeleteBooking(ctx context.Context, id uuid.UUID, userID uuid.UUID, role user.Role) error
	ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	courseRepo  CourseRepository
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	courseRepo CourseRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		courseRepo:  courseRepo,
		db:          db,
		clock:       clock,
	}
}

func (b *bookingUseCaseImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*booking.Booking, error) {
	entity, err := req.ToDomain(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	if _, err := b.roomRepo.FindByID(ctx, tx, *entity.RoomID()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	conflict, err := b.bookingRepo.HasConflict(ctx, tx, *entity.RoomID(), entity.Slot().Start(), entity.Slot().End(), nil)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if conflict {
		return nil, ErrBookingConflict
	}

	if err := b.bookingRepo.Create(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.resyncCourseSummary(ctx, entity.CourseID())
	return entity, nil
}

func (b *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	entity, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return entity, nil
}

func (b *bookingUseCaseImpl) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error) {
	bookings, err := b.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return bookings, nil
}

func (b *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest, userID uuid.UUID, role user.Role) (*booking.Booking, error) {
	entity, err := b.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.IsOwnedBy(userID) && role != user.RoleAdmin {
		return nil, ErrForbidden
	}

	slot, err := req.Slot()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	if err := entity.ApplyEdit(req.RoomID, slot, req.NotesValue()); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	if _, err := b.roomRepo.FindByID(ctx, tx, req.RoomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	bookingID := entity.ID()
	conflict, err := b.bookingRepo.HasConflict(ctx, tx, req.RoomID, slot.Start(), slot.End(), &bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if conflict {
		return nil, ErrBookingConflict
	}

	if err := b.bookingRepo.Update(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.resyncCourseSummary(ctx, entity.CourseID())
	return entity, nil
}

// ConfirmBooking grants a pending room request. The conflict check is
// repeated here because only confirmed bookings block a room, so two
// pending requests for the same slot can coexist until one is granted.
func (b *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, id uuid.UUID) error {
	entity, err := b.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	if entity.RoomID() != nil {
		bookingID := entity.ID()
		conflict, err := b.bookingRepo.HasConflict(ctx, tx, *entity.RoomID(), entity.Slot().Start(), entity.Slot().End(), &bookingID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflict {
			return ErrBookingConflict
		}
	}

	if err := b.bookingRepo.UpdateStatus(ctx, tx, id, booking.StatusConfirmed); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (b *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID, userID uuid.UUID, role user.Role) error {
	entity, err := b.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if !entity.IsOwnedBy(userID) && role != user.RoleAdmin {
		return ErrForbidden
	}

	if err := b.bookingRepo.UpdateStatus(ctx, b.db, id, booking.StatusCancelled); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.resyncCourseSummary(ctx, entity.CourseID())
	return nil
}

func (b *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID, userID uuid.UUID, role user.Role) error {
	entity, err := b.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if !entity.IsOwnedBy(userID) && role != user.RoleAdmin {
		return ErrForbidden
	}

	if err := b.bookingRepo.Delete(ctx, b.db, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.resyncCourseSummary(ctx, entity.CourseID())
	return nil
}

func (b *bookingUseCaseImpl) ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rooms, err := b.roomRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}
	return rooms, nil
}

// resyncCourseSummary recomputes the course schedule text after a single
// booking changed. The booking mutation already committed, so a summary
// failure is logged rather than surfaced; the next schedule save will
// recompute it anyway.
func (b *bookingUseCaseImpl) resyncCourseSummary(ctx context.Context, courseID *uuid.UUID) {
	if courseID == nil {
		return
	}
	if err := syncScheduleInfo(ctx, b.db, b.bookingRepo, b.courseRepo, *courseID); err != nil {
		slog.Warn("failed to resync course schedule summary", "course_id", *courseID, "error", err)
	}
}
