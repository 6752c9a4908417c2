package repository

import (
	"context"
	"time"

	"basecampus-api/internal/domain/booking"
	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{db: pool}
}

const insertBookingSQL = `
	INSERT INTO bookings (id, user_id, course_id, room_id, start_time, end_time, status, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, insertBookingSQL,
		b.ID(), b.UserID(), b.CourseID(), b.RoomID(),
		b.Slot().Start(), b.Slot().End(), string(b.Status()), b.Notes().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// CreateBatch inserts every booking or none; callers run it inside a
// transaction when the all-or-nothing guarantee matters.
func (r *BookingRepository) CreateBatch(ctx context.Context, tx db.DBTX, bs []*booking.Booking) error {
	for _, b := range bs {
		if err := r.Create(ctx, tx, b); err != nil {
			return err
		}
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, course_id, room_id, start_time, end_time, status, notes, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`, id)

	b, err := scanBooking(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

// HasConflict reports whether any confirmed booking on the room touches
// the candidate window. Endpoints are inclusive on both sides, so a
// session ending 10:00 blocks one starting 10:00.
func (r *BookingRepository) HasConflict(ctx context.Context, tx db.DBTX, roomID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1
			  AND status = 'confirmed'
			  AND start_time <= $3
			  AND end_time >= $2
	`
	args := []any{roomID, start, end}
	if excludeID != nil {
		query += ` AND id <> $4`
		args = append(args, *excludeID)
	}
	query += `)`

	var exists bool
	if err := tx.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking conflict", err)
	}
	return exists, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, `
		UPDATE bookings
		SET room_id = $2, start_time = $3, end_time = $4, status = $5, notes = $6, updated_at = now()
		WHERE id = $1
	`, b.ID(), b.RoomID(), b.Slot().Start(), b.Slot().End(), string(b.Status()), b.Notes().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx, `
		UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1
	`, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// DeleteByCourse removes the whole stored schedule of a course, cancelled
// rows included.
func (r *BookingRepository) DeleteByCourse(ctx context.Context, tx db.DBTX, courseID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE course_id = $1`, courseID); err != nil {
		return infra.WrapRepoErr("failed to delete course bookings", err)
	}
	return nil
}

// ListActiveSlotsByCourse returns the time slots of every non-cancelled
// booking of a course, ordered by start time. This is the input of the
// schedule summary recompute.
func (r *BookingRepository) ListActiveSlotsByCourse(ctx context.Context, tx db.DBTX, courseID uuid.UUID) ([]booking.TimeSlot, error) {
	rows, err := tx.Query(ctx, `
		SELECT start_time, end_time
		FROM bookings
		WHERE course_id = $1 AND status <> 'cancelled'
		ORDER BY start_time ASC
	`, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list course slots", err)
	}
	defer rows.Close()

	var slots []booking.TimeSlot
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan course slot", err)
		}
		slot, err := booking.NewTimeSlot(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("stored slot is invalid", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate course slots", err)
	}
	return slots, nil
}

func (r *BookingRepository) ListSessionsByCourse(ctx context.Context, courseID uuid.UUID) ([]*readmodel.SessionRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, room_id, start_time, end_time, status
		FROM bookings
		WHERE course_id = $1 AND status <> 'cancelled'
		ORDER BY start_time ASC
	`, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list course sessions", err)
	}
	defer rows.Close()

	var sessions []*readmodel.SessionRM
	for rows.Next() {
		var (
			id     uuid.UUID
			roomID *uuid.UUID
			start  time.Time
			end    time.Time
			status string
		)
		if err := rows.Scan(&id, &roomID, &start, &end, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan course session", err)
		}
		sessions = append(sessions, &readmodel.SessionRM{
			BookingID: id,
			Date:      start.Format("2006-01-02"),
			StartTime: start.Format("15:04"),
			EndTime:   end.Format("15:04"),
			RoomID:    roomID,
			Status:    status,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate course sessions", err)
	}
	return sessions, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.user_id, b.course_id, c.title, b.room_id, rm.name,
		       b.start_time, b.end_time, b.status, b.notes, b.created_at, b.updated_at
		FROM bookings b
		LEFT JOIN courses c ON c.id = b.course_id
		LEFT JOIN rooms rm ON rm.id = b.room_id
		WHERE b.user_id = $1
		ORDER BY b.start_time DESC
	`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		var rm readmodel.BookingRM
		var notes *string
		if err := rows.Scan(
			&rm.ID, &rm.UserID, &rm.CourseID, &rm.CourseTitle, &rm.RoomID, &rm.RoomName,
			&rm.StartTime, &rm.EndTime, &rm.Status, &notes, &rm.CreatedAt, &rm.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		if notes != nil && *notes != "" {
			rm.Notes = notes
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

// SumHoursInRange totals the duration in hours of the user's
// non-cancelled bookings whose whole interval falls inside [from, to].
// A booking spanning the range boundary is not counted.
func (r *BookingRepository) SumHoursInRange(ctx context.Context, tx db.DBTX, userID uuid.UUID, from, to time.Time) (float64, error) {
	var hours float64
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(EXTRACT(EPOCH FROM (end_time - start_time)) / 3600), 0)
		FROM bookings
		WHERE user_id = $1
		  AND status <> 'cancelled'
		  AND start_time >= $2
		  AND end_time <= $3
	`, userID, from, to).Scan(&hours)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum booked hours", err)
	}
	return hours, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, userID       uuid.UUID
		courseID, roomID *uuid.UUID
		start, end       time.Time
		status, notes    string
		createdAt        time.Time
		updatedAt        time.Time
	)
	if err := row.Scan(&id, &userID, &courseID, &roomID, &start, &end, &status, &notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, userID, courseID, roomID,
		slot, booking.Status(status), booking.NewNotes(notes),
		createdAt, updatedAt,
	), nil
}
