package repository

import (
	"context"
	"time"

	"basecampus-api/internal/domain/course"
	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CourseRepository struct {
	db db.DBTX
}

func NewCourseRepository(pool db.DBTX) *CourseRepository {
	return &CourseRepository{db: pool}
}

const selectCourseSQL = `
	SELECT id, mentor_id, title, description, price_cents, modality, is_live, is_published,
	       max_students, address, meeting_platform, room_id, schedule_info, image_url, logo_url,
	       created_at, updated_at
	FROM courses
`

func (r *CourseRepository) Create(ctx context.Context, tx db.DBTX, c *course.Course) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO courses (id, mentor_id, title, description, price_cents, modality, is_live)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, c.ID(), c.MentorID(), c.Title(), c.Description(), c.PriceCents(), string(c.Modality()), c.IsLive())
	if err != nil {
		return infra.WrapRepoErr("failed to create course", err)
	}
	return nil
}

func (r *CourseRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*course.Course, error) {
	row := tx.QueryRow(ctx, selectCourseSQL+` WHERE id = $1`, id)

	c, err := scanCourse(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find course by ID", err)
	}
	return c, nil
}

func (r *CourseRepository) Update(ctx context.Context, tx db.DBTX, c *course.Course) error {
	tag, err := tx.Exec(ctx, `
		UPDATE courses
		SET title = $2, description = $3, price_cents = $4, modality = $5, is_live = $6,
		    max_students = $7, address = $8, meeting_platform = $9, room_id = $10,
		    image_url = $11, logo_url = $12, updated_at = now()
		WHERE id = $1
	`, c.ID(), c.Title(), c.Description(), c.PriceCents(), string(c.Modality()), c.IsLive(),
		c.MaxStudents(), c.Address(), c.MeetingPlatform(), c.RoomID(), c.ImageURL(), c.LogoURL())
	if err != nil {
		return infra.WrapRepoErr("failed to update course", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("course not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CourseRepository) SetPublished(ctx context.Context, tx db.DBTX, id uuid.UUID, published bool) error {
	tag, err := tx.Exec(ctx, `
		UPDATE courses SET is_published = $2, updated_at = now() WHERE id = $1
	`, id, published)
	if err != nil {
		return infra.WrapRepoErr("failed to update course publication", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("course not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetScheduleInfo stores the recomputed human-readable schedule summary.
func (r *CourseRepository) SetScheduleInfo(ctx context.Context, tx db.DBTX, id uuid.UUID, summary string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE courses SET schedule_info = $2, updated_at = now() WHERE id = $1
	`, id, summary)
	if err != nil {
		return infra.WrapRepoErr("failed to update schedule info", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("course not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete course", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("course not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CourseRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*readmodel.CourseRM, error) {
	rows, err := r.db.Query(ctx, selectCourseSQL+` WHERE mentor_id = $1 ORDER BY created_at DESC`, mentorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courses by mentor", err)
	}
	defer rows.Close()

	return collectCourseRMs(rows)
}

func (r *CourseRepository) ListPublished(ctx context.Context) ([]*readmodel.CourseRM, error) {
	rows, err := r.db.Query(ctx, selectCourseSQL+` WHERE is_published = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list published courses", err)
	}
	defer rows.Close()

	return collectCourseRMs(rows)
}

func collectCourseRMs(rows pgx.Rows) ([]*readmodel.CourseRM, error) {
	var result []*readmodel.CourseRM
	for rows.Next() {
		var rm readmodel.CourseRM
		var description, address, meetingPlatform, scheduleInfo, imageURL, logoURL *string
		if err := rows.Scan(
			&rm.ID, &rm.MentorID, &rm.Title, &description, &rm.PriceCents, &rm.Modality,
			&rm.IsLive, &rm.IsPublished, &rm.MaxStudents, &address, &meetingPlatform,
			&rm.RoomID, &scheduleInfo, &imageURL, &logoURL, &rm.CreatedAt, &rm.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan course row", err)
		}
		rm.Description = deref(description)
		rm.Address = deref(address)
		rm.MeetingPlatform = deref(meetingPlatform)
		rm.ScheduleInfo = deref(scheduleInfo)
		rm.ImageURL = deref(imageURL)
		rm.LogoURL = deref(logoURL)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate course rows", err)
	}
	return result, nil
}

func scanCourse(row rowScanner) (*course.Course, error) {
	var (
		id, mentorID                                              uuid.UUID
		title                                                     string
		description, address, meetingPlatform                     *string
		scheduleInfo, imageURL, logoURL                           *string
		priceCents                                                int64
		modality                                                  string
		isLive, isPublished                                       bool
		maxStudents                                               *int32
		roomID                                                    *uuid.UUID
		createdAt, updatedAt                                      time.Time
	)
	if err := row.Scan(
		&id, &mentorID, &title, &description, &priceCents, &modality, &isLive, &isPublished,
		&maxStudents, &address, &meetingPlatform, &roomID, &scheduleInfo, &imageURL, &logoURL,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	return course.ReconstructCourse(
		id, mentorID, title, deref(description), priceCents,
		course.Modality(modality), isLive, isPublished,
		maxStudents, deref(address), deref(meetingPlatform), roomID,
		deref(scheduleInfo), deref(imageURL), deref(logoURL),
		createdAt, updatedAt,
	), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
