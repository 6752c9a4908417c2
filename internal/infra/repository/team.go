package repository

import (
	"context"

	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// TeamRepository covers instructor invites and course staff membership.
type TeamRepository struct {
	db db.DBTX
}

func NewTeamRepository(pool db.DBTX) *TeamRepository {
	return &TeamRepository{db: pool}
}

func (r *TeamRepository) CreateInvite(ctx context.Context, tx db.DBTX, courseID uuid.UUID, email, role, token string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := tx.Exec(ctx, `
		INSERT INTO course_invites (id, course_id, email, role, token)
		VALUES ($1, $2, $3, $4, $5)
	`, id, courseID, email, role, token)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create invite", err)
	}
	return id, nil
}

func (r *TeamRepository) InviteExists(ctx context.Context, tx db.DBTX, courseID uuid.UUID, email string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM course_invites WHERE course_id = $1 AND email = $2)
	`, courseID, email).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check invite existence", err)
	}
	return exists, nil
}

func (r *TeamRepository) FindInviteByToken(ctx context.Context, tx db.DBTX, token string) (*readmodel.InviteRM, error) {
	var rm readmodel.InviteRM
	err := tx.QueryRow(ctx, `
		SELECT id, course_id, email, role, token, created_at
		FROM course_invites WHERE token = $1
	`, token).Scan(&rm.ID, &rm.CourseID, &rm.Email, &rm.Role, &rm.Token, &rm.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invite not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invite by token", err)
	}
	return &rm, nil
}

func (r *TeamRepository) DeleteInvite(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM course_invites WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete invite", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invite not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TeamRepository) ListInvites(ctx context.Context, courseID uuid.UUID) ([]*readmodel.InviteRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, course_id, email, role, token, created_at
		FROM course_invites
		WHERE course_id = $1
		ORDER BY created_at DESC
	`, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invites", err)
	}
	defer rows.Close()

	var result []*readmodel.InviteRM
	for rows.Next() {
		var rm readmodel.InviteRM
		if err := rows.Scan(&rm.ID, &rm.CourseID, &rm.Email, &rm.Role, &rm.Token, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invite row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate invite rows", err)
	}
	return result, nil
}

func (r *TeamRepository) AddInstructor(ctx context.Context, tx db.DBTX, courseID, instructorID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO course_instructors (course_id, instructor_id)
		VALUES ($1, $2)
		ON CONFLICT (course_id, instructor_id) DO NOTHING
	`, courseID, instructorID)
	if err != nil {
		return infra.WrapRepoErr("failed to add course instructor", err)
	}
	return nil
}

func (r *TeamRepository) RemoveInstructor(ctx context.Context, tx db.DBTX, courseID, instructorID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		DELETE FROM course_instructors WHERE course_id = $1 AND instructor_id = $2
	`, courseID, instructorID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove course instructor", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("course instructor not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TeamRepository) ListInstructors(ctx context.Context, courseID uuid.UUID) ([]*readmodel.InstructorRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ci.instructor_id, u.full_name, u.email, COALESCE(u.avatar_url, ''), ci.added_at
		FROM course_instructors ci
		JOIN users u ON u.id = ci.instructor_id
		WHERE ci.course_id = $1
		ORDER BY ci.added_at ASC
	`, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list course instructors", err)
	}
	defer rows.Close()

	var result []*readmodel.InstructorRM
	for rows.Next() {
		var rm readmodel.InstructorRM
		if err := rows.Scan(&rm.InstructorID, &rm.FullName, &rm.Email, &rm.AvatarURL, &rm.AddedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan instructor row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate instructor rows", err)
	}
	return result, nil
}

func (r *TeamRepository) IsInstructor(ctx context.Context, tx db.DBTX, courseID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM course_instructors WHERE course_id = $1 AND instructor_id = $2)
	`, courseID, userID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check instructor membership", err)
	}
	return exists, nil
}
