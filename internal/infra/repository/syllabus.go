package repository

import (
	"context"

	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// SyllabusRepository covers course modules, lessons and per-student
// lesson completion marks.
type SyllabusRepository struct {
	db db.DBTX
}

func NewSyllabusRepository(pool db.DBTX) *SyllabusRepository {
	return &SyllabusRepository{db: pool}
}

func (r *SyllabusRepository) CreateModule(ctx context.Context, tx db.DBTX, courseID uuid.UUID, title string, position int32, instructorID *uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	_, err := tx.Exec(ctx, `
		INSERT INTO course_modules (id, course_id, title, position, instructor_id)
		VALUES ($1, $2, $3, $4, $5)
	`, id, courseID, title, position, instructorID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create course module", err)
	}
	return id, nil
}

func (r *SyllabusRepository) UpdateModule(ctx context.Context, tx db.DBTX, id uuid.UUID, title string, position int32, instructorID *uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE course_modules SET title = $2, position = $3, instructor_id = $4 WHERE id = $1
	`, id, title, position, instructorID)
	if err != nil {
		return infra.WrapRepoErr("failed to update course module", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("course module not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SyllabusRepository) DeleteModule(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM course_modules WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete course module", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("course module not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SyllabusRepository) ListModules(ctx context.Context, courseID uuid.UUID) ([]*readmodel.ModuleRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, course_id, title, position, instructor_id
		FROM course_modules
		WHERE course_id = $1
		ORDER BY position ASC
	`, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list course modules", err)
	}
	defer rows.Close()

	var result []*readmodel.ModuleRM
	for rows.Next() {
		var rm readmodel.ModuleRM
		if err := rows.Scan(&rm.ID, &rm.CourseID, &rm.Title, &rm.Position, &rm.InstructorID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan module row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate module rows", err)
	}
	return result, nil
}

// ModuleCourseID resolves which course a module belongs to, for
// ownership checks before mutating syllabus content.
func (r *SyllabusRepository) ModuleCourseID(ctx context.Context, tx db.DBTX, moduleID uuid.UUID) (uuid.UUID, error) {
	var courseID uuid.UUID
	err := tx.QueryRow(ctx, `SELECT course_id FROM course_modules WHERE id = $1`, moduleID).Scan(&courseID)
	if err != nil {
		if infra.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("course module not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to resolve module course", err)
	}
	return courseID, nil
}

func (r *SyllabusRepository) CreateLesson(ctx context.Context, tx db.DBTX, moduleID uuid.UUID, title, content, videoURL string, position int32) (uuid.UUID, error) {
	id := uuid.New()
	_, err := tx.Exec(ctx, `
		INSERT INTO lessons (id, module_id, title, content, video_url, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, moduleID, title, content, videoURL, position)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create lesson", err)
	}
	return id, nil
}

func (r *SyllabusRepository) UpdateLesson(ctx context.Context, tx db.DBTX, id uuid.UUID, title, content, videoURL string, position int32) error {
	tag, err := tx.Exec(ctx, `
		UPDATE lessons SET title = $2, content = $3, video_url = $4, position = $5 WHERE id = $1
	`, id, title, content, videoURL, position)
	if err != nil {
		return infra.WrapRepoErr("failed to update lesson", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SyllabusRepository) DeleteLesson(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete lesson", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SyllabusRepository) ListLessons(ctx context.Context, moduleID uuid.UUID) ([]*readmodel.LessonRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, module_id, title, COALESCE(content, ''), COALESCE(video_url, ''), position
		FROM lessons
		WHERE module_id = $1
		ORDER BY position ASC
	`, moduleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lessons", err)
	}
	defer rows.Close()

	var result []*readmodel.LessonRM
	for rows.Next() {
		var rm readmodel.LessonRM
		if err := rows.Scan(&rm.ID, &rm.ModuleID, &rm.Title, &rm.Content, &rm.VideoURL, &rm.Position); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lesson row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lesson rows", err)
	}
	return result, nil
}

func (r *SyllabusRepository) LessonCourseID(ctx context.Context, tx db.DBTX, lessonID uuid.UUID) (uuid.UUID, error) {
	var courseID uuid.UUID
	err := tx.QueryRow(ctx, `
		SELECT m.course_id
		FROM lessons l
		JOIN course_modules m ON m.id = l.module_id
		WHERE l.id = $1
	`, lessonID).Scan(&courseID)
	if err != nil {
		if infra.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("lesson not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to resolve lesson course", err)
	}
	return courseID, nil
}

// MarkLessonComplete is idempotent; repeated completions of the same
// lesson keep the original timestamp.
func (r *SyllabusRepository) MarkLessonComplete(ctx context.Context, tx db.DBTX, userID, lessonID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO lesson_completions (user_id, lesson_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, lesson_id) DO NOTHING
	`, userID, lessonID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark lesson complete", err)
	}
	return nil
}

func (r *SyllabusRepository) ListCompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		SELECT lc.lesson_id
		FROM lesson_completions lc
		JOIN lessons l ON l.id = lc.lesson_id
		JOIN course_modules m ON m.id = l.module_id
		WHERE lc.user_id = $1 AND m.course_id = $2
	`, userID, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list completed lessons", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan completed lesson", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate completed lessons", err)
	}
	return ids, nil
}
