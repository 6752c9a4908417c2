package repository

import (
	"context"
	"time"

	"basecampus-api/internal/domain/quiz"
	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type QuizRepository struct {
	db db.DBTX
}

func NewQuizRepository(pool db.DBTX) *QuizRepository {
	return &QuizRepository{db: pool}
}

func (r *QuizRepository) Create(ctx context.Context, tx db.DBTX, q *quiz.Quiz) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO quizzes (id, course_id, lesson_id, title) VALUES ($1, $2, $3, $4)
	`, q.ID(), q.CourseID(), q.LessonID(), q.Title())
	if err != nil {
		return infra.WrapRepoErr("failed to create quiz", err)
	}
	return nil
}

func (r *QuizRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete quiz", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quiz not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *QuizRepository) AddQuestion(ctx context.Context, tx db.DBTX, q *quiz.Question) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO quiz_questions (id, quiz_id, question_text, position) VALUES ($1, $2, $3, $4)
	`, q.ID(), q.QuizID(), q.Text(), q.Position())
	if err != nil {
		return infra.WrapRepoErr("failed to add quiz question", err)
	}
	return nil
}

func (r *QuizRepository) DeleteQuestion(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM quiz_questions WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete quiz question", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quiz question not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *QuizRepository) AddOption(ctx context.Context, tx db.DBTX, o *quiz.Option) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO quiz_options (id, question_id, option_text, is_correct) VALUES ($1, $2, $3, $4)
	`, o.ID(), o.QuestionID(), o.Text(), o.IsCorrect())
	if err != nil {
		return infra.WrapRepoErr("failed to add quiz option", err)
	}
	return nil
}

func (r *QuizRepository) DeleteOption(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM quiz_options WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete quiz option", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quiz option not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetCorrectOption clears the question's previous correct mark and sets
// the given option, keeping a single correct answer per question.
func (r *QuizRepository) SetCorrectOption(ctx context.Context, tx db.DBTX, questionID, optionID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `
		UPDATE quiz_options SET is_correct = FALSE WHERE question_id = $1
	`, questionID); err != nil {
		return infra.WrapRepoErr("failed to clear correct options", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE quiz_options SET is_correct = TRUE WHERE id = $1 AND question_id = $2
	`, optionID, questionID)
	if err != nil {
		return infra.WrapRepoErr("failed to set correct option", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quiz option not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *QuizRepository) FindByLesson(ctx context.Context, lessonID uuid.UUID) (*readmodel.QuizRM, error) {
	var rm readmodel.QuizRM
	err := r.db.QueryRow(ctx, `
		SELECT id, course_id, lesson_id, title, created_at
		FROM quizzes WHERE lesson_id = $1
	`, lessonID).Scan(&rm.ID, &rm.CourseID, &rm.LessonID, &rm.Title, &rm.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quiz not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quiz by lesson", err)
	}

	if err := r.loadQuestions(ctx, &rm); err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.QuizRM, error) {
	var rm readmodel.QuizRM
	err := r.db.QueryRow(ctx, `
		SELECT id, course_id, lesson_id, title, created_at
		FROM quizzes WHERE id = $1
	`, id).Scan(&rm.ID, &rm.CourseID, &rm.LessonID, &rm.Title, &rm.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quiz not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quiz by ID", err)
	}

	if err := r.loadQuestions(ctx, &rm); err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *QuizRepository) loadQuestions(ctx context.Context, rm *readmodel.QuizRM) error {
	rows, err := r.db.Query(ctx, `
		SELECT q.id, q.question_text, q.position,
		       o.id, o.option_text, o.is_correct, o.created_at
		FROM quiz_questions q
		LEFT JOIN quiz_options o ON o.question_id = q.id
		WHERE q.quiz_id = $1
		ORDER BY q.position ASC, o.created_at ASC
	`, rm.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to load quiz questions", err)
	}
	defer rows.Close()

	byID := map[uuid.UUID]int{}
	for rows.Next() {
		var (
			qRM readmodel.QuestionRM
			oRM readmodel.OptionRM
			oID *uuid.UUID
		)
		var optText *string
		var optCorrect *bool
		var optCreated *time.Time
		if err := rows.Scan(&qRM.ID, &qRM.Text, &qRM.Position, &oID, &optText, &optCorrect, &optCreated); err != nil {
			return infra.WrapRepoErr("failed to scan quiz question", err)
		}

		idx, ok := byID[qRM.ID]
		if !ok {
			rm.Questions = append(rm.Questions, qRM)
			idx = len(rm.Questions) - 1
			byID[qRM.ID] = idx
		}
		if oID != nil {
			oRM.ID = *oID
			oRM.Text = *optText
			oRM.IsCorrect = *optCorrect
			oRM.CreatedAt = *optCreated
			rm.Questions[idx].Options = append(rm.Questions[idx].Options, oRM)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate quiz questions", err)
	}
	return nil
}

func (r *QuizRepository) RecordAttempt(ctx context.Context, tx db.DBTX, a *quiz.Attempt) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO quiz_attempts (id, user_id, quiz_id, score, passed, answers)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID(), a.UserID(), a.QuizID(), a.Score(), a.Passed(), a.Answers())
	if err != nil {
		return infra.WrapRepoErr("failed to record quiz attempt", err)
	}
	return nil
}

func (r *QuizRepository) ListAttemptsByUser(ctx context.Context, userID, quizID uuid.UUID) ([]*readmodel.AttemptRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, quiz_id, score, passed, created_at
		FROM quiz_attempts
		WHERE user_id = $1 AND quiz_id = $2
		ORDER BY created_at DESC
	`, userID, quizID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quiz attempts", err)
	}
	defer rows.Close()

	var result []*readmodel.AttemptRM
	for rows.Next() {
		var rm readmodel.AttemptRM
		if err := rows.Scan(&rm.ID, &rm.QuizID, &rm.Score, &rm.Passed, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan quiz attempt", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate quiz attempts", err)
	}
	return result, nil
}

// AverageGradeForCourse averages the best score per quiz the student
// attempted across the course; nil when nothing was attempted.
func (r *QuizRepository) AverageGradeForCourse(ctx context.Context, userID, courseID uuid.UUID) (*float64, error) {
	var avg *float64
	err := r.db.QueryRow(ctx, `
		SELECT AVG(best_score) FROM (
			SELECT MAX(a.score) AS best_score
			FROM quiz_attempts a
			JOIN quizzes q ON q.id = a.quiz_id
			WHERE a.user_id = $1 AND q.course_id = $2
			GROUP BY a.quiz_id
		) s
	`, userID, courseID).Scan(&avg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to average quiz grades", err)
	}
	return avg, nil
}
