package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type QuizRM struct {
	ID        uuid.UUID    `json:"id"`
	CourseID  uuid.UUID    `json:"course_id"`
	LessonID  uuid.UUID    `json:"lesson_id"`
	Title     string       `json:"title"`
	Questions []QuestionRM `json:"questions"`
	CreatedAt time.Time    `json:"created_at"`
}

type QuestionRM struct {
	ID       uuid.UUID  `json:"id"`
	Text     string     `json:"question_text"`
	Position int32      `json:"position"`
	Options  []OptionRM `json:"options"`
}

type OptionRM struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"option_text"`
	IsCorrect bool      `json:"is_correct"`
	CreatedAt time.Time `json:"created_at"`
}

type AttemptRM struct {
	ID        uuid.UUID `json:"id"`
	QuizID    uuid.UUID `json:"quiz_id"`
	Score     float64   `json:"score"`
	Passed    bool      `json:"passed"`
	CreatedAt time.Time `json:"created_at"`
}
