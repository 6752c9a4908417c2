package response

import (
	"time"

	"basecampus-api/internal/domain/quiz"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type QuizResponse struct {
	ID        uuid.UUID          `json:"id"`
	CourseID  uuid.UUID          `json:"courseId"`
	LessonID  uuid.UUID          `json:"lessonId"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
}

type QuestionResponse struct {
	ID       uuid.UUID        `json:"id"`
	Text     string           `json:"questionText"`
	Position int32            `json:"position"`
	Options  []OptionResponse `json:"options"`
}

type OptionResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"optionText"`
	IsCorrect bool      `json:"isCorrect"`
}

func FromQuizRM(rm *readmodel.QuizRM) *QuizResponse {
	resp := &QuizResponse{
		ID:        rm.ID,
		CourseID:  rm.CourseID,
		LessonID:  rm.LessonID,
		Title:     rm.Title,
		Questions: make([]QuestionResponse, len(rm.Questions)),
	}
	for i, q := range rm.Questions {
		qr := QuestionResponse{
			ID:       q.ID,
			Text:     q.Text,
			Position: q.Position,
			Options:  make([]OptionResponse, len(q.Options)),
		}
		for j, o := range q.Options {
			qr.Options[j] = OptionResponse{ID: o.ID, Text: o.Text, IsCorrect: o.IsCorrect}
		}
		resp.Questions[i] = qr
	}
	return resp
}

type AttemptResponse struct {
	ID        uuid.UUID `json:"id"`
	QuizID    uuid.UUID `json:"quizId"`
	Score     float64   `json:"score"`
	Passed    bool      `json:"passed"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

func FromAttempt(a *quiz.Attempt) *AttemptResponse {
	return &AttemptResponse{
		ID:     a.ID(),
		QuizID: a.QuizID(),
		Score:  a.Score(),
		Passed: a.Passed(),
	}
}

func FromAttemptRM(rm *readmodel.AttemptRM) *AttemptResponse {
	return &AttemptResponse{
		ID:        rm.ID,
		QuizID:    rm.QuizID,
		Score:     rm.Score,
		Passed:    rm.Passed,
		CreatedAt: rm.CreatedAt,
	}
}
