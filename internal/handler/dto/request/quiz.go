package request

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CreateQuizRequest struct {
	LessonID uuid.UUID `json:"lesson_id" binding:"required"`
	Title    string    `json:"title" binding:"required"`
}

type AddQuestionRequest struct {
	Text     string `json:"question_text" binding:"required"`
	Position int32  `json:"position" binding:"min=0"`
}

type AddOptionRequest struct {
	Text      string `json:"option_text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type SubmitAttemptRequest struct {
	Score   float64         `json:"score" binding:"min=0,max=100"`
	Passed  bool            `json:"passed"`
	Answers json.RawMessage `json:"answers"`
}
