package quiz

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("quiz title cannot be empty")
	ErrEmptyQuestionText = errors.New("question text cannot be empty")
	ErrEmptyOptionText   = errors.New("option text cannot be empty")
	ErrInvalidScore      = errors.New("score must be between 0 and 100")
)

type Quiz struct {
	id        uuid.UUID
	courseID  uuid.UUID
	lessonID  uuid.UUID
	title     string
	createdAt time.Time
}

func NewQuiz(courseID, lessonID uuid.UUID, title string) (*Quiz, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	return &Quiz{
		id:       uuid.New(),
		courseID: courseID,
		lessonID: lessonID,
		title:    title,
	}, nil
}

func ReconstructQuiz(id, courseID, lessonID uuid.UUID, title string, createdAt time.Time) *Quiz {
	return &Quiz{id: id, courseID: courseID, lessonID: lessonID, title: title, createdAt: createdAt}
}

func (q *Quiz) ID() uuid.UUID        { return q.id }
func (q *Quiz) CourseID() uuid.UUID  { return q.courseID }
func (q *Quiz) LessonID() uuid.UUID  { return q.lessonID }
func (q *Quiz) Title() string        { return q.title }
func (q *Quiz) CreatedAt() time.Time { return q.createdAt }

type Question struct {
	id       uuid.UUID
	quizID   uuid.UUID
	text     string
	position int32
}

func NewQuestion(quizID uuid.UUID, text string, position int32) (*Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyQuestionText
	}

	return &Question{
		id:       uuid.New(),
		quizID:   quizID,
		text:     text,
		position: position,
	}, nil
}

func (q *Question) ID() uuid.UUID     { return q.id }
func (q *Question) QuizID() uuid.UUID { return q.quizID }
func (q *Question) Text() string      { return q.text }
func (q *Question) Position() int32   { return q.position }

type Option struct {
	id         uuid.UUID
	questionID uuid.UUID
	text       string
	isCorrect  bool
}

func NewOption(questionID uuid.UUID, text string, isCorrect bool) (*Option, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyOptionText
	}

	return &Option{
		id:         uuid.New(),
		questionID: questionID,
		text:       text,
		isCorrect:  isCorrect,
	}, nil
}

func (o *Option) ID() uuid.UUID         { return o.id }
func (o *Option) QuestionID() uuid.UUID { return o.questionID }
func (o *Option) Text() string          { return o.text }
func (o *Option) IsCorrect() bool       { return o.isCorrect }

// Attempt records one quiz submission. Answers are stored as opaque
// JSON; grading happened client-side in the original flow and the score
// is trusted as submitted.
type Attempt struct {
	id      uuid.UUID
	userID  uuid.UUID
	quizID  uuid.UUID
	score   float64
	passed  bool
	answers []byte
}

func NewAttempt(userID, quizID uuid.UUID, score float64, passed bool, answers []byte) (*Attempt, error) {
	if score < 0 || score > 100 {
		return nil, ErrInvalidScore
	}

	return &Attempt{
		id:      uuid.New(),
		userID:  userID,
		quizID:  quizID,
		score:   score,
		passed:  passed,
		answers: answers,
	}, nil
}

func (a *Attempt) ID() uuid.UUID     { return a.id }
func (a *Attempt) UserID() uuid.UUID { return a.userID }
func (a *Attempt) QuizID() uuid.UUID { return a.quizID }
func (a *Attempt) Score() float64    { return a.score }
func (a *Attempt) Passed() bool      { return a.passed }
func (a *Attempt) Answers() []byte   { return a.answers }
