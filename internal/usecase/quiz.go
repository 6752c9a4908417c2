package usecase

import (
	"context"
	"errors"

	"basecampus-api/internal/domain/quiz"
	"basecampus-api/internal/domain/user"
	reqdto "basecampus-api/internal/handler/dto/request"
	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"
	"basecampus-api/internal/pkg/errs"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuestionNotFound = errors.New("quiz question not found")
	ErrOptionNotFound   = errors.New("quiz option not found")
)

type QuizRepository interface {
	Create(ctx context.Context, tx db.DBTX, q *quiz.Quiz) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	AddQuestion(ctx context.Context, tx db.DBTX, q *quiz.Question) error
	DeleteQuestion(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	AddOption(ctx context.Context, tx db.DBTX, o *quiz.Option) error
	DeleteOption(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	SetCorrectOption(ctx context.Context, tx db.DBTX, questionID, optionID uuid.UUID) error
	FindByLesson(ctx context.Context, lessonID uuid.UUID) (*readmodel.QuizRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.QuizRM, error)
	RecordAttempt(ctx context.Context, tx db.DBTX, a *quiz.Attempt) error
	ListAttemptsByUser(ctx context.Context, userID, quizID uuid.UUID) ([]*readmodel.AttemptRM, error)
	AverageGradeForCourse(ctx context.Context, userID, courseID uuid.UUID) (*float64, error)
}

type QuizUseCase interface {
	CreateQuiz(ctx context.Context, courseID uuid.UUID, req reqdto.CreateQuizRequest, userID uuid.UUID, role user.Role) (*quiz.Quiz, error)
	DeleteQuiz(ctx context.Context, quizID uuid.UUID, userID uuid.UUID, role user.Role) error
	GetQuizForLesson(ctx context.Context, lessonID uuid.UUID) (*readmodel.QuizRM, error)
	AddQuestion(ctx context.Context, quizID uuid.UUID, req reqdto.AddQuestionRequest, userID uuid.UUID, role user.Role) (*quiz.Question, error)
	RemoveQuestion(ctx context.Context, quizID, questionID uuid.UUID, userID uuid.UUID, role user.Role) error
	AddOption(ctx context.Context, quizID, questionID uuid.UUID, req reqdto.AddOptionRequest, userID uuid.UUID, role user.Role) (*quiz.Option, error)
	RemoveOption(ctx context.Context, quizID, optionID uuid.UUID, userID uuid.UUID, role user.Role) error
	MarkCorrectOption(ctx context.Context, quizID, questionID, optionID uuid.UUID, userID uuid.UUID, role user.Role) error
	SubmitAttempt(ctx context.Context, quizID uuid.UUID, req reqdto.SubmitAttemptRequest, userID uuid.UUID) (*quiz.Attempt, error)
	GetUserAttempts(ctx context.Context, quizID, userID uuid.UUID) ([]*readmodel.AttemptRM, error)
}

type quizUseCaseImpl struct {
	quizRepo   QuizRepository
	courseRepo CourseRepository
	teamRepo   TeamRepository
	db         *pgxpool.Pool
}

func NewQuizUseCase(quizRepo QuizRepository, courseRepo CourseRepository, teamRepo TeamRepository, db *pgxpool.Pool) QuizUseCase {
	return &quizUseCaseImpl{
		quizRepo:   quizRepo,
		courseRepo: courseRepo,
		teamRepo:   teamRepo,
		db:         db,
	}
}

func (q *quizUseCaseImpl) CreateQuiz(ctx context.Context, courseID uuid.UUID, req reqdto.CreateQuizRequest, userID uuid.UUID, role user.Role) (*quiz.Quiz, error) {
	if err := q.authorizeCourseStaff(ctx, courseID, userID, role); err != nil {
		return nil, err
	}

	entity, err := quiz.NewQuiz(courseID, req.LessonID, req.Title)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := q.quizRepo.Create(ctx, q.db, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (q *quizUseCaseImpl) DeleteQuiz(ctx context.Context, quizID uuid.UUID, userID uuid.UUID, role user.Role) error {
	rm, err := q.loadQuiz(ctx, quizID)
	if err != nil {
		return err
	}
	if err := q.authorizeCourseStaff(ctx, rm.CourseID, userID, role); err != nil {
		return err
	}

	if err := q.quizRepo.Delete(ctx, q.db, quizID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (q *quizUseCaseImpl) GetQuizForLesson(ctx context.Context, lessonID uuid.UUID) (*readmodel.QuizRM, error) {
	rm, err := q.quizRepo.FindByLesson(ctx, lessonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, errs.Wrap(err, "failed to find lesson quiz")
	}
	return rm, nil
}

func (q *quizUseCaseImpl) AddQuestion(ctx context.Context, quizID uuid.UUID, req reqdto.AddQuestionRequest, userID uuid.UUID, role user.Role) (*quiz.Question, error) {
	rm, err := q.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if err := q.authorizeCourseStaff(ctx, rm.CourseID, userID, role); err != nil {
		return nil, err
	}

	question, err := quiz.NewQuestion(quizID, req.Text, req.Position)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := q.quizRepo.AddQuestion(ctx, q.db, question); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return question, nil
}

func (q *quizUseCaseImpl) RemoveQuestion(ctx context.Context, quizID, questionID uuid.UUID, userID uuid.UUID, role user.Role) error {
	rm, err := q.loadQuiz(ctx, quizID)
	if err != nil {
		return err
	}
	if err := q.authorizeCourseStaff(ctx, rm.CourseID, userID, role); err != nil {
		return err
	}

	if err := q.quizRepo.DeleteQuestion(ctx, q.db, questionID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrQuestionNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (q *quizUseCaseImpl) AddOption(ctx context.Context, quizID, questionID uuid.UUID, req reqdto.AddOptionRequest, userID uuid.UUID, role user.Role) (*quiz.Option, error) {
	rm, err := q.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if err := q.authorizeCourseStaff(ctx, rm.CourseID, userID, role); err != nil {
		return nil, err
	}

	option, err := quiz.NewOption(questionID, req.Text, req.IsCorrect)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := q.quizRepo.AddOption(ctx, q.db, option); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return option, nil
}

func (q *quizUseCaseImpl) RemoveOption(ctx context.Context, quizID, optionID uuid.UUID, userID uuid.UUID, role user.Role) error {
	rm, err := q.loadQuiz(ctx, quizID)
	if err != nil {
		return err
	}
	if err := q.authorizeCourseStaff(ctx, rm.CourseID, userID, role); err != nil {
		return err
	}

	if err := q.quizRepo.DeleteOption(ctx, q.db, optionID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOptionNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (q *quizUseCaseImpl) MarkCorrectOption(ctx context.Context, quizID, questionID, optionID uuid.UUID, userID uuid.UUID, role user.Role) error {
	rm, err := q.loadQuiz(ctx, quizID)
	if err != nil {
		return err
	}
	if err := q.authorizeCourseStaff(ctx, rm.CourseID, userID, role); err != nil {
		return err
	}

	tx, err := q.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	if err := q.quizRepo.SetCorrectOption(ctx, tx, questionID, optionID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOptionNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (q *quizUseCaseImpl) SubmitAttempt(ctx context.Context, quizID uuid.UUID, req reqdto.SubmitAttemptRequest, userID uuid.UUID) (*quiz.Attempt, error) {
	if _, err := q.loadQuiz(ctx, quizID); err != nil {
		return nil, err
	}

	attempt, err := quiz.NewAttempt(userID, quizID, req.Score, req.Passed, req.Answers)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := q.quizRepo.RecordAttempt(ctx, q.db, attempt); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return attempt, nil
}

func (q *quizUseCaseImpl) GetUserAttempts(ctx context.Context, quizID, userID uuid.UUID) ([]*readmodel.AttemptRM, error) {
	attempts, err := q.quizRepo.ListAttemptsByUser(ctx, userID, quizID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list quiz attempts")
	}
	return attempts, nil
}

func (q *quizUseCaseImpl) loadQuiz(ctx context.Context, quizID uuid.UUID) (*readmodel.QuizRM, error) {
	rm, err := q.quizRepo.FindByID(ctx, quizID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, errs.Wrap(err, "failed to find quiz")
	}
	return rm, nil
}

func (q *quizUseCaseImpl) authorizeCourseStaff(ctx context.Context, courseID, userID uuid.UUID, role user.Role) error {
	courseEntity, err := q.courseRepo.FindByID(ctx, q.db, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCourseNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if courseEntity.IsOwnedBy(userID) || role == user.RoleAdmin {
		return nil
	}

	isInstructor, err := q.teamRepo.IsInstructor(ctx, q.db, courseID, userID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !isInstructor {
		return ErrForbidden
	}
	return nil
}
