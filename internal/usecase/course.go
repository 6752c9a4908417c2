package usecase

import (
	"context"
	"errors"

	"basecampus-api/internal/domain/course"
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
	ErrCourseNotFound = errors.New("course not found")
	ErrModuleNotFound = errors.New("course module not found")
	ErrLessonNotFound = errors.New("lesson not found")
)

type CourseRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *course.Course) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*course.Course, error)
	Update(ctx context.Context, tx db.DBTX, c *course.Course) error
	SetPublished(ctx context.Context, tx db.DBTX, id uuid.UUID, published bool) error
	SetScheduleInfo(ctx context.Context, tx db.DBTX, id uuid.UUID, summary string) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*readmodel.CourseRM, error)
	ListPublished(ctx context.Context) ([]*readmodel.CourseRM, error)
}

type SyllabusRepository interface {
	CreateModule(ctx context.Context, tx db.DBTX, courseID uuid.UUID, title string, position int32, instructorID *uuid.UUID) (uuid.UUID, error)
	UpdateModule(ctx context.Context, tx db.DBTX, id uuid.UUID, title string, position int32, instructorID *uuid.UUID) error
	DeleteModule(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	ListModules(ctx context.Context, courseID uuid.UUID) ([]*readmodel.ModuleRM, error)
	ModuleCourseID(ctx context.Context, tx db.DBTX, moduleID uuid.UUID) (uuid.UUID, error)
	CreateLesson(ctx context.Context, tx db.DBTX, moduleID uuid.UUID, title, content, videoURL string, position int32) (uuid.UUID, error)
	UpdateLesson(ctx context.Context, tx db.DBTX, id uuid.UUID, title, content, videoURL string, position int32) error
	DeleteLesson(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	ListLessons(ctx context.Context, moduleID uuid.UUID) ([]*readmodel.LessonRM, error)
	LessonCourseID(ctx context.Context, tx db.DBTX, lessonID uuid.UUID) (uuid.UUID, error)
	MarkLessonComplete(ctx context.Context, tx db.DBTX, userID, lessonID uuid.UUID) error
	ListCompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error)
}

type CourseUseCase interface {
	CreateCourse(ctx context.Context, req reqdto.CreateCourseRequest, mentorID uuid.UUID) (*course.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*course.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, req reqdto.UpdateCourseRequest, userID uuid.UUID, role user.Role) (*course.Course, error)
	PublishCourse(ctx context.Context, id uuid.UUID, publish bool, userID uuid.UUID, role user.Role) error
	DeleteCourse(ctx context.Context, id uuid.UUID, userID uuid.UUID, role user.Role) error
	GetMentorCourses(ctx context.Context, mentorID uuid.UUID) ([]*readmodel.CourseRM, error)
	GetPublishedCourses(ctx context.Context) ([]*readmodel.CourseRM, error)

	AddModule(ctx context.Context, courseID uuid.UUID, req reqdto.CreateModuleRequest, userID uuid.UUID, role user.Role) (uuid.UUID, error)
	UpdateModule(ctx context.Context, moduleID uuid.UUID, req reqdto.UpdateModuleRequest, userID uuid.UUID, role user.Role) error
	RemoveModule(ctx context.Context, moduleID uuid.UUID, userID uuid.UUID, role user.Role) error
	GetSyllabus(ctx context.Context, courseID uuid.UUID) ([]*readmodel.ModuleRM, error)
	GetModuleLessons(ctx context.Context, moduleID uuid.UUID) ([]*readmodel.LessonRM, error)

	AddLesson(ctx context.Context, moduleID uuid.UUID, req reqdto.CreateLessonRequest, userID uuid.UUID, role user.Role) (uuid.UUID, error)
	UpdateLesson(ctx context.Context, lessonID uuid.UUID, req reqdto.UpdateLessonRequest, userID uuid.UUID, role user.Role) error
	RemoveLesson(ctx context.Context, lessonID uuid.UUID, userID uuid.UUID, role user.Role) error
	CompleteLesson(ctx context.Context, lessonID uuid.UUID, userID uuid.UUID) error
}

type courseUseCaseImpl struct {
	courseRepo   CourseRepository
	syllabusRepo SyllabusRepository
	teamRepo     TeamRepository
	db           *pgxpool.Pool
}

func NewCourseUseCase(
	courseRepo CourseRepository,
	syllabusRepo SyllabusRepository,
	teamRepo TeamRepository,
	db *pgxpool.Pool,
) CourseUseCase {
	return &courseUseCaseImpl{
		courseRepo:   courseRepo,
		syllabusRepo: syllabusRepo,
		teamRepo:     teamRepo,
		db:           db,
	}
}

func (c *courseUseCaseImpl) CreateCourse(ctx context.Context, req reqdto.CreateCourseRequest, mentorID uuid.UUID) (*course.Course, error) {
	entity, err := req.ToDomain(mentorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := c.courseRepo.Create(ctx, c.db, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (c *courseUseCaseImpl) GetCourse(ctx context.Context, id uuid.UUID) (*course.Course, error) {
	entity, err := c.courseRepo.FindByID(ctx, c.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, errs.Wrap(err, "failed to find course")
	}
	return entity, nil
}

func (c *courseUseCaseImpl) UpdateCourse(ctx context.Context, id uuid.UUID, req reqdto.UpdateCourseRequest, userID uuid.UUID, role user.Role) (*course.Course, error) {
	entity, err := c.authorizeCourse(ctx, id, userID, role)
	if err != nil {
		return nil, err
	}

	if err := entity.ApplyPatch(req.ToPatch()); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := c.courseRepo.Update(ctx, c.db, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (c *courseUseCaseImpl) PublishCourse(ctx context.Context, id uuid.UUID, publish bool, userID uuid.UUID, role user.Role) error {
	if _, err := c.authorizeCourse(ctx, id, userID, role); err != nil {
		return err
	}

	if err := c.courseRepo.SetPublished(ctx, c.db, id, publish); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *courseUseCaseImpl) DeleteCourse(ctx context.Context, id uuid.UUID, userID uuid.UUID, role user.Role) error {
	if _, err := c.authorizeCourse(ctx, id, userID, role); err != nil {
		return err
	}

	if err := c.courseRepo.Delete(ctx, c.db, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *courseUseCaseImpl) GetMentorCourses(ctx context.Context, mentorID uuid.UUID) ([]*readmodel.CourseRM, error) {
	courses, err := c.courseRepo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list mentor courses")
	}
	return courses, nil
}

func (c *courseUseCaseImpl) GetPublishedCourses(ctx context.Context) ([]*readmodel.CourseRM, error) {
	courses, err := c.courseRepo.ListPublished(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list published courses")
	}
	return courses, nil
}

func (c *courseUseCaseImpl) AddModule(ctx context.Context, courseID uuid.UUID, req reqdto.CreateModuleRequest, userID uuid.UUID, role user.Role) (uuid.UUID, error) {
	if err := c.authorizeCourseStaff(ctx, courseID, userID, role); err != nil {
		return uuid.Nil, err
	}

	id, err := c.syllabusRepo.CreateModule(ctx, c.db, courseID, req.Title, req.Position, req.InstructorID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *courseUseCaseImpl) UpdateModule(ctx context.Context, moduleID uuid.UUID, req reqdto.UpdateModuleRequest, userID uuid.UUID, role user.Role) error {
	courseID, err := c.syllabusRepo.ModuleCourseID(ctx, c.db, moduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrModuleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.authorizeCourseStaff(ctx, courseID, userID, role); err != nil {
		return err
	}

	if err := c.syllabusRepo.UpdateModule(ctx, c.db, moduleID, req.Title, req.Position, req.InstructorID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *courseUseCaseImpl) RemoveModule(ctx context.Context, moduleID uuid.UUID, userID uuid.UUID, role user.Role) error {
	courseID, err := c.syllabusRepo.ModuleCourseID(ctx, c.db, moduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrModuleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.authorizeCourseStaff(ctx, courseID, userID, role); err != nil {
		return err
	}

	if err := c.syllabusRepo.DeleteModule(ctx, c.db, moduleID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *courseUseCaseImpl) GetSyllabus(ctx context.Context, courseID uuid.UUID) ([]*readmodel.ModuleRM, error) {
	modules, err := c.syllabusRepo.ListModules(ctx, courseID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list course modules")
	}
	return modules, nil
}

func (c *courseUseCaseImpl) GetModuleLessons(ctx context.Context, moduleID uuid.UUID) ([]*readmodel.LessonRM, error) {
	lessons, err := c.syllabusRepo.ListLessons(ctx, moduleID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list module lessons")
	}
	return lessons, nil
}

func (c *courseUseCaseImpl) AddLesson(ctx context.Context, moduleID uuid.UUID, req reqdto.CreateLessonRequest, userID uuid.UUID, role user.Role) (uuid.UUID, error) {
	courseID, err := c.syllabusRepo.ModuleCourseID(ctx, c.db, moduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrModuleNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.authorizeCourseStaff(ctx, courseID, userID, role); err != nil {
		return uuid.Nil, err
	}

	id, err := c.syllabusRepo.CreateLesson(ctx, c.db, moduleID, req.Title, req.Content, req.VideoURL, req.Position)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *courseUseCaseImpl) UpdateLesson(ctx context.Context, lessonID uuid.UUID, req reqdto.UpdateLessonRequest, userID uuid.UUID, role user.Role) error {
	courseID, err := c.syllabusRepo.LessonCourseID(ctx, c.db, lessonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrLessonNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.authorizeCourseStaff(ctx, courseID, userID, role); err != nil {
		return err
	}

	if err := c.syllabusRepo.UpdateLesson(ctx, c.db, lessonID, req.Title, req.Content, req.VideoURL, req.Position); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *courseUseCaseImpl) RemoveLesson(ctx context.Context, lessonID uuid.UUID, userID uuid.UUID, role user.Role) error {
	courseID, err := c.syllabusRepo.LessonCourseID(ctx, c.db, lessonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrLessonNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.authorizeCourseStaff(ctx, courseID, userID, role); err != nil {
		return err
	}

	if err := c.syllabusRepo.DeleteLesson(ctx, c.db, lessonID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *courseUseCaseImpl) CompleteLesson(ctx context.Context, lessonID uuid.UUID, userID uuid.UUID) error {
	if _, err := c.syllabusRepo.LessonCourseID(ctx, c.db, lessonID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrLessonNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.syllabusRepo.MarkLessonComplete(ctx, c.db, userID, lessonID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *courseUseCaseImpl) authorizeCourse(ctx context.Context, courseID, userID uuid.UUID, role user.Role) (*course.Course, error) {
	entity, err := c.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !entity.IsOwnedBy(userID) && role != user.RoleAdmin {
		return nil, ErrForbidden
	}
	return entity, nil
}

// authorizeCourseStaff admits the course owner, platform admins and any
// instructor added to the course team. Syllabus edits are the one place
// where team members act on a course they do not own.
func (c *courseUseCaseImpl) authorizeCourseStaff(ctx context.Context, courseID, userID uuid.UUID, role user.Role) error {
	entity, err := c.GetCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if entity.IsOwnedBy(userID) || role == user.RoleAdmin {
		return nil
	}

	isInstructor, err := c.teamRepo.IsInstructor(ctx, c.db, courseID, userID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !isInstructor {
		return ErrForbidden
	}
	return nil
}
