package usecase

import (
	"context"
	"errors"

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
	ErrPaymentLinkNotFound = errors.New("payment link not found")
	ErrPaymentLinkInactive = errors.New("payment link is no longer active")
)

type SalesRepository interface {
	CreatePaymentLink(ctx context.Context, tx db.DBTX, courseID, mentorID uuid.UUID, sellerTag, whatsappGroupLink *string, priceOverride *int64) (uuid.UUID, error)
	FindPaymentLink(ctx context.Context, tx db.DBTX, id uuid.UUID) (*readmodel.PaymentLinkRM, error)
	SetPaymentLinkActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error
	DeletePaymentLink(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	IncrementPaymentLinkViews(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	IncrementPaymentLinkSales(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	ListPaymentLinksByMentor(ctx context.Context, mentorID uuid.UUID) ([]*readmodel.PaymentLinkRM, error)
	FindEnrollment(ctx context.Context, tx db.DBTX, userID, courseID uuid.UUID) (*readmodel.EnrollmentRM, error)
	CreateEnrollment(ctx context.Context, tx db.DBTX, userID, courseID uuid.UUID, paymentLinkID *uuid.UUID, amountPaidCents int64, paymentStatus string) (uuid.UUID, error)
	ListEnrollmentsByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.EnrollmentRM, error)
	ListStudentProgress(ctx context.Context, courseID uuid.UUID) ([]*readmodel.StudentProgressRM, error)
}

type SalesUseCase interface {
	CreatePaymentLink(ctx context.Context, req reqdto.CreatePaymentLinkRequest, userID uuid.UUID, role user.Role) (*readmodel.PaymentLinkRM, error)
	GetPaymentLink(ctx context.Context, id uuid.UUID) (*readmodel.PaymentLinkRM, error)
	SetPaymentLinkActive(ctx context.Context, id uuid.UUID, active bool, userID uuid.UUID, role user.Role) error
	DeletePaymentLink(ctx context.Context, id uuid.UUID, userID uuid.UUID, role user.Role) error
	GetMentorPaymentLinks(ctx context.Context, mentorID uuid.UUID) ([]*readmodel.PaymentLinkRM, error)
	EnrollThroughLink(ctx context.Context, linkID uuid.UUID, userID uuid.UUID) (*readmodel.EnrollmentResult, error)
	GetUserEnrollments(ctx context.Context, userID uuid.UUID) ([]*readmodel.EnrollmentRM, error)
	GetStudentProgress(ctx context.Context, courseID uuid.UUID, userID uuid.UUID, role user.Role) ([]*readmodel.StudentProgressRM, error)
}

type salesUseCaseImpl struct {
	salesRepo  SalesRepository
	courseRepo CourseRepository
	quizRepo   QuizRepository
	db         *pgxpool.Pool
}

func NewSalesUseCase(salesRepo SalesRepository, courseRepo CourseRepository, quizRepo QuizRepository, db *pgxpool.Pool) SalesUseCase {
	return &salesUseCaseImpl{
		salesRepo:  salesRepo,
		courseRepo: courseRepo,
		quizRepo:   quizRepo,
		db:         db,
	}
}

func (s *salesUseCaseImpl) CreatePaymentLink(ctx context.Context, req reqdto.CreatePaymentLinkRequest, userID uuid.UUID, role user.Role) (*readmodel.PaymentLinkRM, error) {
	courseEntity, err := s.courseRepo.FindByID(ctx, s.db, req.CourseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !courseEntity.IsOwnedBy(userID) && role != user.RoleAdmin {
		return nil, ErrForbidden
	}

	id, err := s.salesRepo.CreatePaymentLink(ctx, s.db, req.CourseID, courseEntity.MentorID(), req.SellerTag, req.WhatsappGroupLink, req.PriceOverride)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return s.salesRepo.FindPaymentLink(ctx, s.db, id)
}

// GetPaymentLink is the public landing view; every read counts as a
// page view on the link.
func (s *salesUseCaseImpl) GetPaymentLink(ctx context.Context, id uuid.UUID) (*readmodel.PaymentLinkRM, error) {
	rm, err := s.salesRepo.FindPaymentLink(ctx, s.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentLinkNotFound
		}
		return nil, errs.Wrap(err, "failed to find payment link")
	}

	if err := s.salesRepo.IncrementPaymentLinkViews(ctx, s.db, id); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (s *salesUseCaseImpl) SetPaymentLinkActive(ctx context.Context, id uuid.UUID, active bool, userID uuid.UUID, role user.Role) error {
	if err := s.authorizeLink(ctx, id, userID, role); err != nil {
		return err
	}

	if err := s.salesRepo.SetPaymentLinkActive(ctx, s.db, id, active); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *salesUseCaseImpl) DeletePaymentLink(ctx context.Context, id uuid.UUID, userID uuid.UUID, role user.Role) error {
	if err := s.authorizeLink(ctx, id, userID, role); err != nil {
		return err
	}

	if err := s.salesRepo.DeletePaymentLink(ctx, s.db, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *salesUseCaseImpl) GetMentorPaymentLinks(ctx context.Context, mentorID uuid.UUID) ([]*readmodel.PaymentLinkRM, error) {
	links, err := s.salesRepo.ListPaymentLinksByMentor(ctx, mentorID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list payment links")
	}
	return links, nil
}

// EnrollThroughLink enrolls the caller into the course behind an active
// payment link. A second enrollment attempt is not an error: the caller
// gets the same destination back with AlreadyEnrolled set.
func (s *salesUseCaseImpl) EnrollThroughLink(ctx context.Context, linkID uuid.UUID, userID uuid.UUID) (*readmodel.EnrollmentResult, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	link, err := s.salesRepo.FindPaymentLink(ctx, tx, linkID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentLinkNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !link.Active {
		return nil, ErrPaymentLinkInactive
	}

	if existing, err := s.salesRepo.FindEnrollment(ctx, tx, userID, link.CourseID); err == nil && existing != nil {
		return &readmodel.EnrollmentResult{
			CourseID:        link.CourseID,
			WhatsappLink:    link.WhatsappGroupLink,
			AlreadyEnrolled: true,
		}, nil
	} else if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	amount, err := s.resolveAmount(ctx, tx, link)
	if err != nil {
		return nil, err
	}

	linkID = link.ID
	if _, err := s.salesRepo.CreateEnrollment(ctx, tx, userID, link.CourseID, &linkID, amount, "paid"); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := s.salesRepo.IncrementPaymentLinkSales(ctx, tx, link.ID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &readmodel.EnrollmentResult{
		CourseID:     link.CourseID,
		WhatsappLink: link.WhatsappGroupLink,
	}, nil
}

func (s *salesUseCaseImpl) GetUserEnrollments(ctx context.Context, userID uuid.UUID) ([]*readmodel.EnrollmentRM, error) {
	enrollments, err := s.salesRepo.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list enrollments")
	}
	return enrollments, nil
}

func (s *salesUseCaseImpl) GetStudentProgress(ctx context.Context, courseID uuid.UUID, userID uuid.UUID, role user.Role) ([]*readmodel.StudentProgressRM, error) {
	courseEntity, err := s.courseRepo.FindByID(ctx, s.db, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !courseEntity.IsOwnedBy(userID) && role != user.RoleAdmin {
		return nil, ErrForbidden
	}

	progress, err := s.salesRepo.ListStudentProgress(ctx, courseID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list student progress")
	}

	for _, p := range progress {
		avg, err := s.quizRepo.AverageGradeForCourse(ctx, p.UserID, courseID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		p.AverageQuizGrade = avg
	}
	return progress, nil
}

func (s *salesUseCaseImpl) resolveAmount(ctx context.Context, tx db.DBTX, link *readmodel.PaymentLinkRM) (int64, error) {
	if link.PriceOverride != nil {
		return *link.PriceOverride, nil
	}

	courseEntity, err := s.courseRepo.FindByID(ctx, tx, link.CourseID)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return courseEntity.PriceCents(), nil
}

func (s *salesUseCaseImpl) authorizeLink(ctx context.Context, id, userID uuid.UUID, role user.Role) error {
	link, err := s.salesRepo.FindPaymentLink(ctx, s.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPaymentLinkNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if link.MentorID != userID && role != user.RoleAdmin {
		return ErrForbidden
	}
	return nil
}
