package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
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
	ErrInviteNotFound  = errors.New("invite not found")
	ErrDuplicateInvite = errors.New("email already invited to this course")
	ErrInviteMismatch  = errors.New("invite was issued for a different email")
)

type TeamRepository interface {
	CreateInvite(ctx context.Context, tx db.DBTX, courseID uuid.UUID, email, role, token string) (uuid.UUID, error)
	InviteExists(ctx context.Context, tx db.DBTX, courseID uuid.UUID, email string) (bool, error)
	FindInviteByToken(ctx context.Context, tx db.DBTX, token string) (*readmodel.InviteRM, error)
	DeleteInvite(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	ListInvites(ctx context.Context, courseID uuid.UUID) ([]*readmodel.InviteRM, error)
	AddInstructor(ctx context.Context, tx db.DBTX, courseID, instructorID uuid.UUID) error
	RemoveInstructor(ctx context.Context, tx db.DBTX, courseID, instructorID uuid.UUID) error
	ListInstructors(ctx context.Context, courseID uuid.UUID) ([]*readmodel.InstructorRM, error)
	IsInstructor(ctx context.Context, tx db.DBTX, courseID, userID uuid.UUID) (bool, error)
}

type TeamUseCase interface {
	InviteInstructor(ctx context.Context, courseID uuid.UUID, req reqdto.InviteInstructorRequest, userID uuid.UUID, role user.Role) (*readmodel.InviteRM, error)
	RevokeInvite(ctx context.Context, courseID, inviteID uuid.UUID, userID uuid.UUID, role user.Role) error
	AcceptInvite(ctx context.Context, token string, userID uuid.UUID, userEmail string) (uuid.UUID, error)
	GetInvites(ctx context.Context, courseID uuid.UUID, userID uuid.UUID, role user.Role) ([]*readmodel.InviteRM, error)
	GetInstructors(ctx context.Context, courseID uuid.UUID) ([]*readmodel.InstructorRM, error)
	RemoveInstructor(ctx context.Context, courseID, instructorID uuid.UUID, userID uuid.UUID, role user.Role) error
}

type teamUseCaseImpl struct {
	teamRepo   TeamRepository
	courseRepo CourseRepository
	db         *pgxpool.Pool
}

func NewTeamUseCase(teamRepo TeamRepository, courseRepo CourseRepository, db *pgxpool.Pool) TeamUseCase {
	return &teamUseCaseImpl{
		teamRepo:   teamRepo,
		courseRepo: courseRepo,
		db:         db,
	}
}

func (t *teamUseCaseImpl) InviteInstructor(ctx context.Context, courseID uuid.UUID, req reqdto.InviteInstructorRequest, userID uuid.UUID, role user.Role) (*readmodel.InviteRM, error) {
	if err := t.authorizeOwner(ctx, courseID, userID, role); err != nil {
		return nil, err
	}

	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	exists, err := t.teamRepo.InviteExists(ctx, t.db, courseID, email.String())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, ErrDuplicateInvite
	}

	token, err := newInviteToken()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate invite token")
	}

	id, err := t.teamRepo.CreateInvite(ctx, t.db, courseID, email.String(), req.Role, token)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateInvite
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &readmodel.InviteRM{
		ID:       id,
		CourseID: courseID,
		Email:    email.String(),
		Role:     req.Role,
		Token:    token,
	}, nil
}

func (t *teamUseCaseImpl) RevokeInvite(ctx context.Context, courseID, inviteID uuid.UUID, userID uuid.UUID, role user.Role) error {
	if err := t.authorizeOwner(ctx, courseID, userID, role); err != nil {
		return err
	}

	if err := t.teamRepo.DeleteInvite(ctx, t.db, inviteID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInviteNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// AcceptInvite redeems an invite token: the caller becomes a course
// instructor and the invite is consumed, all in one transaction.
func (t *teamUseCaseImpl) AcceptInvite(ctx context.Context, token string, userID uuid.UUID, userEmail string) (uuid.UUID, error) {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	invite, err := t.teamRepo.FindInviteByToken(ctx, tx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrInviteNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if invite.Email != userEmail {
		return uuid.Nil, ErrInviteMismatch
	}

	if err := t.teamRepo.AddInstructor(ctx, tx, invite.CourseID, userID); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := t.teamRepo.DeleteInvite(ctx, tx, invite.ID); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return invite.CourseID, nil
}

func (t *teamUseCaseImpl) GetInvites(ctx context.Context, courseID uuid.UUID, userID uuid.UUID, role user.Role) ([]*readmodel.InviteRM, error) {
	if err := t.authorizeOwner(ctx, courseID, userID, role); err != nil {
		return nil, err
	}

	invites, err := t.teamRepo.ListInvites(ctx, courseID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list invites")
	}
	return invites, nil
}

func (t *teamUseCaseImpl) GetInstructors(ctx context.Context, courseID uuid.UUID) ([]*readmodel.InstructorRM, error) {
	instructors, err := t.teamRepo.ListInstructors(ctx, courseID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list instructors")
	}
	return instructors, nil
}

func (t *teamUseCaseImpl) RemoveInstructor(ctx context.Context, courseID, instructorID uuid.UUID, userID uuid.UUID, role user.Role) error {
	if err := t.authorizeOwner(ctx, courseID, userID, role); err != nil {
		return err
	}

	if err := t.teamRepo.RemoveInstructor(ctx, t.db, courseID, instructorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInviteNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (t *teamUseCaseImpl) authorizeOwner(ctx context.Context, courseID, userID uuid.UUID, role user.Role) error {
	courseEntity, err := t.courseRepo.FindByID(ctx, t.db, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCourseNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !courseEntity.IsOwnedBy(userID) && role != user.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

func newInviteToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
