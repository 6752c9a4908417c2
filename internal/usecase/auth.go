package usecase

import (
	"context"
	"errors"
	"time"

	"basecampus-api/internal/domain/user"
	reqdto "basecampus-api/internal/handler/dto/request"
	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"
	"basecampus-api/internal/pkg/clock"
	"basecampus-api/internal/pkg/config"
	"basecampus-api/internal/pkg/errs"
	"basecampus-api/internal/pkg/jwt"
	"basecampus-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrEmailTaken           = errors.New("email is already registered")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
	ErrTooManyResetRequests = errors.New("too many password reset requests")
)

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateProfile(ctx context.Context, tx db.DBTX, u *user.User) error
	UpdatePasswordHash(ctx context.Context, tx db.DBTX, id uuid.UUID, hash string) error
	CountResetAttemptsSince(ctx context.Context, tx db.DBTX, userID uuid.UUID, since time.Time) (int64, error)
	RecordResetAttempt(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUseCase interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*user.User, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*TokenPair, *user.User, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*user.User, error)
	RequestPasswordReset(ctx context.Context, req reqdto.RequestPasswordResetRequest) error
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	db         *pgxpool.Pool
	clock      clock.Clock
	resetCfg   config.PasswordResetConfig
}

func NewAuthUseCase(
	userRepo UserRepository,
	jwtService *jwt.Service,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.Config,
) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		db:         db,
		clock:      clock,
		resetCfg:   cfg.Reset,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*user.User, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity, err := user.NewUser(email, hash, req.FullName, role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := a.userRepo.Create(ctx, a.db, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*TokenPair, *user.User, error) {
	entity, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !entity.IsActive() {
		return nil, nil, ErrUserInactive
	}

	if err := password.ComparePassword(entity.PasswordHash(), req.Password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := a.issueTokens(entity.ID(), entity.Role())
	if err != nil {
		return nil, nil, err
	}
	return pair, entity, nil
}

func (a *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrTokenValidation
	}

	entity, err := a.GetCurrentUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return a.issueTokens(entity.ID(), entity.Role())
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	entity, err := a.userRepo.FindByID(ctx, a.db, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	if !entity.IsActive() {
		return nil, ErrUserInactive
	}
	return entity, nil
}

func (a *authUseCaseImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*user.User, error) {
	entity, err := a.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch := user.ProfilePatch{
		FullName:     req.FullName,
		Headline:     req.Headline,
		Bio:          req.Bio,
		Website:      req.Website,
		LinkedinURL:  req.LinkedinURL,
		InstagramURL: req.InstagramURL,
		Whatsapp:     req.Whatsapp,
		AvatarURL:    req.AvatarURL,
	}
	if err := entity.ApplyProfilePatch(patch); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := a.userRepo.UpdateProfile(ctx, a.db, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

// RequestPasswordReset records a reset request, capped per account over
// a rolling 24-hour window. The account enumeration surface is
// deliberately flat: an unknown email returns success without recording
// anything.
func (a *authUseCaseImpl) RequestPasswordReset(ctx context.Context, req reqdto.RequestPasswordResetRequest) error {
	entity, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	tx, err := a.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	windowStart := a.clock.Now().Add(-24 * time.Hour)
	count, err := a.userRepo.CountResetAttemptsSince(ctx, tx, entity.ID(), windowStart)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if count >= int64(a.resetCfg.MaxDailyAttempts) {
		return ErrTooManyResetRequests
	}

	if err := a.userRepo.RecordResetAttempt(ctx, tx, entity.ID()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (a *authUseCaseImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	refresh, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
