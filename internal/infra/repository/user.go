package repository

import (
	"context"
	"time"

	"basecampus-api/internal/domain/user"
	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool db.DBTX) *UserRepository {
	return &UserRepository{db: pool}
}

const selectUserSQL = `
	SELECT id, email, password_hash, role, full_name,
	       COALESCE(headline, ''), COALESCE(bio, ''), COALESCE(website, ''),
	       COALESCE(linkedin_url, ''), COALESCE(instagram_url, ''),
	       COALESCE(whatsapp, ''), COALESCE(avatar_url, ''),
	       monthly_hours_limit, is_active, created_at, updated_at
	FROM users
`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, full_name, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, u.ID(), u.Email().String(), u.PasswordHash(), string(u.Role()), u.FullName(), u.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*user.User, error) {
	u, err := scanUser(tx.QueryRow(ctx, selectUserSQL+` WHERE id = $1`, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, selectUserSQL+` WHERE email = $1`, email))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx db.DBTX, u *user.User) error {
	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET full_name = $2, headline = $3, bio = $4, website = $5,
		    linkedin_url = $6, instagram_url = $7, whatsapp = $8, avatar_url = $9,
		    updated_at = now()
		WHERE id = $1
	`, u.ID(), u.FullName(), u.Headline(), u.Bio(), u.Website(),
		u.LinkedinURL(), u.InstagramURL(), u.Whatsapp(), u.AvatarURL())
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, tx db.DBTX, id uuid.UUID, hash string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1
	`, id, hash)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// CountResetAttemptsSince counts password reset requests by the account
// since the given instant, for the daily rate limit.
func (r *UserRepository) CountResetAttemptsSince(ctx context.Context, tx db.DBTX, userID uuid.UUID, since time.Time) (int64, error) {
	var n int64
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM password_reset_attempts
		WHERE user_id = $1 AND requested_at >= $2
	`, userID, since).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reset attempts", err)
	}
	return n, nil
}

func (r *UserRepository) RecordResetAttempt(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO password_reset_attempts (id, user_id) VALUES ($1, $2)
	`, uuid.New(), userID)
	if err != nil {
		return infra.WrapRepoErr("failed to record reset attempt", err)
	}
	return nil
}

func scanUser(row rowScanner) (*user.User, error) {
	var (
		id                                             uuid.UUID
		email, passwordHash, role, fullName            string
		headline, bio, website, linkedinURL            string
		instagramURL, whatsapp, avatarURL              string
		monthlyHoursLimit                              *float64
		isActive                                       bool
		createdAt, updatedAt                           time.Time
	)
	if err := row.Scan(
		&id, &email, &passwordHash, &role, &fullName,
		&headline, &bio, &website, &linkedinURL, &instagramURL, &whatsapp, &avatarURL,
		&monthlyHoursLimit, &isActive, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(
		id, emailVO, passwordHash, user.Role(role),
		fullName, headline, bio, website, linkedinURL, instagramURL, whatsapp, avatarURL,
		monthlyHoursLimit, isActive, createdAt, updatedAt,
	), nil
}
