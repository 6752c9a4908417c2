//go:build unit

package user_test

import (
	"strings"
	"testing"

	"basecampus-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, value string) user.Email {
	t.Helper()
	email, err := user.NewEmail(value)
	require.NoError(t, err)
	return email
}

func TestNewUser(t *testing.T) {
	email := mustEmail(t, "ana@example.com")

	t.Run("valid user", func(t *testing.T) {
		u, err := user.NewUser(email, "hash", "  Ana Torres ", user.RoleMentor)
		require.NoError(t, err)
		assert.Equal(t, "Ana Torres", u.FullName())
		assert.Equal(t, user.RoleMentor, u.Role())
		assert.True(t, u.IsActive())
		assert.Nil(t, u.MonthlyHoursLimit())
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := user.NewUser(email, "hash", "Ana", user.Role("owner"))
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("empty full name", func(t *testing.T) {
		_, err := user.NewUser(email, "hash", "  ", user.RoleStudent)
		assert.ErrorIs(t, err, user.ErrEmptyFullName)
	})
}

func TestApplyProfilePatch(t *testing.T) {
	newUser := func(t *testing.T) *user.User {
		u, err := user.NewUser(mustEmail(t, "ana@example.com"), "hash", "Ana", user.RoleMentor)
		require.NoError(t, err)
		return u
	}

	t.Run("patch updates profile fields", func(t *testing.T) {
		u := newUser(t)
		avatar := "https://cdn.example.com/a.png"
		err := u.ApplyProfilePatch(user.ProfilePatch{
			FullName:  "Ana Torres",
			Headline:  "Go mentor",
			Bio:       "teaching since 2019",
			Website:   "https://ana.dev",
			Whatsapp:  "+51999999999",
			AvatarURL: &avatar,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ana Torres", u.FullName())
		assert.Equal(t, "Go mentor", u.Headline())
		assert.Equal(t, avatar, u.AvatarURL())
	})

	t.Run("nil avatar leaves the stored one", func(t *testing.T) {
		u := newUser(t)
		avatar := "https://cdn.example.com/a.png"
		require.NoError(t, u.ApplyProfilePatch(user.ProfilePatch{FullName: "Ana", AvatarURL: &avatar}))
		require.NoError(t, u.ApplyProfilePatch(user.ProfilePatch{FullName: "Ana"}))
		assert.Equal(t, avatar, u.AvatarURL())
	})

	t.Run("validation", func(t *testing.T) {
		u := newUser(t)
		assert.ErrorIs(t, u.ApplyProfilePatch(user.ProfilePatch{FullName: " "}), user.ErrEmptyFullName)
		assert.ErrorIs(t, u.ApplyProfilePatch(user.ProfilePatch{
			FullName: "Ana",
			Headline: strings.Repeat("a", user.MaxHeadlineLength+1),
		}), user.ErrHeadlineTooLong)
	})
}

func TestEffectiveMonthlyHours(t *testing.T) {
	newUserWithLimit := func(t *testing.T, limit *float64) *user.User {
		u, err := user.NewUser(mustEmail(t, "ana@example.com"), "hash", "Ana", user.RoleMentor)
		require.NoError(t, err)
		if limit == nil {
			return u
		}
		return user.ReconstructUser(
			u.ID(), u.Email(), u.PasswordHash(), u.Role(), u.FullName(),
			"", "", "", "", "", "", "", limit, true, u.CreatedAt(), u.UpdatedAt(),
		)
	}

	t.Run("nil limit falls back to default", func(t *testing.T) {
		u := newUserWithLimit(t, nil)
		assert.Equal(t, 32.0, u.EffectiveMonthlyHours(32))
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		zero := 0.0
		u := newUserWithLimit(t, &zero)
		assert.Equal(t, 32.0, u.EffectiveMonthlyHours(32))
	})

	t.Run("custom limit wins", func(t *testing.T) {
		custom := 48.0
		u := newUserWithLimit(t, &custom)
		assert.Equal(t, 48.0, u.EffectiveMonthlyHours(32))
	})
}
