package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole     = errors.New("invalid user role")
	ErrEmptyFullName   = errors.New("full name cannot be empty")
	ErrNegativeQuota   = errors.New("monthly hours limit cannot be negative")
	ErrInactiveAccount = errors.New("account is inactive")
	ErrHeadlineTooLong = errors.New("headline too long")
)

const MaxHeadlineLength = 160

// User is an account plus its public profile. The monthly hours limit
// caps room usage for mentors; nil means the platform default applies.
type User struct {
	id                uuid.UUID
	email             Email
	passwordHash      string
	role              Role
	fullName          string
	headline          string
	bio               string
	website           string
	linkedinURL       string
	instagramURL      string
	whatsapp          string
	avatarURL         string
	monthlyHoursLimit *float64
	isActive          bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewUser(email Email, passwordHash, fullName string, role Role) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}

	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		fullName:     fullName,
		isActive:     true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	fullName, headline, bio, website, linkedinURL, instagramURL, whatsapp, avatarURL string,
	monthlyHoursLimit *float64,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:                id,
		email:             email,
		passwordHash:      passwordHash,
		role:              role,
		fullName:          fullName,
		headline:          headline,
		bio:               bio,
		website:           website,
		linkedinURL:       linkedinURL,
		instagramURL:      instagramURL,
		whatsapp:          whatsapp,
		avatarURL:         avatarURL,
		monthlyHoursLimit: monthlyHoursLimit,
		isActive:          isActive,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

type ProfilePatch struct {
	FullName     string
	Headline     string
	Bio          string
	Website      string
	LinkedinURL  string
	InstagramURL string
	Whatsapp     string
	AvatarURL    *string
}

func (u *User) ApplyProfilePatch(p ProfilePatch) error {
	fullName := strings.TrimSpace(p.FullName)
	if fullName == "" {
		return ErrEmptyFullName
	}
	if len(p.Headline) > MaxHeadlineLength {
		return ErrHeadlineTooLong
	}

	u.fullName = fullName
	u.headline = p.Headline
	u.bio = p.Bio
	u.website = p.Website
	u.linkedinURL = p.LinkedinURL
	u.instagramURL = p.InstagramURL
	u.whatsapp = p.Whatsapp
	if p.AvatarURL != nil {
		u.avatarURL = *p.AvatarURL
	}
	return nil
}

// EffectiveMonthlyHours resolves the quota limit, falling back to the
// platform default when the profile has none configured.
func (u *User) EffectiveMonthlyHours(defaultHours float64) float64 {
	if u.monthlyHoursLimit == nil || *u.monthlyHoursLimit <= 0 {
		return defaultHours
	}
	return *u.monthlyHoursLimit
}

func (u *User) ID() uuid.UUID               { return u.id }
func (u *User) Email() Email                { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Role() Role                  { return u.role }
func (u *User) FullName() string            { return u.fullName }
func (u *User) Headline() string            { return u.headline }
func (u *User) Bio() string                 { return u.bio }
func (u *User) Website() string             { return u.website }
func (u *User) LinkedinURL() string         { return u.linkedinURL }
func (u *User) InstagramURL() string        { return u.instagramURL }
func (u *User) Whatsapp() string            { return u.whatsapp }
func (u *User) AvatarURL() string           { return u.avatarURL }
func (u *User) MonthlyHoursLimit() *float64 { return u.monthlyHoursLimit }
func (u *User) IsActive() bool              { return u.isActive }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }
