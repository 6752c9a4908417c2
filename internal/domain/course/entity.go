package course

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("course title cannot be empty")
	ErrInvalidModality = errors.New("invalid course modality")
	ErrNegativePrice   = errors.New("course price cannot be negative")
)

const MaxTitleLength = 200

var ErrTitleTooLong = errors.New("course title too long")

type Course struct {
	id              uuid.UUID
	mentorID        uuid.UUID
	title           string
	description     string
	priceCents      int64
	modality        Modality
	isLive          bool
	isPublished     bool
	maxStudents     *int32
	address         string
	meetingPlatform string
	roomID          *uuid.UUID
	scheduleInfo    string
	imageURL        string
	logoURL         string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewCourse(mentorID uuid.UUID, title, description string, priceCents int64, modality Modality, isLive bool) (*Course, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if !modality.IsValid() {
		return nil, ErrInvalidModality
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Course{
		id:          uuid.New(),
		mentorID:    mentorID,
		title:       title,
		description: description,
		priceCents:  priceCents,
		modality:    modality,
		isLive:      isLive,
	}, nil
}

func ReconstructCourse(
	id, mentorID uuid.UUID,
	title, description string,
	priceCents int64,
	modality Modality,
	isLive, isPublished bool,
	maxStudents *int32,
	address, meetingPlatform string,
	roomID *uuid.UUID,
	scheduleInfo, imageURL, logoURL string,
	createdAt, updatedAt time.Time,
) *Course {
	return &Course{
		id:              id,
		mentorID:        mentorID,
		title:           title,
		description:     description,
		priceCents:      priceCents,
		modality:        modality,
		isLive:          isLive,
		isPublished:     isPublished,
		maxStudents:     maxStudents,
		address:         address,
		meetingPlatform: meetingPlatform,
		roomID:          roomID,
		scheduleInfo:    scheduleInfo,
		imageURL:        imageURL,
		logoURL:         logoURL,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

type Patch struct {
	Title           string
	Description     string
	PriceCents      int64
	Modality        Modality
	IsLive          bool
	MaxStudents     *int32
	Address         string
	MeetingPlatform string
	RoomID          *uuid.UUID
	ImageURL        string
	LogoURL         string
}

func (c *Course) ApplyPatch(p Patch) error {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if !p.Modality.IsValid() {
		return ErrInvalidModality
	}
	if p.PriceCents < 0 {
		return ErrNegativePrice
	}

	c.title = title
	c.description = p.Description
	c.priceCents = p.PriceCents
	c.modality = p.Modality
	c.isLive = p.IsLive
	c.maxStudents = p.MaxStudents
	c.address = p.Address
	c.meetingPlatform = p.MeetingPlatform
	c.roomID = p.RoomID
	c.imageURL = p.ImageURL
	c.logoURL = p.LogoURL
	return nil
}

func (c *Course) IsOwnedBy(userID uuid.UUID) bool {
	return c.mentorID == userID
}

// IsOnlineLive marks courses whose sessions never occupy a room and are
// therefore confirmed on creation.
func (c *Course) IsOnlineLive() bool {
	return c.modality == ModalityOnline && c.isLive
}

func (c *Course) ID() uuid.UUID           { return c.id }
func (c *Course) MentorID() uuid.UUID     { return c.mentorID }
func (c *Course) Title() string           { return c.title }
func (c *Course) Description() string     { return c.description }
func (c *Course) PriceCents() int64       { return c.priceCents }
func (c *Course) Modality() Modality      { return c.modality }
func (c *Course) IsLive() bool            { return c.isLive }
func (c *Course) IsPublished() bool       { return c.isPublished }
func (c *Course) MaxStudents() *int32     { return c.maxStudents }
func (c *Course) Address() string         { return c.address }
func (c *Course) MeetingPlatform() string { return c.meetingPlatform }
func (c *Course) RoomID() *uuid.UUID      { return c.roomID }
func (c *Course) ScheduleInfo() string    { return c.scheduleInfo }
func (c *Course) ImageURL() string        { return c.imageURL }
func (c *Course) LogoURL() string         { return c.logoURL }
func (c *Course) CreatedAt() time.Time    { return c.createdAt }
func (c *Course) UpdatedAt() time.Time    { return c.updatedAt }
