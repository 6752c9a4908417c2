package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("room name cannot be empty")
	ErrInvalidCapacity = errors.New("invalid room capacity range")
	ErrNegativeRate    = errors.New("hourly rate cannot be negative")
)

// Room is static reference data. Capacity bounds are stored explicitly
// rather than inferred from the room name.
type Room struct {
	id              uuid.UUID
	name            string
	minCapacity     int32
	maxCapacity     int32
	hourlyRateCents int64
	createdAt       time.Time
}

func NewRoom(id uuid.UUID, name string, minCapacity, maxCapacity int32, hourlyRateCents int64) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if minCapacity < 1 || maxCapacity < minCapacity {
		return nil, ErrInvalidCapacity
	}
	if hourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}

	return &Room{
		id:              id,
		name:            name,
		minCapacity:     minCapacity,
		maxCapacity:     maxCapacity,
		hourlyRateCents: hourlyRateCents,
	}, nil
}

func ReconstructRoom(id uuid.UUID, name string, minCapacity, maxCapacity int32, hourlyRateCents int64, createdAt time.Time) *Room {
	return &Room{
		id:              id,
		name:            name,
		minCapacity:     minCapacity,
		maxCapacity:     maxCapacity,
		hourlyRateCents: hourlyRateCents,
		createdAt:       createdAt,
	}
}

// Fits reports whether a group of the given size can use the room.
func (r *Room) Fits(groupSize int32) bool {
	return groupSize >= r.minCapacity && groupSize <= r.maxCapacity
}

func (r *Room) ID() uuid.UUID          { return r.id }
func (r *Room) Name() string           { return r.name }
func (r *Room) MinCapacity() int32     { return r.minCapacity }
func (r *Room) MaxCapacity() int32     { return r.maxCapacity }
func (r *Room) HourlyRateCents() int64 { return r.hourlyRateCents }
func (r *Room) CreatedAt() time.Time   { return r.createdAt }
