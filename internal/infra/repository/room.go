package repository

import (
	"context"
	"time"

	"basecampus-api/internal/domain/room"
	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(pool db.DBTX) *RoomRepository {
	return &RoomRepository{db: pool}
}

func (r *RoomRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error) {
	var (
		rid             uuid.UUID
		name            string
		minCap, maxCap  int32
		hourlyRateCents int64
		createdAt       time.Time
	)
	err := tx.QueryRow(ctx, `
		SELECT id, name, min_capacity, max_capacity, hourly_rate_cents, created_at
		FROM rooms
		WHERE id = $1
	`, id).Scan(&rid, &name, &minCap, &maxCap, &hourlyRateCents, &createdAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	return room.ReconstructRoom(rid, name, minCap, maxCap, hourlyRateCents, createdAt), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, min_capacity, max_capacity, hourly_rate_cents, created_at
		FROM rooms
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*readmodel.RoomRM
	for rows.Next() {
		var rm readmodel.RoomRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.MinCapacity, &rm.MaxCapacity, &rm.HourlyRateCents, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}
