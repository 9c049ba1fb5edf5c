package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/passby/passby-backend/internal/domain/entity"
	"github.com/passby/passby-backend/internal/domain/repository"
)

type GeoFenceRepository struct {
	pool *pgxpool.Pool
}

func NewGeoFenceRepository(pool *pgxpool.Pool) *GeoFenceRepository {
	return &GeoFenceRepository{pool: pool}
}

func (r *GeoFenceRepository) Append(ctx context.Context, ev *entity.GeoFenceEvent) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO geofence_events (user_id, zone_id, event_type, occurred_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, ev.UserID, ev.ZoneID, ev.EventType, ev.OccurredAt)
	return row.Scan(&ev.ID, &ev.CreatedAt)
}

func (r *GeoFenceRepository) ListByUser(ctx context.Context, userID int64) ([]entity.GeoFenceEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, zone_id, event_type, occurred_at, created_at
		FROM geofence_events
		WHERE user_id = $1
		ORDER BY occurred_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]entity.GeoFenceEvent, 0)
	for rows.Next() {
		var ev entity.GeoFenceEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.ZoneID, &ev.EventType, &ev.OccurredAt, &ev.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

var _ repository.GeoFenceRepository = (*GeoFenceRepository)(nil)
