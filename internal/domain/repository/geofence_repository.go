package repository

import (
	"context"

	"github.com/passby/passby-backend/internal/domain/entity"
)

// GeoFenceRepository persists zone entry/exit events.
type GeoFenceRepository interface {
	Append(ctx context.Context, ev *entity.GeoFenceEvent) error
	// ListByUser returns the user's events ordered by occurred_at ascending.
	ListByUser(ctx context.Context, userID int64) ([]entity.GeoFenceEvent, error)
}
