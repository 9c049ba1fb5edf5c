package application

import (
	"context"
	"time"

	"github.com/passby/passby-backend/internal/domain/entity"
	repo "github.com/passby/passby-backend/internal/domain/repository"
)

// GeoFenceService implements the entry, exit and fetch use cases.
type GeoFenceService struct {
	Repo repo.GeoFenceRepository
}

// Entry appends a zone-entry event. A zero timestamp means now.
func (s *GeoFenceService) Entry(ctx context.Context, userID int64, zoneID string, at time.Time) (*entity.GeoFenceEvent, error) {
	return s.append(ctx, userID, zoneID, entity.GeoFenceEntry, at)
}

// Exit appends a zone-exit event. A zero timestamp means now.
func (s *GeoFenceService) Exit(ctx context.Context, userID int64, zoneID string, at time.Time) (*entity.GeoFenceEvent, error) {
	return s.append(ctx, userID, zoneID, entity.GeoFenceExit, at)
}

func (s *GeoFenceService) append(ctx context.Context, userID int64, zoneID, eventType string, at time.Time) (*entity.GeoFenceEvent, error) {
	if at.IsZero() {
		at = time.Now()
	}
	ev := &entity.GeoFenceEvent{
		UserID:     userID,
		ZoneID:     zoneID,
		EventType:  eventType,
		OccurredAt: at,
	}
	if err := s.Repo.Append(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// Fetch returns the caller's events in non-decreasing timestamp order.
func (s *GeoFenceService) Fetch(ctx context.Context, userID int64) ([]entity.GeoFenceEvent, error) {
	return s.Repo.ListByUser(ctx, userID)
}
