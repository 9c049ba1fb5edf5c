package repository

import (
	"context"
	"time"

	"github.com/passby/passby-backend/internal/domain/entity"
)

// FitnessRepository persists per-user metric samples.
type FitnessRepository interface {
	Save(ctx context.Context, rec *entity.FitnessRecord) error
	// ListByUser returns the user's samples with recorded_at in [from, to],
	// ordered ascending. Zero-valued bounds are open-ended.
	ListByUser(ctx context.Context, userID int64, from, to time.Time) ([]entity.FitnessRecord, error)
}
