package application

import (
	"context"
	"time"

	"github.com/passby/passby-backend/internal/domain/entity"
	repo "github.com/passby/passby-backend/internal/domain/repository"
)

// FitnessService implements the save and get use cases. Samples are stored
// as given; there is no plausibility checking.
type FitnessService struct {
	Repo repo.FitnessRepository
}

// Save persists a metric sample. A zero RecordedAt means now.
func (s *FitnessService) Save(ctx context.Context, rec *entity.FitnessRecord) error {
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now()
	}
	return s.Repo.Save(ctx, rec)
}

// Get returns the caller's samples within the optional [from, to] range,
// ordered by recorded_at ascending. Zero bounds are open-ended.
func (s *FitnessService) Get(ctx context.Context, userID int64, from, to time.Time) ([]entity.FitnessRecord, error) {
	return s.Repo.ListByUser(ctx, userID, from, to)
}
