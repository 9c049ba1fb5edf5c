package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/passby/passby-backend/internal/domain/entity"
	"github.com/passby/passby-backend/internal/domain/repository"
)

type FitnessRepository struct {
	pool *pgxpool.Pool
}

func NewFitnessRepository(pool *pgxpool.Pool) *FitnessRepository {
	return &FitnessRepository{pool: pool}
}

func (r *FitnessRepository) Save(ctx context.Context, rec *entity.FitnessRecord) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO fitness_records (user_id, steps, distance_meters, recorded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rec.UserID, rec.Steps, rec.DistanceMeters, rec.RecordedAt)
	return row.Scan(&rec.ID, &rec.CreatedAt)
}

func (r *FitnessRepository) ListByUser(ctx context.Context, userID int64, from, to time.Time) ([]entity.FitnessRecord, error) {
	// Zero bounds are open-ended.
	query := `
		SELECT id, user_id, steps, distance_meters, recorded_at, created_at
		FROM fitness_records
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR recorded_at >= $2)
		  AND ($3::timestamptz IS NULL OR recorded_at <= $3)
		ORDER BY recorded_at ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query, userID, nullable(from), nullable(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]entity.FitnessRecord, 0)
	for rows.Next() {
		var rec entity.FitnessRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Steps, &rec.DistanceMeters, &rec.RecordedAt, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func nullable(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

var _ repository.FitnessRepository = (*FitnessRepository)(nil)
