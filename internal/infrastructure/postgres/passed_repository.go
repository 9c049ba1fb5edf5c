package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/passby/passby-backend/internal/domain/entity"
	"github.com/passby/passby-backend/internal/domain/repository"
)

type PassedUserRepository struct {
	pool *pgxpool.Pool
}

func NewPassedUserRepository(pool *pgxpool.Pool) *PassedUserRepository {
	return &PassedUserRepository{pool: pool}
}

func (r *PassedUserRepository) Append(ctx context.Context, ev *entity.PassedUserEvent) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO passed_user_events (user_id, other_user_id, passed_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, ev.UserID, ev.OtherUserID, ev.PassedAt)
	return row.Scan(&ev.ID)
}

func (r *PassedUserRepository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]entity.PassedUserEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, other_user_id, passed_at
		FROM passed_user_events
		WHERE user_id = $1 AND passed_at >= $2 AND passed_at < $3
		ORDER BY passed_at ASC, id ASC
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]entity.PassedUserEvent, 0)
	for rows.Next() {
		var ev entity.PassedUserEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.OtherUserID, &ev.PassedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *PassedUserRepository) LastBetweenPair(ctx context.Context, userID, otherUserID int64) (time.Time, error) {
	var last *time.Time
	row := r.pool.QueryRow(ctx, `
		SELECT max(passed_at)
		FROM passed_user_events
		WHERE (user_id = $1 AND other_user_id = $2)
		   OR (user_id = $2 AND other_user_id = $1)
	`, userID, otherUserID)
	if err := row.Scan(&last); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, repository.ErrNotFound
		}
		return time.Time{}, err
	}
	if last == nil {
		return time.Time{}, repository.ErrNotFound
	}
	return *last, nil
}

var _ repository.PassedUserRepository = (*PassedUserRepository)(nil)
