package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/passby/passby-backend/internal/domain/entity"
	"github.com/passby/passby-backend/internal/domain/repository"
)

type UserInfoRepository struct {
	pool *pgxpool.Pool
}

func NewUserInfoRepository(pool *pgxpool.Pool) *UserInfoRepository {
	return &UserInfoRepository{pool: pool}
}

func (r *UserInfoRepository) Upsert(ctx context.Context, info *entity.UserInfo) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO user_info (user_id, nickname, avatar_url, bio)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET nickname = EXCLUDED.nickname,
		    avatar_url = EXCLUDED.avatar_url,
		    bio = EXCLUDED.bio,
		    updated_at = now()
		RETURNING updated_at
	`, info.UserID, info.Nickname, info.AvatarURL, info.Bio)
	return row.Scan(&info.UpdatedAt)
}

func (r *UserInfoRepository) GetByUserID(ctx context.Context, userID int64) (*entity.UserInfo, error) {
	info := &entity.UserInfo{}
	row := r.pool.QueryRow(ctx, `
		SELECT user_id, nickname, avatar_url, bio, updated_at
		FROM user_info
		WHERE user_id = $1
	`, userID)
	if err := row.Scan(&info.UserID, &info.Nickname, &info.AvatarURL, &info.Bio, &info.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return info, nil
}

var _ repository.UserInfoRepository = (*UserInfoRepository)(nil)
