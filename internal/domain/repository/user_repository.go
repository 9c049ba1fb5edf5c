package repository

import (
	"context"

	"github.com/passby/passby-backend/internal/domain/entity"
)

// UserRepository defines the interface for user-account persistence.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserInfoRepository persists the auxiliary profile record.
type UserInfoRepository interface {
	Upsert(ctx context.Context, info *entity.UserInfo) error
	GetByUserID(ctx context.Context, userID int64) (*entity.UserInfo, error)
}
