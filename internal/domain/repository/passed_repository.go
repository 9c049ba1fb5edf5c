package repository

import (
	"context"
	"time"

	"github.com/passby/passby-backend/internal/domain/entity"
)

// PassedUserRepository persists proximity encounters between users.
type PassedUserRepository interface {
	Append(ctx context.Context, ev *entity.PassedUserEvent) error
	// ListByUserBetween returns the user's encounters with passed_at in
	// [from, to), ordered by passed_at ascending.
	ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]entity.PassedUserEvent, error)
	// LastBetweenPair returns the most recent encounter time recorded for
	// the pair in either direction, or ErrNotFound.
	LastBetweenPair(ctx context.Context, userID, otherUserID int64) (time.Time, error)
}
