package application

import (
	"context"
	"time"
)

// Session is the server-side record that keeps an issued token usable.
// Deleting it revokes every token carried by that user.
type Session struct {
	UserID    int64
	Email     string
	Name      string
	SID       string
	CreatedAt time.Time
}

// SessionStore is implemented by internal/infrastructure/redisstore.
type SessionStore interface {
	Put(ctx context.Context, sess Session) error
	Get(ctx context.Context, userID int64) (Session, bool, error)
	Delete(ctx context.Context, userID int64) error
}
