// Package redisstore holds Redis-backed infrastructure. The session store
// is the server-side revocation record for issued bearer tokens: login
// writes a session, the auth gate requires one, logout deletes it.
package redisstore

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/passby/passby-backend/internal/application"
)

type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(userID int64) string {
	return "user:session:" + strconv.FormatInt(userID, 10)
}

func (s *SessionStore) Put(ctx context.Context, sess application.Session) error {
	key := sessionKey(sess.UserID)
	fields := map[string]any{
		"user_id":    sess.UserID,
		"email":      sess.Email,
		"name":       sess.Name,
		"sid":        sess.SID,
		"created_at": sess.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *SessionStore) Get(ctx context.Context, userID int64) (application.Session, bool, error) {
	data, err := s.rdb.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return application.Session{}, false, err
	}
	if len(data) == 0 {
		return application.Session{}, false, nil
	}
	sess := application.Session{
		UserID: userID,
		Email:  data["email"],
		Name:   data["name"],
		SID:    data["sid"],
	}
	if t, perr := time.Parse(time.RFC3339Nano, data["created_at"]); perr == nil {
		sess.CreatedAt = t
	}
	return sess, true, nil
}

func (s *SessionStore) Delete(ctx context.Context, userID int64) error {
	return s.rdb.Del(ctx, sessionKey(userID)).Err()
}

var _ application.SessionStore = (*SessionStore)(nil)
