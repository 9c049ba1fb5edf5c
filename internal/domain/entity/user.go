package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in Password.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserInfo is the auxiliary profile record keyed by user id. A row is
// created at registration and enriched later via profile updates.
type UserInfo struct {
	UserID    int64
	Nickname  string
	AvatarURL string
	Bio       string
	UpdatedAt time.Time
}
