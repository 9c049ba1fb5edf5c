package entity

import "time"

// PassedUserEvent records that two users were in proximity at a given time.
// The row is stored from the perspective of UserID; OtherUserID is the
// counterpart.
type PassedUserEvent struct {
	ID          int64
	UserID      int64
	OtherUserID int64
	PassedAt    time.Time
}

// PassedUserSummary is a passed-user event enriched with the counterpart's
// profile, as returned by the today's-passed-users query.
type PassedUserSummary struct {
	UserID    int64
	Nickname  string
	AvatarURL string
	PassedAt  time.Time
}
