package entity

import "time"

// FitnessRecord is a single per-user metric sample.
type FitnessRecord struct {
	ID             int64
	UserID         int64
	Steps          int
	DistanceMeters float64
	RecordedAt     time.Time
	CreatedAt      time.Time
}
