package entity

import "time"

// Geofence event types.
const (
	GeoFenceEntry = "entry"
	GeoFenceExit  = "exit"
)

// GeoFenceEvent records a user crossing the boundary of a named zone.
type GeoFenceEvent struct {
	ID         int64
	UserID     int64
	ZoneID     string
	EventType  string // GeoFenceEntry or GeoFenceExit
	OccurredAt time.Time
	CreatedAt  time.Time
}
