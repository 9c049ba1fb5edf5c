// Package ws implements the live location channel. Connected users stream
// location pings; the hub keeps per-user presence and turns proximity hits
// into passed-user events.
package ws

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/passby/passby-backend/internal/application"
)

type presence struct {
	userID int64
	lat    float64
	lng    float64
	hasFix bool
	seenAt time.Time
}

// Hub tracks currently connected users and their last reported position.
// One goroutine per connection calls into it; state is mutex-guarded.
type Hub struct {
	mu      sync.RWMutex
	users   map[int64]*presence
	passed  *application.PassedUserService
	logger  *logrus.Logger
	radiusM float64
	cool    time.Duration
}

func NewHub(passed *application.PassedUserService, logger *logrus.Logger, radiusMeters float64, pairCooldown time.Duration) *Hub {
	return &Hub{
		users:   make(map[int64]*presence),
		passed:  passed,
		logger:  logger,
		radiusM: radiusMeters,
		cool:    pairCooldown,
	}
}

// Join registers a user's presence. A second connection for the same user
// replaces the first one's position.
func (h *Hub) Join(userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.users[userID] = &presence{userID: userID, seenAt: time.Now()}
}

// Leave removes a user's presence.
func (h *Hub) Leave(userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.users, userID)
}

// Update stores the user's position and returns how many other connected
// users are currently within the proximity radius. Each hit is recorded as
// a passed-user encounter, subject to the per-pair cooldown.
func (h *Hub) Update(ctx context.Context, userID int64, lat, lng float64) int {
	now := time.Now()

	h.mu.Lock()
	p, ok := h.users[userID]
	if !ok {
		p = &presence{userID: userID}
		h.users[userID] = p
	}
	p.lat, p.lng, p.hasFix, p.seenAt = lat, lng, true, now

	nearby := make([]int64, 0)
	for id, other := range h.users {
		if id == userID || !other.hasFix {
			continue
		}
		if haversineMeters(lat, lng, other.lat, other.lng) <= h.radiusM {
			nearby = append(nearby, id)
		}
	}
	h.mu.Unlock()

	for _, otherID := range nearby {
		if _, err := h.passed.RecordEncounter(ctx, userID, otherID, now, h.cool); err != nil {
			h.logger.WithError(err).WithFields(logrus.Fields{
				"user_id":       userID,
				"other_user_id": otherID,
			}).Warn("encounter record failed")
		}
	}
	return len(nearby)
}

const earthRadiusM = 6371000

// haversineMeters returns the great-circle distance between two coordinates.
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
