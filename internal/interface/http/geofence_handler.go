package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/passby/passby-backend/internal/application"
	"github.com/passby/passby-backend/internal/domain/entity"
	"github.com/passby/passby-backend/internal/interface/middleware"
	"github.com/passby/passby-backend/pkg/helpers"
	"github.com/passby/passby-backend/pkg/response"
	"github.com/passby/passby-backend/pkg/validation"
)

type GeoFenceHandler struct {
	Svc    *application.GeoFenceService
	Logger *logrus.Logger
}

func NewGeoFenceHandler(svc *application.GeoFenceService, logger *logrus.Logger) *GeoFenceHandler {
	return &GeoFenceHandler{Svc: svc, Logger: logger}
}

type geoFenceRequest struct {
	ZoneID    string `json:"zoneId" binding:"required"`
	Timestamp string `json:"timestamp"` // RFC3339, optional; empty means now
}

type geoFenceEventResponse struct {
	ID         int64  `json:"id"`
	ZoneID     string `json:"zoneId"`
	EventType  string `json:"eventType"`
	OccurredAt string `json:"occurredAt"`
}

// Entry handles POST /api/geofence/entry.
func (h *GeoFenceHandler) Entry(c *gin.Context) {
	h.append(c, h.Svc.Entry)
}

// Exit handles POST /api/geofence/exit.
func (h *GeoFenceHandler) Exit(c *gin.Context) {
	h.append(c, h.Svc.Exit)
}

func (h *GeoFenceHandler) append(c *gin.Context, op func(ctx context.Context, userID int64, zoneID string, at time.Time) (*entity.GeoFenceEvent, error)) {
	var req geoFenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	at, err := helpers.ParseTimestamp(req.Timestamp)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", map[string]string{"timestamp": "must be RFC3339"})
		return
	}
	uid := middleware.UserID(c)
	ev, err := op(c.Request.Context(), uid, req.ZoneID, at)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("geofence append failed")
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success(c, http.StatusCreated, toGeoFenceResponse(*ev), "event recorded", nil)
}

// Fetch handles GET /api/geofence: the caller's events, oldest first.
func (h *GeoFenceHandler) Fetch(c *gin.Context) {
	uid := middleware.UserID(c)
	events, err := h.Svc.Fetch(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("geofence fetch failed")
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	out := make([]geoFenceEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toGeoFenceResponse(ev))
	}
	response.Success(c, http.StatusOK, out, "geofence events", map[string]any{"count": len(out)})
}

func toGeoFenceResponse(ev entity.GeoFenceEvent) geoFenceEventResponse {
	return geoFenceEventResponse{
		ID:         ev.ID,
		ZoneID:     ev.ZoneID,
		EventType:  ev.EventType,
		OccurredAt: ev.OccurredAt.Format(time.RFC3339),
	}
}
