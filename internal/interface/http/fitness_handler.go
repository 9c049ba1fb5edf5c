package handlers

import (
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

type FitnessHandler struct {
	Svc    *application.FitnessService
	Logger *logrus.Logger
}

func NewFitnessHandler(svc *application.FitnessService, logger *logrus.Logger) *FitnessHandler {
	return &FitnessHandler{Svc: svc, Logger: logger}
}

type saveFitnessRequest struct {
	Steps          int     `json:"steps" binding:"gte=0"`
	DistanceMeters float64 `json:"distanceMeters" binding:"gte=0"`
	RecordedAt     string  `json:"recordedAt"` // RFC3339, optional; empty means now
}

type fitnessRecordResponse struct {
	ID             int64   `json:"id"`
	Steps          int     `json:"steps"`
	DistanceMeters float64 `json:"distanceMeters"`
	RecordedAt     string  `json:"recordedAt"`
}

// Save handles POST /api/fitness.
func (h *FitnessHandler) Save(c *gin.Context) {
	var req saveFitnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	at, err := helpers.ParseTimestamp(req.RecordedAt)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", map[string]string{"recordedAt": "must be RFC3339"})
		return
	}
	uid := middleware.UserID(c)
	rec := &entity.FitnessRecord{
		UserID:         uid,
		Steps:          req.Steps,
		DistanceMeters: req.DistanceMeters,
		RecordedAt:     at,
	}
	if err := h.Svc.Save(c.Request.Context(), rec); err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("fitness save failed")
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success(c, http.StatusCreated, toFitnessResponse(*rec), "sample saved", nil)
}

// Get handles GET /api/fitness?from=&to= (bounds optional, RFC3339).
func (h *FitnessHandler) Get(c *gin.Context) {
	from, err := helpers.ParseTimestamp(c.Query("from"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid range", map[string]string{"from": "must be RFC3339"})
		return
	}
	to, err := helpers.ParseTimestamp(c.Query("to"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid range", map[string]string{"to": "must be RFC3339"})
		return
	}
	uid := middleware.UserID(c)
	records, err := h.Svc.Get(c.Request.Context(), uid, from, to)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("fitness get failed")
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	out := make([]fitnessRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toFitnessResponse(rec))
	}
	response.Success(c, http.StatusOK, out, "fitness records", map[string]any{"count": len(out)})
}

func toFitnessResponse(rec entity.FitnessRecord) fitnessRecordResponse {
	return fitnessRecordResponse{
		ID:             rec.ID,
		Steps:          rec.Steps,
		DistanceMeters: rec.DistanceMeters,
		RecordedAt:     rec.RecordedAt.Format(time.RFC3339),
	}
}
