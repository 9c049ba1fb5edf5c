package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/passby/passby-backend/internal/application"
	"github.com/passby/passby-backend/internal/interface/middleware"
	"github.com/passby/passby-backend/pkg/response"
)

type PassedHandler struct {
	Svc    *application.PassedUserService
	Logger *logrus.Logger
}

func NewPassedHandler(svc *application.PassedUserService, logger *logrus.Logger) *PassedHandler {
	return &PassedHandler{Svc: svc, Logger: logger}
}

type passedUserResponse struct {
	UserID    int64  `json:"userId"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
	PassedAt  string `json:"passedAt"`
}

// Today handles GET /api/passed/today. No encounters is an empty list, not
// an error.
func (h *PassedHandler) Today(c *gin.Context) {
	uid := middleware.UserID(c)
	summaries, err := h.Svc.Today(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("passed today failed")
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	out := make([]passedUserResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, passedUserResponse{
			UserID:    s.UserID,
			Nickname:  s.Nickname,
			AvatarURL: s.AvatarURL,
			PassedAt:  s.PassedAt.Format(time.RFC3339),
		})
	}
	response.Success(c, http.StatusOK, out, "today's passed users", map[string]any{"count": len(out)})
}
