package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/passby/passby-backend/internal/interface/middleware"
)

// locationPing is the only inbound message the channel understands.
type locationPing struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type nearbyReply struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Handler upgrades authenticated requests and runs the per-connection read
// loop. The bearer gate runs before the upgrade, so the user id is already
// in the Gin context.
type Handler struct {
	Hub    *Hub
	Logger *logrus.Logger

	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, logger *logrus.Logger) *Handler {
	return &Handler{
		Hub:    hub,
		Logger: logger,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 10 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
			// Origin is already constrained by the CORS layer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve handles GET /api/live.
func (h *Handler) Serve(c *gin.Context) {
	uid := middleware.UserID(c)
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.Logger.WithError(err).WithField("user_id", uid).Debug("ws upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()

	h.Hub.Join(uid)
	defer h.Hub.Leave(uid)

	ctx := c.Request.Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.Logger.WithError(err).WithField("user_id", uid).Debug("ws read failed")
			}
			return
		}
		var ping locationPing
		if err := json.Unmarshal(data, &ping); err != nil {
			_ = conn.WriteJSON(gin.H{"type": "error", "message": "invalid message"})
			continue
		}
		count := h.Hub.Update(ctx, uid, ping.Lat, ping.Lng)
		if err := conn.WriteJSON(nearbyReply{Type: "nearby", Count: count}); err != nil {
			return
		}
	}
}
