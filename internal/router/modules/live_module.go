package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/passby/passby-backend/internal/container"
	"github.com/passby/passby-backend/internal/interface/middleware"
	"github.com/passby/passby-backend/internal/interface/ws"
)

// LiveModule wires the WebSocket live location channel; protected. The
// bearer gate runs on the upgrade request itself.
type LiveModule struct {
	Handler *ws.Handler
}

func NewLiveModule(h *ws.Handler) *LiveModule {
	return &LiveModule{Handler: h}
}

func (m *LiveModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetSessions(), container.GetJWT()))
	{
		auth.GET("/live", m.Handler.Serve)
	}
}
