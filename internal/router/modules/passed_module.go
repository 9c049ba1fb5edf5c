package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/passby/passby-backend/internal/container"
	handlers "github.com/passby/passby-backend/internal/interface/http"
	"github.com/passby/passby-backend/internal/interface/middleware"
)

// PassedModule wires the today's-passed-users route; protected.
type PassedModule struct {
	Handler *handlers.PassedHandler
}

func NewPassedModule(h *handlers.PassedHandler) *PassedModule {
	return &PassedModule{Handler: h}
}

func (m *PassedModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/passed")
	auth.Use(middleware.Auth(container.GetSessions(), container.GetJWT()))
	{
		auth.GET("/today", m.Handler.Today)
	}
}
