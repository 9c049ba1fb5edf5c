package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/passby/passby-backend/internal/container"
	handlers "github.com/passby/passby-backend/internal/interface/http"
	"github.com/passby/passby-backend/internal/interface/middleware"
)

// FitnessModule wires the metric save/get routes; all protected.
type FitnessModule struct {
	Handler *handlers.FitnessHandler
}

func NewFitnessModule(h *handlers.FitnessHandler) *FitnessModule {
	return &FitnessModule{Handler: h}
}

func (m *FitnessModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/fitness")
	auth.Use(middleware.Auth(container.GetSessions(), container.GetJWT()))
	{
		auth.POST("", m.Handler.Save)
		auth.GET("", m.Handler.Get)
	}
}
