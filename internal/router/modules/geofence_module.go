package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/passby/passby-backend/internal/container"
	handlers "github.com/passby/passby-backend/internal/interface/http"
	"github.com/passby/passby-backend/internal/interface/middleware"
)

// GeoFenceModule wires the zone entry/exit/fetch routes; all protected.
type GeoFenceModule struct {
	Handler *handlers.GeoFenceHandler
}

func NewGeoFenceModule(h *handlers.GeoFenceHandler) *GeoFenceModule {
	return &GeoFenceModule{Handler: h}
}

func (m *GeoFenceModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/geofence")
	auth.Use(middleware.Auth(container.GetSessions(), container.GetJWT()))
	{
		auth.POST("/entry", m.Handler.Entry)
		auth.POST("/exit", m.Handler.Exit)
		auth.GET("", m.Handler.Fetch)
	}
}
