package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/passby/passby-backend/internal/container"
	handlers "github.com/passby/passby-backend/internal/interface/http"
	"github.com/passby/passby-backend/internal/interface/middleware"
)

// UserModule wires the account routes.
// Public: POST /api/users, POST /api/login
// Protected: POST /api/logout, DELETE /api/users/me, GET/PUT /api/users/me,
// POST /api/users/me/avatar, GET /api/users/search
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Create)
	rg.POST("/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetSessions(), container.GetJWT()))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.DELETE("/users/me", m.Handler.Delete)
		auth.GET("/users/me", m.Handler.GetProfile)
		auth.PUT("/users/me", m.Handler.UpdateProfile)
		auth.POST("/users/me/avatar", m.Handler.UploadAvatar)
		auth.GET("/users/search", m.Handler.Search)
	}
}
