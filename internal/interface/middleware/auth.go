package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/passby/passby-backend/internal/application"
	"github.com/passby/passby-backend/pkg/helpers"
	"github.com/passby/passby-backend/pkg/response"
)

// Context keys set by the auth gate.
const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// Auth is the bearer-token gate in front of every protected route. It
// verifies the Authorization header token (signature, issuer, audience,
// expiry, identity claim) and requires a live session for the user id, so
// logged-out tokens are rejected even before they expire. On success it
// sets userID and userEmail in the Gin context; on failure it responds 401
// with the configured challenge realm and stops the chain.
func Auth(sessions application.SessionStore, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			challenge(c, jwt.Realm, "missing bearer token")
			return
		}
		claims, err := jwt.Verify(token)
		if err != nil {
			challenge(c, jwt.Realm, "Unauthorized")
			return
		}
		_, ok, err := sessions.Get(c.Request.Context(), claims.UserID)
		if err != nil || !ok {
			challenge(c, jwt.Realm, "Unauthorized")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.UserEmail)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func challenge(c *gin.Context, realm, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="`+realm+`"`)
	resp := response.Error[any](c, http.StatusUnauthorized, msg, nil)
	c.AbortWithStatusJSON(resp.Status, resp)
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) int64 {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
