package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/response"
	"github.com/stemsi/schoolms-backend/internal/service"
)

// ContextKeyIdentity is the Gin context key for the session identity.
const ContextKeyIdentity = "identity"

// RequireIdentity validates the session token from the Authorization
// header and stores the decoded identity on the context. The token is a
// role-selected identity, not an authenticated credential; the guard
// only ensures a session exists at all.
func RequireIdentity(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		identity := authService.RestoreSession(tokenStr)
		if identity == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyIdentity, identity)
		c.Next()
	}
}

// GetIdentity retrieves the session identity from the Gin context.
func GetIdentity(c *gin.Context) *model.Identity {
	val, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return nil
	}
	identity, ok := val.(*model.Identity)
	if !ok {
		return nil
	}
	return identity
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return c.Query("token")
}
