package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"staydrive/internal/domain"
	"staydrive/internal/identity"
	"staydrive/internal/pkg/jwt"
	"staydrive/internal/pkg/response"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// Identify reads an optional bearer token. A valid token puts the identity
// into the request context; a missing or invalid one leaves the request
// anonymous.
func Identify(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.Next()
			return
		}

		claims, err := tokens.ValidateToken(raw)
		if err != nil {
			c.Next()
			return
		}

		id := claims.Identity()
		c.Set(ctxUserID, id.ID)
		c.Set(ctxRole, id.Role)
		c.Request = c.Request.WithContext(identity.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

// RequireAuth rejects anonymous requests. It must run after Identify.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity.FromContext(c.Request.Context()) == nil {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authentication required")
			return
		}
		c.Next()
	}
}

// RequireRole ensures that the authenticated user has the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := identity.FromContext(c.Request.Context())
		if id == nil {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authentication required")
			return
		}
		if id.Role != role {
			response.Abort(c, http.StatusForbidden, response.CodeForbidden, "Access denied: insufficient permissions")
			return
		}
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	// Browsers cannot set headers on websocket upgrades.
	if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
		return c.Query("token")
	}
	return ""
}
