package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"streamhub/internal/http-api/models"
	"streamhub/internal/http-api/service"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware authenticates API requests from the Authorization header.
// The token's subject is resolved back to a live user record on every
// request; a valid token for a deleted account is rejected. Past this
// middleware a handler always has an authenticated identity in context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		user, err := authService.GetUserByID(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextRoleKey, user.Role)

		c.Next()
	}
}

// RequireStaff allows admins and moderators through.
func RequireStaff() gin.HandlerFunc {
	return requireRole(models.Role.IsStaff)
}

// RequireAdmin allows only admins through.
func RequireAdmin() gin.HandlerFunc {
	return requireRole(models.Role.IsAdmin)
}

func requireRole(allowed func(models.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextRoleKey)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "role not found in request context"})
			c.Abort()
			return
		}

		role, ok := roleValue.(models.Role)
		if !ok || !allowed(role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
