package handler

import (
	"github.com/gin-gonic/gin"

	"streamhub/internal/http-api/middleware"
)

// currentUserID pulls the authenticated user's id out of the Gin context.
// It is only meaningful behind AuthMiddleware.
func currentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
