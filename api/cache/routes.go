package cache

import (
	"github.com/gin-gonic/gin"
	"github.com/voxtape/transcript-api/api/types"
)

// RegisterRoutes registers cache administration routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// DELETE /api/v1/cache (router already includes /cache prefix)
	router.DELETE("", Delete(deps))
}
