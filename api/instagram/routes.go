package instagram

import (
	"github.com/gin-gonic/gin"
	"github.com/voxtape/transcript-api/api/types"
)

// RegisterRoutes registers Instagram transcription routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/instagram/transcribe (router already includes /instagram prefix)
	router.POST("/transcribe", Post(deps))
}
