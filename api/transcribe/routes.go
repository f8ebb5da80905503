package transcribe

import (
	"github.com/gin-gonic/gin"
	"github.com/voxtape/transcript-api/api/types"
)

// RegisterRoutes registers transcription routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/transcribe (router already includes /transcribe prefix)
	router.POST("", Post(deps))
}
