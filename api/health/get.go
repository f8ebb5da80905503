package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/voxtape/transcript-api/api/types"
)

// Get handles health check requests
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil {
			if deps.Cache != nil {
				response.CacheSize = deps.Cache.Len()
			}
			response.Providers = map[string]bool{
				"speech":    deps.SpeechEnabled,
				"instagram": deps.InstagramService != nil,
			}
		}

		c.JSON(http.StatusOK, response)
	}
}
