package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles service identity requests
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Transcript API",
			"version":     "1.0.0",
			"description": "Transcript acquisition for YouTube videos and Instagram posts",
			"status":      "running",
		})
	}
}
