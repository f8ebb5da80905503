package cache

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voxtape/transcript-api/api/types"
)

// Delete handles cache flush requests
// @Summary      Clear the transcript cache
// @Description  Removes every cached transcript, fresh and expired alike, and reports how many entries were dropped
// @Tags         cache
// @Produce      json
// @Success      200 {object} types.ClearCacheResponse "Flush summary"
// @Failure      500 {object} types.ErrorResponse "Cache not available"
// @Router       /api/v1/cache [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Cache == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error:     "Cache not available",
				ErrorType: types.ErrorTypeUpstreamFailed,
			})
			return
		}

		removed := deps.Cache.Clear()
		c.JSON(http.StatusOK, types.ClearCacheResponse{
			Message: fmt.Sprintf("Cache cleared (%d entries removed)", removed),
			Removed: removed,
		})
	}
}
