package instagram

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/voxtape/transcript-api/api/types"
)

// requestTimeout bounds one pipeline run. Scrape, video download and
// speech-to-text each take their share, so this is the longest window
// in the API.
const requestTimeout = 10 * time.Minute

// Post handles Instagram transcription requests
// @Summary      Transcribe an Instagram post
// @Description  Scrapes the post for its video, downloads the video and transcribes its audio with speech-to-text. Works for posts, reels and IGTV. Results are not cached because post CDN URLs expire quickly.
// @Tags         instagram
// @Accept       json
// @Produce      json
// @Param        request body types.TranscribeRequest true "Instagram post, reel or IGTV URL"
// @Success      200 {object} types.InstagramTranscribeResponse "Transcript with post metadata"
// @Failure      400 {object} types.ErrorResponse "Missing or unrecognizable URL"
// @Failure      404 {object} types.ErrorResponse "Post not found or has no video"
// @Failure      429 {object} types.ErrorResponse "Scraper or transcriber rate limited"
// @Failure      500 {object} types.ErrorResponse "Transcription failed"
// @Failure      504 {object} types.ErrorResponse "Transcription timed out"
// @Router       /api/v1/instagram/transcribe [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TranscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:     "Invalid request format",
				ErrorType: types.ErrorTypeInvalidInput,
			})
			return
		}

		if deps == nil || deps.InstagramService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error:     "Instagram transcription not available",
				ErrorType: types.ErrorTypeUpstreamFailed,
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		result, err := deps.InstagramService.Transcribe(ctx, req.URL)
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				c.JSON(http.StatusGatewayTimeout, types.ErrorResponse{
					Error:     "Transcription timed out",
					ErrorType: types.ErrorTypeUpstreamFailed,
				})
				return
			}

			status, resp := types.FromInstagramError(err)
			c.JSON(status, resp)
			return
		}

		c.JSON(http.StatusOK, types.FromInstagramTranscript(result))
	}
}
