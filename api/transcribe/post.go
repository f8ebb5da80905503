package transcribe

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/voxtape/transcript-api/api/types"
)

// requestTimeout bounds one acquisition end to end. Generous because
// the speech fallback may download audio before transcribing it.
const requestTimeout = 5 * time.Minute

// Post handles YouTube transcription requests
// @Summary      Transcribe a YouTube video
// @Description  Extracts the video identifier from the submitted URL, fetches captions for it (preferring English, then any human-authored track) and returns the transcript as one string. Falls back to speech-to-text when the video has no captions and a speech provider is configured. Results are cached for 24 hours.
// @Tags         transcribe
// @Accept       json
// @Produce      json
// @Param        request body types.TranscribeRequest true "Video URL or bare 11-character video ID"
// @Success      200 {object} types.TranscribeResponse "Transcript"
// @Failure      400 {object} types.ErrorResponse "Missing or unrecognizable URL"
// @Failure      404 {object} types.ErrorResponse "No captions available or video unavailable"
// @Failure      429 {object} types.ErrorResponse "Upstream blocked the request"
// @Failure      500 {object} types.ErrorResponse "Transcription failed"
// @Failure      504 {object} types.ErrorResponse "Transcription timed out"
// @Router       /api/v1/transcribe [post]
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

		if deps == nil || deps.TranscriptService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error:     "Transcription service not available",
				ErrorType: types.ErrorTypeUpstreamFailed,
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		result, err := deps.TranscriptService.Acquire(ctx, req.URL)
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				c.JSON(http.StatusGatewayTimeout, types.ErrorResponse{
					Error:     "Transcription timed out",
					ErrorType: types.ErrorTypeUpstreamFailed,
				})
				return
			}

			status, resp := types.FromError(err)
			c.JSON(status, resp)
			return
		}

		c.JSON(http.StatusOK, types.FromTranscript(result))
	}
}
