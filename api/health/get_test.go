package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxtape/transcript-api/api/types"
	instagramService "github.com/voxtape/transcript-api/internal/services/instagram"
	"github.com/voxtape/transcript-api/internal/services/transcripts"
)

type noopPipeline struct{}

func (noopPipeline) Transcribe(ctx context.Context, rawURL string) (*instagramService.Result, error) {
	return &instagramService.Result{}, nil
}

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		setupDeps     func() *types.Dependencies
		checkResponse func(*testing.T, map[string]interface{})
	}{
		{
			name: "reports cache size",
			setupDeps: func() *types.Dependencies {
				store := transcripts.NewCache(time.Hour)
				store.Put("dQw4w9WgXcQ", transcripts.Result{Transcript: "one"})
				store.Put("aaa11BBB22c", transcripts.Result{Transcript: "two"})
				return &types.Dependencies{Cache: store}
			},
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, float64(2), resp["cache_size"])
			},
		},
		{
			name: "reports configured providers",
			setupDeps: func() *types.Dependencies {
				return &types.Dependencies{
					Cache:            transcripts.NewCache(time.Hour),
					InstagramService: noopPipeline{},
					SpeechEnabled:    true,
				}
			},
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				providers, ok := resp["providers"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, true, providers["speech"])
				assert.Equal(t, true, providers["instagram"])
			},
		},
		{
			name: "captions only deployment",
			setupDeps: func() *types.Dependencies {
				return &types.Dependencies{Cache: transcripts.NewCache(time.Hour)}
			},
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, float64(0), resp["cache_size"])
				providers, ok := resp["providers"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, false, providers["speech"])
				assert.Equal(t, false, providers["instagram"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			handler := Get(tt.setupDeps())
			handler(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			assert.Equal(t, "healthy", response["status"])

			// Timestamp must be well formed RFC3339
			ts, ok := response["timestamp"].(string)
			require.True(t, ok)
			_, err := time.Parse(time.RFC3339, ts)
			assert.NoError(t, err)

			tt.checkResponse(t, response)
		})
	}
}
