package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ThatOtherAndrew/discord-search-mcp/pkg/config"

	"github.com/gin-gonic/gin"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticReady bool

func (s staticReady) IsReady() bool { return bool(s) }

func newTestServer(t *testing.T, ready bool) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Host:                "127.0.0.1",
		Port:                "0",
		Env:                 "development",
		DiscordToken:        "t",
		ReadyTimeoutSeconds: 1,
	}
	mcpServer := mcpserver.NewMCPServer("test", "0.0.0")
	return New(cfg, mcpServer, staticReady(ready), zap.NewNop())
}

func TestHealthEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		ready     bool
		wantReady bool
	}{
		{"discord ready", true, true},
		{"discord not ready", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.ready)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			srv.httpServer.Handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Status       string `json:"status"`
				DiscordReady bool   `json:"discord_ready"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "ok", body.Status)
			assert.Equal(t, tt.wantReady, body.DiscordReady)
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, true)

	t.Run("generated when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		srv.httpServer.Handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("caller value preserved", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "caller-id")
		srv.httpServer.Handler.ServeHTTP(rec, req)

		assert.Equal(t, "caller-id", rec.Header().Get("X-Request-ID"))
	})
}

func TestUnknownRouteIs404(t *testing.T) {
	srv := newTestServer(t, true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
