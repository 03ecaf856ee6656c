package server

import (
	"context"
	"net/http"

	"github.com/ThatOtherAndrew/discord-search-mcp/pkg/config"

	"github.com/gin-gonic/gin"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// ReadyChecker reports whether the backing Discord session is up. It feeds
// the health endpoint only; tool calls do their own readiness check.
type ReadyChecker interface {
	IsReady() bool
}

// Server hosts the MCP streamable-HTTP endpoint and a health check behind a
// single gin router.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// New builds the router and wires the MCP handler at /mcp.
func New(cfg *config.Config, mcpServer *mcpserver.MCPServer, ready ReadyChecker, log *zap.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger(log))
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"discord_ready": ready.IsReady(),
		})
	})

	streamable := mcpserver.NewStreamableHTTPServer(mcpServer)
	router.Any("/mcp", gin.WrapH(streamable))

	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.Addr(),
			Handler: router,
		},
		logger: log,
	}
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("Starting MCP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
