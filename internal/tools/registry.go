package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Registration pairs a tool definition with its handler.
type Registration struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// Registrations returns every tool this service exposes.
func (e *Executor) Registrations() []Registration {
	return []Registration{
		{Tool: getGuildInfoTool(), Handler: e.handleGetGuildInfo},
		{Tool: getMessageTool(), Handler: e.handleGetMessage},
		{Tool: getMessageFromURLTool(), Handler: e.handleGetMessageFromURL},
		{Tool: getChannelMessagesTool(), Handler: e.handleGetChannelMessages},
		{Tool: searchGuildTool(), Handler: e.handleSearchGuild},
		{Tool: getActiveThreadsTool(), Handler: e.handleGetActiveThreads},
		{Tool: getArchivedThreadsTool(), Handler: e.handleGetArchivedThreads},
		{Tool: getAttachmentTool(), Handler: e.handleGetAttachment},
	}
}

// Register adds every tool to the MCP server with invocation logging around
// each handler.
func Register(srv *server.MCPServer, e *Executor) {
	for _, reg := range e.Registrations() {
		srv.AddTool(reg.Tool, e.withLogging(reg.Tool.Name, reg.Handler))
	}
}

func (e *Executor) withLogging(name string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("tool", name),
			zap.Duration("duration", time.Since(start)),
		}
		switch {
		case err != nil:
			e.logger.Error("Tool call failed", append(fields, zap.Error(err))...)
		case result != nil && result.IsError:
			e.logger.Warn("Tool call returned error result", fields...)
		default:
			e.logger.Info("Tool call completed", fields...)
		}
		return result, err
	}
}
