package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// SearchResult is the search_guild response.
type SearchResult struct {
	TotalResults int          `json:"total_results"`
	MessageCount int          `json:"message_count"`
	Messages     []*SearchHit `json:"messages"`
}

func searchGuildTool() mcp.Tool {
	return mcp.NewTool(ToolSearchGuild,
		mcp.WithDescription("Search for messages in a guild by text content."),
		mcp.WithString("guild_id",
			mcp.Required(),
			mcp.Description("The guild to search in"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Text to search for"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results to return (1-25, default 10)"),
		),
	)
}

func (e *Executor) handleSearchGuild(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := e.session.EnsureReady(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	guildID, err := req.RequireString("guild_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := clampLimit(req.GetInt("limit", 10), 1, 25)

	results, err := e.session.SearchMessages(guildID, content, limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	hits := results.Hits()
	shaped := make([]*SearchHit, 0, len(hits))
	for _, msg := range hits {
		shaped = append(shaped, shapeSearchHit(msg))
	}

	e.logger.Debug("Shaped search results",
		zap.String("guild_id", guildID),
		zap.Int("total_results", results.TotalResults),
		zap.Int("returned", len(shaped)),
	)
	return jsonResult(SearchResult{
		TotalResults: results.TotalResults,
		MessageCount: len(shaped),
		Messages:     shaped,
	}), nil
}
