package tools

import (
	"context"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
)

// ActiveThreadsResult is the get_active_threads response.
type ActiveThreadsResult struct {
	GuildID            string           `json:"guild_id"`
	TotalActiveThreads int              `json:"total_active_threads"`
	ReturnedCount      int              `json:"returned_count"`
	Note               string           `json:"note"`
	Threads            []*ThreadSummary `json:"threads"`
}

// ArchivedThreadsResult is the get_archived_threads response.
type ArchivedThreadsResult struct {
	ChannelID   string           `json:"channel_id"`
	ThreadType  string           `json:"thread_type"`
	ThreadCount int              `json:"thread_count"`
	HasMore     bool             `json:"has_more"`
	Threads     []*ThreadSummary `json:"threads"`
}

func getActiveThreadsTool() mcp.Tool {
	return mcp.NewTool(ToolGetActiveThreads,
		mcp.WithDescription("Get active threads in a guild, sorted by message count so the busiest threads come first."),
		mcp.WithString("guild_id",
			mcp.Required(),
			mcp.Description("The guild to fetch active threads from"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of threads to return (1-100, default 10)"),
		),
	)
}

func getArchivedThreadsTool() mcp.Tool {
	return mcp.NewTool(ToolGetArchivedThreads,
		mcp.WithDescription("Get archived threads from a channel."),
		mcp.WithString("channel_id",
			mcp.Required(),
			mcp.Description("The channel to fetch archived threads from"),
		),
		mcp.WithBoolean("public",
			mcp.Description("Whether to fetch public (true) or private (false) archived threads (default true)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of threads to fetch (2-100, default 10)"),
		),
	)
}

func (e *Executor) handleGetActiveThreads(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := e.session.EnsureReady(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	guildID, err := req.RequireString("guild_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := clampLimit(req.GetInt("limit", 10), 1, 100)

	list, err := e.session.ActiveThreads(guildID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	threads := make([]*ThreadSummary, 0, len(list.Threads))
	for _, t := range list.Threads {
		if t == nil {
			continue
		}
		threads = append(threads, &ThreadSummary{
			ID:              t.ID,
			Name:            t.Name,
			ParentChannelID: t.ParentID,
			MessageCount:    t.MessageCount,
			MemberCount:     t.MemberCount,
		})
	}

	total := len(threads)
	// Busiest threads first, then truncate.
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].MessageCount > threads[j].MessageCount
	})
	if len(threads) > limit {
		threads = threads[:limit]
	}

	return jsonResult(ActiveThreadsResult{
		GuildID:            guildID,
		TotalActiveThreads: total,
		ReturnedCount:      len(threads),
		Note: fmt.Sprintf(
			"Showing %d of %d active threads (sorted by activity). Increase limit parameter to see more.",
			len(threads), total,
		),
		Threads: threads,
	}), nil
}

func (e *Executor) handleGetArchivedThreads(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := e.session.EnsureReady(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	channelID, err := req.RequireString("channel_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	public := req.GetBool("public", true)
	limit := clampLimit(req.GetInt("limit", 10), 2, 100)

	list, err := e.session.ArchivedThreads(channelID, public, limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	threadType := "public"
	if !public {
		threadType = "private"
	}

	threads := make([]*ThreadSummary, 0, len(list.Threads))
	for _, t := range list.Threads {
		if t == nil {
			continue
		}
		summary := &ThreadSummary{
			ID:              t.ID,
			Name:            t.Name,
			ParentChannelID: t.ParentID,
			MessageCount:    t.MessageCount,
			MemberCount:     t.MemberCount,
		}
		if t.ThreadMetadata != nil {
			summary.ArchiveTimestamp = formatTime(t.ThreadMetadata.ArchiveTimestamp)
			locked := t.ThreadMetadata.Locked
			summary.Locked = &locked
		}
		threads = append(threads, summary)
	}

	return jsonResult(ArchivedThreadsResult{
		ChannelID:   channelID,
		ThreadType:  threadType,
		ThreadCount: len(threads),
		HasMore:     list.HasMore,
		Threads:     threads,
	}), nil
}
