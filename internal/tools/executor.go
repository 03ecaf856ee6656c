package tools

import (
	"encoding/json"
	"fmt"

	"github.com/ThatOtherAndrew/discord-search-mcp/internal/discord"

	"github.com/bwmarrin/discordgo"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// Tool names as exposed over MCP.
const (
	ToolGetGuildInfo       = "get_guild_info"
	ToolGetMessage         = "get_message"
	ToolGetMessageFromURL  = "get_message_from_url"
	ToolGetChannelMessages = "get_channel_messages"
	ToolSearchGuild        = "search_guild"
	ToolGetActiveThreads   = "get_active_threads"
	ToolGetArchivedThreads = "get_archived_threads"
	ToolGetAttachment      = "get_attachment"
)

// Session is the slice of the Discord client the tools need. *discord.Client
// satisfies it; tests substitute their own.
type Session interface {
	EnsureReady() error
	Guilds() []*discordgo.Guild
	Channel(channelID string) (*discordgo.Channel, error)
	Message(channelID, messageID string) (*discordgo.Message, error)
	History(channelID string, limit int, before, after, around string) ([]*discordgo.Message, error)
	ActiveThreads(guildID string) (*discordgo.ThreadsList, error)
	ArchivedThreads(channelID string, public bool, limit int) (*discordgo.ThreadsList, error)
	SearchMessages(guildID, content string, limit int) (*discord.SearchResults, error)
}

// Executor holds the dependencies shared by all tool handlers.
type Executor struct {
	session Session
	logger  *zap.Logger
}

// NewExecutor creates an executor over a Discord session.
func NewExecutor(session Session, logger *zap.Logger) *Executor {
	return &Executor{
		session: session,
		logger:  logger,
	}
}

// jsonResult encodes v as compact JSON text content.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// clampLimit bounds a caller-supplied limit to [lo, hi].
func clampLimit(limit, lo, hi int) int {
	if limit < lo {
		return lo
	}
	if limit > hi {
		return hi
	}
	return limit
}
