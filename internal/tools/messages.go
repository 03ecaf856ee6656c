package tools

import (
	"context"
	"fmt"

	"github.com/ThatOtherAndrew/discord-search-mcp/internal/discord"

	"github.com/bwmarrin/discordgo"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// ChannelMessagesResult is the get_channel_messages response.
type ChannelMessagesResult struct {
	ChannelID    string            `json:"channel_id"`
	ChannelName  string            `json:"channel_name"`
	MessageCount int               `json:"message_count"`
	Messages     []*HistoryMessage `json:"messages"`
}

func getMessageTool() mcp.Tool {
	return mcp.NewTool(ToolGetMessage,
		mcp.WithDescription("Fetch a specific message by channel and message ID, including content, author, reply references, embeds, attachments and thread info."),
		mcp.WithString("channel_id",
			mcp.Required(),
			mcp.Description("The channel ID containing the message"),
		),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The message ID to fetch"),
		),
	)
}

func getMessageFromURLTool() mcp.Tool {
	return mcp.NewTool(ToolGetMessageFromURL,
		mcp.WithDescription("Fetch a Discord message from its URL (e.g. https://discord.com/channels/123/456/789)."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Discord message URL"),
		),
	)
}

func getChannelMessagesTool() mcp.Tool {
	return mcp.NewTool(ToolGetChannelMessages,
		mcp.WithDescription("Get messages from a Discord channel: the latest ones, or those around, before or after a reference message."),
		mcp.WithString("channel_id",
			mcp.Required(),
			mcp.Description("The channel to fetch messages from"),
		),
		mcp.WithString("message_id",
			mcp.Description("Reference message ID (required for 'around', 'before' and 'after')"),
		),
		mcp.WithString("direction",
			mcp.Description("Where to fetch messages - 'latest', 'around', 'before', or 'after' (default 'latest')"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of messages to fetch (1-100, default 25)"),
		),
	)
}

func (e *Executor) handleGetMessage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	channelID, err := req.RequireString("channel_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	messageID, err := req.RequireString("message_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	detail, err := e.fetchMessageDetail(channelID, messageID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(detail), nil
}

func (e *Executor) handleGetMessageFromURL(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ref, err := discord.ParseMessageURL(url)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	detail, err := e.fetchMessageDetail(ref.ChannelID, ref.MessageID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(detail), nil
}

func (e *Executor) handleGetChannelMessages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := e.session.EnsureReady(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	channelID, err := req.RequireString("channel_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	messageID := req.GetString("message_id", "")
	direction := req.GetString("direction", "latest")
	limit := clampLimit(req.GetInt("limit", 25), 1, 100)

	var before, after, around string
	switch direction {
	case "latest":
		// No reference point; discordgo returns the newest messages.
	case "before":
		before = messageID
	case "after":
		after = messageID
	case "around":
		around = messageID
	default:
		return mcp.NewToolResultError("direction must be 'latest', 'around', 'before', or 'after'"), nil
	}
	if direction != "latest" && messageID == "" {
		return mcp.NewToolResultError(fmt.Sprintf("message_id is required for direction %q", direction)), nil
	}

	channel, err := e.session.Channel(channelID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	messages, err := e.session.History(channelID, limit, before, after, around)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := ChannelMessagesResult{
		ChannelID:    channelID,
		ChannelName:  channelName(channel),
		MessageCount: len(messages),
		Messages:     []*HistoryMessage{},
	}
	for _, msg := range messages {
		result.Messages = append(result.Messages, shapeHistoryMessage(msg, channel.GuildID))
	}

	e.logger.Debug("Shaped channel history",
		zap.String("channel_id", channelID),
		zap.String("direction", direction),
		zap.Int("message_count", len(messages)),
	)
	return jsonResult(result), nil
}

// fetchMessageDetail is the shared path behind get_message and
// get_message_from_url.
func (e *Executor) fetchMessageDetail(channelID, messageID string) (*MessageDetail, error) {
	if err := e.session.EnsureReady(); err != nil {
		return nil, err
	}

	channel, err := e.session.Channel(channelID)
	if err != nil {
		return nil, err
	}

	msg, err := e.session.Message(channelID, messageID)
	if err != nil {
		return nil, err
	}

	return shapeMessageDetail(msg, channel.GuildID), nil
}

// channelName falls back to the ID for channels without a name (DMs).
func channelName(ch *discordgo.Channel) string {
	if ch.Name != "" {
		return ch.Name
	}
	return ch.ID
}
