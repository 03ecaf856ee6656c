package tools

import (
	"context"

	apperrors "github.com/ThatOtherAndrew/discord-search-mcp/pkg/errors"

	"github.com/bwmarrin/discordgo"
	"github.com/mark3labs/mcp-go/mcp"
)

// AttachmentResult is the get_attachment response. The URL is fresh because
// the message is re-fetched on every call; Discord signs attachment URLs with
// a 24-hour validity window.
type AttachmentResult struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	Size        int    `json:"size"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Note        string `json:"note"`
}

func getAttachmentTool() mcp.Tool {
	return mcp.NewTool(ToolGetAttachment,
		mcp.WithDescription("Get a fresh URL for a Discord attachment. Attachment URLs expire after 24 hours; this re-fetches the message to get a working one."),
		mcp.WithString("channel_id",
			mcp.Required(),
			mcp.Description("The channel ID containing the message"),
		),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The message ID with the attachment"),
		),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("The filename of the attachment to fetch"),
		),
	)
}

func (e *Executor) handleGetAttachment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := e.session.EnsureReady(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	channelID, err := req.RequireString("channel_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	messageID, err := req.RequireString("message_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := e.session.Message(channelID, messageID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	attachment := findAttachment(msg.Attachments, filename)
	if attachment == nil {
		available := make([]string, 0, len(msg.Attachments))
		for _, att := range msg.Attachments {
			available = append(available, att.Filename)
		}
		return mcp.NewToolResultError(apperrors.NewAttachmentNotFound(filename, available).Error()), nil
	}

	return jsonResult(AttachmentResult{
		URL:         attachment.URL,
		Filename:    attachment.Filename,
		ContentType: attachment.ContentType,
		Size:        attachment.Size,
		Width:       attachment.Width,
		Height:      attachment.Height,
		Note:        "This is a fresh URL that should work for the next 24 hours. Use it directly to view/download.",
	}), nil
}

func findAttachment(attachments []*discordgo.MessageAttachment, filename string) *discordgo.MessageAttachment {
	for _, att := range attachments {
		if att != nil && att.Filename == filename {
			return att
		}
	}
	return nil
}
