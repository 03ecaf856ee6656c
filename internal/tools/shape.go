package tools

import (
	"time"

	"github.com/ThatOtherAndrew/discord-search-mcp/internal/discord"

	"github.com/bwmarrin/discordgo"
)

// Content preview budgets, in runes. The full content of a directly fetched
// message is never truncated; everything listed in bulk is.
const (
	previewFullEmbed   = 300
	previewContent     = 300
	previewReply       = 200
	previewListEmbed   = 200
	previewSearch      = 200
	previewInlineReply = 100
	previewForwarded   = 200
)

// Author is the compact author form used across all responses.
type Author struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// ReplyTo describes the message a reply points at, with a short preview when
// the referenced message came resolved.
type ReplyTo struct {
	MessageID      string `json:"message_id"`
	ChannelID      string `json:"channel_id"`
	GuildID        string `json:"guild_id,omitempty"`
	ContentPreview string `json:"content_preview,omitempty"`
	Author         string `json:"author,omitempty"`
	JumpURL        string `json:"jump_url,omitempty"`
}

// ThreadSummary describes a thread hanging off a message or listed by the
// thread tools.
type ThreadSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ParentChannelID  string `json:"parent_channel_id,omitempty"`
	MessageCount     int    `json:"message_count"`
	MemberCount      int    `json:"member_count"`
	Archived         *bool  `json:"archived,omitempty"`
	ArchiveTimestamp string `json:"archive_timestamp,omitempty"`
	Locked           *bool  `json:"locked,omitempty"`
}

// AttachmentInfo is attachment metadata; content is never fetched.
type AttachmentInfo struct {
	ID          string `json:"id,omitempty"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
	Size        int    `json:"size"`
}

// EmbedInfo is a pruned embed.
type EmbedInfo struct {
	Type        string `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Image       string `json:"image,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Author      string `json:"author,omitempty"`
	Footer      string `json:"footer,omitempty"`
}

// ReactionInfo summarises one reaction emoji.
type ReactionInfo struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// ForwardedMessage is a pruned message snapshot.
type ForwardedMessage struct {
	Content   string `json:"content,omitempty"`
	Author    string `json:"author,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	GuildID   string `json:"guild_id,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
}

// MessageDetail is the full single-message record returned by get_message.
type MessageDetail struct {
	ID              string             `json:"id"`
	ChannelID       string             `json:"channel_id"`
	Content         string             `json:"content"`
	Author          Author             `json:"author"`
	Timestamp       string             `json:"timestamp"`
	EditedTimestamp string             `json:"edited_timestamp,omitempty"`
	JumpURL         string             `json:"jump_url"`
	ReplyTo         *ReplyTo           `json:"reply_to,omitempty"`
	Thread          *ThreadSummary     `json:"thread,omitempty"`
	Forwarded       []ForwardedMessage `json:"forwarded_messages,omitempty"`
	Attachments     []AttachmentInfo   `json:"attachments,omitempty"`
	Embeds          []EmbedInfo        `json:"embeds,omitempty"`
	Reactions       []ReactionInfo     `json:"reactions,omitempty"`
}

// HistoryMessage is the compact per-message form used by get_channel_messages.
type HistoryMessage struct {
	ID             string           `json:"id"`
	Content        string           `json:"content"`
	Author         Author           `json:"author"`
	Timestamp      string           `json:"timestamp"`
	JumpURL        string           `json:"jump_url"`
	ReplyTo        *ReplyTo         `json:"reply_to"`
	Thread         *ThreadSummary   `json:"thread"`
	ForwardedCount int              `json:"forwarded_count"`
	Embeds         []EmbedInfo      `json:"embeds"`
	Attachments    []AttachmentInfo `json:"attachments"`
	ReactionCount  int              `json:"reaction_count"`
}

// SearchHit is the compact per-message form used by search_guild.
type SearchHit struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	Content   string `json:"content"`
	Author    Author `json:"author"`
	Timestamp string `json:"timestamp"`
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// displayName prefers the user's global display name over the username.
func displayName(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// shapeMessageDetail builds the full record for a directly fetched message.
// guildID locates the message for jump URLs; empty means a DM.
func shapeMessageDetail(msg *discordgo.Message, guildID string) *MessageDetail {
	detail := &MessageDetail{
		ID:        msg.ID,
		ChannelID: msg.ChannelID,
		Content:   msg.Content,
		Author: Author{
			ID:          authorID(msg),
			Name:        authorUsername(msg),
			DisplayName: displayName(msg.Author),
		},
		Timestamp: formatTime(msg.Timestamp),
		JumpURL:   discord.JumpURL(guildID, msg.ChannelID, msg.ID),
	}
	if msg.EditedTimestamp != nil {
		detail.EditedTimestamp = formatTime(*msg.EditedTimestamp)
	}

	detail.ReplyTo = shapeReplyTo(msg, previewReply, true)
	detail.Thread = shapeStartedThread(msg.Thread)
	detail.Forwarded = shapeForwarded(msg.MessageSnapshots)

	for _, att := range msg.Attachments {
		detail.Attachments = append(detail.Attachments, AttachmentInfo{
			ID:          att.ID,
			Filename:    att.Filename,
			URL:         att.URL,
			ContentType: att.ContentType,
			Size:        att.Size,
		})
	}

	detail.Embeds = shapeEmbeds(msg.Embeds, previewFullEmbed, true)

	for _, r := range msg.Reactions {
		if r == nil || r.Emoji == nil {
			continue
		}
		detail.Reactions = append(detail.Reactions, ReactionInfo{
			Emoji: r.Emoji.APIName(),
			Count: r.Count,
		})
	}

	return detail
}

// shapeHistoryMessage builds the compact record for history listings.
func shapeHistoryMessage(msg *discordgo.Message, guildID string) *HistoryMessage {
	item := &HistoryMessage{
		ID:      msg.ID,
		Content: truncate(msg.Content, previewContent),
		Author: Author{
			ID:          authorID(msg),
			DisplayName: displayName(msg.Author),
		},
		Timestamp:      formatTime(msg.Timestamp),
		JumpURL:        discord.JumpURL(guildID, msg.ChannelID, msg.ID),
		ReplyTo:        shapeReplyTo(msg, previewInlineReply, false),
		Thread:         shapeStartedThread(msg.Thread),
		ForwardedCount: len(msg.MessageSnapshots),
		Embeds:         shapeEmbeds(msg.Embeds, previewListEmbed, false),
		ReactionCount:  len(msg.Reactions),
	}

	if item.Embeds == nil {
		item.Embeds = []EmbedInfo{}
	}
	item.Attachments = []AttachmentInfo{}
	for _, att := range msg.Attachments {
		item.Attachments = append(item.Attachments, AttachmentInfo{
			Filename:    att.Filename,
			URL:         att.URL,
			ContentType: att.ContentType,
			Size:        att.Size,
		})
	}

	return item
}

// shapeSearchHit builds the compact record for search results.
func shapeSearchHit(msg *discordgo.Message) *SearchHit {
	return &SearchHit{
		ID:        msg.ID,
		ChannelID: msg.ChannelID,
		Content:   truncate(msg.Content, previewSearch),
		Author: Author{
			ID:       authorID(msg),
			Username: authorUsername(msg),
		},
		Timestamp: formatTime(msg.Timestamp),
	}
}

func shapeReplyTo(msg *discordgo.Message, previewLen int, withJumpURL bool) *ReplyTo {
	ref := msg.MessageReference
	if ref == nil {
		return nil
	}

	reply := &ReplyTo{
		MessageID: ref.MessageID,
		ChannelID: ref.ChannelID,
		GuildID:   ref.GuildID,
	}

	// The referenced message is only resolved when Discord included it.
	if resolved := msg.ReferencedMessage; resolved != nil {
		reply.ContentPreview = truncate(resolved.Content, previewLen)
		reply.Author = displayName(resolved.Author)
		if withJumpURL {
			reply.JumpURL = discord.JumpURL(ref.GuildID, resolved.ChannelID, resolved.ID)
		}
	}
	return reply
}

func shapeStartedThread(thread *discordgo.Channel) *ThreadSummary {
	if thread == nil {
		return nil
	}
	summary := &ThreadSummary{
		ID:           thread.ID,
		Name:         thread.Name,
		MessageCount: thread.MessageCount,
		MemberCount:  thread.MemberCount,
	}
	if thread.ThreadMetadata != nil {
		archived := thread.ThreadMetadata.Archived
		summary.Archived = &archived
	}
	return summary
}

func shapeForwarded(snapshots []discordgo.MessageSnapshot) []ForwardedMessage {
	var forwarded []ForwardedMessage
	for _, snap := range snapshots {
		if snap.Message == nil {
			continue
		}
		fwd := ForwardedMessage{
			Content:   truncate(snap.Message.Content, previewForwarded),
			Author:    displayName(snap.Message.Author),
			ChannelID: snap.Message.ChannelID,
			GuildID:   snap.Message.GuildID,
		}
		if !snap.Message.Timestamp.IsZero() {
			fwd.Timestamp = formatTime(snap.Message.Timestamp)
		}
		forwarded = append(forwarded, fwd)
	}
	return forwarded
}

func shapeEmbeds(embeds []*discordgo.MessageEmbed, descLen int, withAuthorFooter bool) []EmbedInfo {
	var shaped []EmbedInfo
	for _, embed := range embeds {
		if embed == nil {
			continue
		}
		info := EmbedInfo{
			Type:        string(embed.Type),
			Title:       embed.Title,
			Description: truncate(embed.Description, descLen),
			URL:         embed.URL,
		}
		if embed.Image != nil {
			info.Image = embed.Image.URL
		}
		if embed.Thumbnail != nil {
			info.Thumbnail = embed.Thumbnail.URL
		}
		if withAuthorFooter {
			if embed.Author != nil {
				info.Author = embed.Author.Name
			}
			if embed.Footer != nil {
				info.Footer = embed.Footer.Text
			}
		}
		shaped = append(shaped, info)
	}
	return shaped
}

func authorID(msg *discordgo.Message) string {
	if msg.Author == nil {
		return ""
	}
	return msg.Author.ID
}

func authorUsername(msg *discordgo.Message) string {
	if msg.Author == nil {
		return ""
	}
	return msg.Author.Username
}
