package discord

import (
	"regexp"

	apperrors "github.com/ThatOtherAndrew/discord-search-mcp/pkg/errors"
)

// MessageRef identifies a message by its location. GuildID is empty for
// direct messages (the "@me" URL form).
type MessageRef struct {
	GuildID   string
	ChannelID string
	MessageID string
}

// Matches the canonical, app, PTB and canary hosts.
var messageURLPattern = regexp.MustCompile(
	`^https?://(?:ptb\.|canary\.)?discord(?:app)?\.com/channels/(\d+|@me)/(\d+)/(\d+)`,
)

// ParseMessageURL extracts guild, channel and message IDs from a Discord
// message link.
func ParseMessageURL(url string) (*MessageRef, error) {
	m := messageURLPattern.FindStringSubmatch(url)
	if m == nil {
		return nil, apperrors.NewInvalidMessageURL(url)
	}

	ref := &MessageRef{
		ChannelID: m[2],
		MessageID: m[3],
	}
	if m[1] != "@me" {
		ref.GuildID = m[1]
	}
	return ref, nil
}

// JumpURL builds the canonical link to a message. An empty guildID produces
// the direct-message form.
func JumpURL(guildID, channelID, messageID string) string {
	if guildID == "" {
		guildID = "@me"
	}
	return "https://discord.com/channels/" + guildID + "/" + channelID + "/" + messageID
}
