package tools

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/mark3labs/mcp-go/mcp"
)

// GuildChannel is the per-channel form in guild summaries.
type GuildChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// GuildMember is the per-member form in guild summaries.
type GuildMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// GuildSummary describes one guild the bot is a member of.
type GuildSummary struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	MemberCount  int            `json:"member_count"`
	ChannelCount int            `json:"channel_count"`
	Channels     []GuildChannel `json:"channels,omitempty"`
	Members      []GuildMember  `json:"members,omitempty"`
}

// GuildInfoResult is the get_guild_info response.
type GuildInfoResult struct {
	Guilds []GuildSummary `json:"guilds"`
}

func getGuildInfoTool() mcp.Tool {
	return mcp.NewTool(ToolGetGuildInfo,
		mcp.WithDescription("Get a list of all Discord guilds (servers) the bot can see, with member and channel counts."),
		mcp.WithBoolean("include_members",
			mcp.Description("Include the member list (expensive, default false)"),
		),
		mcp.WithBoolean("include_channels",
			mcp.Description("Include the channel list (default true)"),
		),
	)
}

func (e *Executor) handleGetGuildInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := e.session.EnsureReady(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	includeMembers := req.GetBool("include_members", false)
	includeChannels := req.GetBool("include_channels", true)

	result := GuildInfoResult{Guilds: []GuildSummary{}}
	for _, guild := range e.session.Guilds() {
		summary := GuildSummary{
			ID:           guild.ID,
			Name:         guild.Name,
			Description:  guild.Description,
			MemberCount:  guild.MemberCount,
			ChannelCount: len(guild.Channels),
		}

		if includeChannels {
			for _, ch := range guild.Channels {
				summary.Channels = append(summary.Channels, GuildChannel{
					ID:   ch.ID,
					Name: ch.Name,
					Type: channelTypeName(ch.Type),
				})
			}
		}

		if includeMembers {
			for _, member := range guild.Members {
				if member.User == nil {
					continue
				}
				name := member.Nick
				if name == "" {
					name = displayName(member.User)
				}
				summary.Members = append(summary.Members, GuildMember{
					ID:          member.User.ID,
					Name:        member.User.Username,
					DisplayName: name,
				})
			}
		}

		result.Guilds = append(result.Guilds, summary)
	}

	return jsonResult(result), nil
}

// channelTypeName renders a channel type the way callers see it in the
// Discord UI rather than as a bare enum number.
func channelTypeName(t discordgo.ChannelType) string {
	switch t {
	case discordgo.ChannelTypeGuildText:
		return "text"
	case discordgo.ChannelTypeDM:
		return "dm"
	case discordgo.ChannelTypeGuildVoice:
		return "voice"
	case discordgo.ChannelTypeGroupDM:
		return "group_dm"
	case discordgo.ChannelTypeGuildCategory:
		return "category"
	case discordgo.ChannelTypeGuildNews:
		return "news"
	case discordgo.ChannelTypeGuildStore:
		return "store"
	case discordgo.ChannelTypeGuildNewsThread:
		return "news_thread"
	case discordgo.ChannelTypeGuildPublicThread:
		return "public_thread"
	case discordgo.ChannelTypeGuildPrivateThread:
		return "private_thread"
	case discordgo.ChannelTypeGuildStageVoice:
		return "stage_voice"
	case discordgo.ChannelTypeGuildForum:
		return "forum"
	case discordgo.ChannelTypeGuildMedia:
		return "media"
	default:
		return "unknown"
	}
}
