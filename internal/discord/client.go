package discord

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/ThatOtherAndrew/discord-search-mcp/pkg/errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Client wraps a discordgo session behind the read-only accessors the tool
// layer needs. All pagination, rate limiting and gateway reconnection is
// owned by discordgo; this type only gates on readiness and maps errors.
type Client struct {
	session *discordgo.Session
	logger  *zap.Logger
	ready   chan struct{}
}

// New creates a client from a bot token. The gateway connection is not opened
// until Open is called.
func New(token string, logger *zap.Logger) (*Client, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Members intent only feeds get_guild_info's optional member listing;
	// everything else works from guilds + message content.
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers

	c := &Client{
		session: session,
		logger:  logger,
		ready:   make(chan struct{}),
	}

	session.AddHandlerOnce(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info("Logged in to Discord",
			zap.String("username", r.User.Username),
			zap.Int("guild_count", len(r.Guilds)),
		)
		close(c.ready)
	})

	return c, nil
}

// Open connects to the gateway and blocks until READY or ctx expires.
func (c *Client) Open(ctx context.Context) error {
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	select {
	case <-c.ready:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for Discord READY: %w", ctx.Err())
	}
}

// Close shuts down the gateway connection.
func (c *Client) Close() error {
	return c.session.Close()
}

// IsReady reports whether the READY event has been received.
func (c *Client) IsReady() bool {
	select {
	case <-c.ready:
		return true
	default:
		return false
	}
}

// EnsureReady fails fast for tool calls that arrive before the session is up.
func (c *Client) EnsureReady() error {
	if !c.IsReady() {
		return apperrors.ErrSessionNotReady
	}
	return nil
}

// Guilds returns the state-cached guild list, populated from GUILD_CREATE.
func (c *Client) Guilds() []*discordgo.Guild {
	return c.session.State.Guilds
}

// Channel resolves a channel from state first, falling back to REST.
func (c *Client) Channel(channelID string) (*discordgo.Channel, error) {
	if ch, err := c.session.State.Channel(channelID); err == nil {
		return ch, nil
	}

	ch, err := c.session.Channel(channelID)
	if err != nil {
		if isRESTErrorCode(err, discordgo.ErrCodeUnknownChannel) {
			return nil, apperrors.NewChannelNotFound(channelID)
		}
		return nil, fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}
	return ch, nil
}

// TextChannel resolves a channel and rejects types that cannot carry messages.
func (c *Client) TextChannel(channelID string) (*discordgo.Channel, error) {
	ch, err := c.Channel(channelID)
	if err != nil {
		return nil, err
	}
	if !CanCarryMessages(ch.Type) {
		return nil, apperrors.NewNotTextChannel(channelID)
	}
	return ch, nil
}

// Message fetches a single message over REST.
func (c *Client) Message(channelID, messageID string) (*discordgo.Message, error) {
	if _, err := c.TextChannel(channelID); err != nil {
		return nil, err
	}

	msg, err := c.session.ChannelMessage(channelID, messageID)
	if err != nil {
		if isRESTErrorCode(err, discordgo.ErrCodeUnknownMessage) {
			return nil, apperrors.NewMessageNotFound(channelID, messageID, err)
		}
		return nil, fmt.Errorf("failed to fetch message %s: %w", messageID, err)
	}
	return msg, nil
}

// History fetches up to limit messages from a channel. At most one of before,
// after and around may be set; all empty means latest.
func (c *Client) History(channelID string, limit int, before, after, around string) ([]*discordgo.Message, error) {
	if _, err := c.TextChannel(channelID); err != nil {
		return nil, err
	}

	msgs, err := c.session.ChannelMessages(channelID, limit, before, after, around)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel history: %w", err)
	}

	c.logger.Debug("Fetched channel history",
		zap.String("channel_id", channelID),
		zap.Int("message_count", len(msgs)),
	)
	return msgs, nil
}

// ActiveThreads lists all active threads in a guild.
func (c *Client) ActiveThreads(guildID string) (*discordgo.ThreadsList, error) {
	list, err := c.session.GuildThreadsActive(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active threads for guild %s: %w", guildID, err)
	}
	return list, nil
}

// ArchivedThreads lists public or private archived threads of a channel.
func (c *Client) ArchivedThreads(channelID string, public bool, limit int) (*discordgo.ThreadsList, error) {
	var (
		list *discordgo.ThreadsList
		err  error
	)
	if public {
		list, err = c.session.ThreadsArchived(channelID, nil, limit)
	} else {
		list, err = c.session.ThreadsPrivateArchived(channelID, nil, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch archived threads for channel %s: %w", channelID, err)
	}
	return list, nil
}

// CanCarryMessages reports whether messages can be fetched from a channel of
// the given type. Containers (categories, forums, media galleries) hold
// channels or threads, never messages themselves.
func CanCarryMessages(t discordgo.ChannelType) bool {
	switch t {
	case discordgo.ChannelTypeGuildCategory,
		discordgo.ChannelTypeGuildStore,
		discordgo.ChannelTypeGuildForum,
		discordgo.ChannelTypeGuildMedia:
		return false
	default:
		return true
	}
}

func isRESTErrorCode(err error, code int) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == code
	}
	return false
}
