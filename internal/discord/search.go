package discord

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// SearchResults is the decoded form of Discord's guild message search
// response. Each entry in Messages is a group of messages where the first
// element is the hit and the rest is surrounding context.
type SearchResults struct {
	TotalResults int                    `json:"total_results"`
	Messages     [][]*discordgo.Message `json:"messages"`
}

// Hits returns the matching message of each result group, skipping empties.
func (r *SearchResults) Hits() []*discordgo.Message {
	hits := make([]*discordgo.Message, 0, len(r.Messages))
	for _, group := range r.Messages {
		if len(group) > 0 && group[0] != nil {
			hits = append(hits, group[0])
		}
	}
	return hits
}

// SearchMessages runs a full-text content search in a guild. discordgo has no
// binding for this route, so it goes through the session's raw request path,
// which still applies auth and rate-limit handling.
func (c *Client) SearchMessages(guildID, content string, limit int) (*SearchResults, error) {
	query := url.Values{}
	query.Set("content", content)
	query.Set("limit", strconv.Itoa(limit))

	endpoint := discordgo.EndpointGuilds + guildID + "/messages/search?" + query.Encode()

	body, err := c.session.Request("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("guild search failed: %w", err)
	}

	results, err := DecodeSearchResults(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Guild search completed",
		zap.String("guild_id", guildID),
		zap.Int("total_results", results.TotalResults),
		zap.Int("returned", len(results.Messages)),
	)
	return results, nil
}

// DecodeSearchResults parses the raw search response body.
func DecodeSearchResults(body []byte) (*SearchResults, error) {
	var results SearchResults
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &results, nil
}
