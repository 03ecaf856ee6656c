package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSearchResults(t *testing.T) {
	// The search endpoint returns hit groups: the first message in each group
	// is the match, the rest is conversation context.
	body := []byte(`{
		"total_results": 42,
		"messages": [
			[
				{"id": "1", "channel_id": "10", "content": "first hit", "author": {"id": "100", "username": "alice"}},
				{"id": "2", "channel_id": "10", "content": "context"}
			],
			[
				{"id": "3", "channel_id": "11", "content": "second hit", "author": {"id": "101", "username": "bob"}}
			]
		]
	}`)

	results, err := DecodeSearchResults(body)
	require.NoError(t, err)

	assert.Equal(t, 42, results.TotalResults)
	require.Len(t, results.Messages, 2)

	hits := results.Hits()
	require.Len(t, hits, 2)
	assert.Equal(t, "1", hits[0].ID)
	assert.Equal(t, "first hit", hits[0].Content)
	assert.Equal(t, "alice", hits[0].Author.Username)
	assert.Equal(t, "3", hits[1].ID)
}

func TestDecodeSearchResultsEmpty(t *testing.T) {
	results, err := DecodeSearchResults([]byte(`{"total_results": 0, "messages": []}`))
	require.NoError(t, err)
	assert.Equal(t, 0, results.TotalResults)
	assert.Empty(t, results.Hits())
}

func TestDecodeSearchResultsMalformed(t *testing.T) {
	_, err := DecodeSearchResults([]byte(`{"messages": "nope"}`))
	assert.Error(t, err)
}

func TestHitsSkipsEmptyGroups(t *testing.T) {
	results := &SearchResults{
		TotalResults: 2,
		Messages: [][]*discordgo.Message{
			{},
			{nil},
			{{ID: "7"}},
		},
	}

	hits := results.Hits()
	require.Len(t, hits, 1)
	assert.Equal(t, "7", hits[0].ID)
}

func TestCanCarryMessages(t *testing.T) {
	tests := []struct {
		name string
		typ  discordgo.ChannelType
		want bool
	}{
		{"text", discordgo.ChannelTypeGuildText, true},
		{"dm", discordgo.ChannelTypeDM, true},
		{"voice", discordgo.ChannelTypeGuildVoice, true},
		{"news", discordgo.ChannelTypeGuildNews, true},
		{"public thread", discordgo.ChannelTypeGuildPublicThread, true},
		{"private thread", discordgo.ChannelTypeGuildPrivateThread, true},
		{"category", discordgo.ChannelTypeGuildCategory, false},
		{"forum", discordgo.ChannelTypeGuildForum, false},
		{"media", discordgo.ChannelTypeGuildMedia, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCarryMessages(tt.typ))
		})
	}
}
