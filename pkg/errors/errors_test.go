package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseErrorFormat(t *testing.T) {
	err := NewBaseError(ErrorTypeTool, "something broke", nil)
	assert.Equal(t, "[tool] something broke", err.Error())

	wrapped := NewBaseError(ErrorTypeDiscord, "fetch failed", fmt.Errorf("HTTP 403"))
	assert.Equal(t, "[discord] fetch failed: HTTP 403", wrapped.Error())
}

func TestBaseErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := NewBaseError(ErrorTypeDiscord, "outer", inner)

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, inner, stderrors.Unwrap(err))
}

func TestSessionNotReadyMessage(t *testing.T) {
	// The message doubles as caller guidance, so its wording matters.
	assert.Contains(t, ErrSessionNotReady.Error(), "not ready")
	assert.Contains(t, ErrSessionNotReady.Error(), "try again")
}

func TestChannelNotFound(t *testing.T) {
	err := NewChannelNotFound("222")
	assert.Equal(t, "222", err.ChannelID)
	assert.Contains(t, err.Error(), "channel 222 not found")
}

func TestMessageNotFoundWrapping(t *testing.T) {
	inner := fmt.Errorf("HTTP 404 Not Found")
	err := NewMessageNotFound("222", "333", inner)

	assert.Equal(t, "222", err.ChannelID)
	assert.Equal(t, "333", err.MessageID)
	assert.Contains(t, err.Error(), "message 333 not found in channel 222")
	assert.ErrorIs(t, err, inner)
}

func TestNotTextChannel(t *testing.T) {
	err := NewNotTextChannel("222")
	assert.Contains(t, err.Error(), "not a text channel")
}

func TestInvalidMessageURL(t *testing.T) {
	err := NewInvalidMessageURL("https://example.com/x")
	assert.Contains(t, err.Error(), "invalid Discord message URL: https://example.com/x")
}

func TestAttachmentNotFound(t *testing.T) {
	err := NewAttachmentNotFound("missing.txt", []string{"a.png", "b.pdf"})

	require.Equal(t, []string{"a.png", "b.pdf"}, err.Available)
	assert.Contains(t, err.Error(), `"missing.txt" not found`)
	assert.Contains(t, err.Error(), "a.png")
	assert.Contains(t, err.Error(), "b.pdf")
}
