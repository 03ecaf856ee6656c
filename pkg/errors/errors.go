package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeDiscord represents Discord-related errors
	ErrorTypeDiscord ErrorType = "discord"
	// ErrorTypeTool represents tool argument/execution errors
	ErrorTypeTool ErrorType = "tool"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Discord Errors

// ErrSessionNotReady is returned when a tool is called before the gateway
// session has received READY.
var ErrSessionNotReady = NewBaseError(
	ErrorTypeDiscord,
	"Discord client is not ready. Please wait 5 seconds and try again.",
	nil,
)

// ErrChannelNotFound is returned when a Discord channel cannot be found
type ErrChannelNotFound struct {
	*BaseError
	ChannelID string
}

func NewChannelNotFound(channelID string) *ErrChannelNotFound {
	return &ErrChannelNotFound{
		BaseError: NewBaseError(ErrorTypeDiscord, fmt.Sprintf("channel %s not found", channelID), nil),
		ChannelID: channelID,
	}
}

// ErrMessageNotFound is returned when a message cannot be found in a channel
type ErrMessageNotFound struct {
	*BaseError
	ChannelID string
	MessageID string
}

func NewMessageNotFound(channelID, messageID string, err error) *ErrMessageNotFound {
	return &ErrMessageNotFound{
		BaseError: NewBaseError(
			ErrorTypeDiscord,
			fmt.Sprintf("message %s not found in channel %s", messageID, channelID),
			err,
		),
		ChannelID: channelID,
		MessageID: messageID,
	}
}

// ErrNotTextChannel is returned when a channel cannot carry messages
type ErrNotTextChannel struct {
	*BaseError
	ChannelID string
}

func NewNotTextChannel(channelID string) *ErrNotTextChannel {
	return &ErrNotTextChannel{
		BaseError: NewBaseError(ErrorTypeDiscord, fmt.Sprintf("channel %s is not a text channel", channelID), nil),
		ChannelID: channelID,
	}
}

// Tool Errors

// ErrInvalidMessageURL is returned for URLs that are not Discord message links
type ErrInvalidMessageURL struct {
	*BaseError
	URL string
}

func NewInvalidMessageURL(url string) *ErrInvalidMessageURL {
	return &ErrInvalidMessageURL{
		BaseError: NewBaseError(ErrorTypeTool, fmt.Sprintf("invalid Discord message URL: %s", url), nil),
		URL:       url,
	}
}

// ErrAttachmentNotFound is returned when a message has no attachment with the
// requested filename
type ErrAttachmentNotFound struct {
	*BaseError
	Filename  string
	Available []string
}

func NewAttachmentNotFound(filename string, available []string) *ErrAttachmentNotFound {
	return &ErrAttachmentNotFound{
		BaseError: NewBaseError(
			ErrorTypeTool,
			fmt.Sprintf("attachment %q not found. Available: %v", filename, available),
			nil,
		),
		Filename:  filename,
		Available: available,
	}
}
