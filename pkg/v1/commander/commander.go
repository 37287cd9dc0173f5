package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// ParseCommand is a command to parse single feed. TemplateID and StoreID
// are optional and only stamp persisted parameters.
type ParseCommand struct {
	FeedURL    string `json:"feedUrl"`
	TemplateID string `json:"templateId,omitempty"`
	StoreID    string `json:"storeId,omitempty"`
}

// ParseCommander sends parse commands.
type ParseCommander struct {
	sender Sender
}

// NewParseCommander returns new ParseCommander using provided sender for sending messages.
func NewParseCommander(sender Sender) ParseCommander {
	return ParseCommander{
		sender: sender,
	}
}

// SendParseCommand sends provided parse command.
func (c ParseCommander) SendParseCommand(ctx context.Context, cmd ParseCommand) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal parse command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
