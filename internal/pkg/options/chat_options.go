package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ChatOptions tunes the chat loop.
type ChatOptions struct {
	// MaxTurns bounds the number of streaming turns per chat.
	MaxTurns int `json:"max-turns" mapstructure:"max-turns"`

	// EventBuffer is the capacity of the event pipe between the loop and
	// the response writer; it is the backpressure window.
	EventBuffer int `json:"event-buffer" mapstructure:"event-buffer"`
}

func NewChatOptions() *ChatOptions {
	return &ChatOptions{
		MaxTurns:    10,
		EventBuffer: 16,
	}
}

func (o *ChatOptions) Validate() []error {
	var errs []error
	if o.MaxTurns < 1 {
		errs = append(errs, fmt.Errorf("chat.max-turns must be at least 1"))
	}
	if o.EventBuffer < 1 {
		errs = append(errs, fmt.Errorf("chat.event-buffer must be at least 1"))
	}
	return errs
}

func (o *ChatOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.MaxTurns, "chat.max-turns", o.MaxTurns, "Maximum completion turns per chat before the loop fails.")
	fs.IntVar(&o.EventBuffer, "chat.event-buffer", o.EventBuffer, "Buffered events between the chat loop and the response writer.")
}
