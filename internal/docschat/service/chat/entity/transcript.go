package entity

import (
	"time"
)

// Transcript is the persisted record of one completed chat exchange:
// the (deduplicated) inbound conversation, the text the loop relayed, and
// every tool invocation made along the way.
type Transcript struct {
	ID        string            `json:"id"`
	Messages  []*Message        `json:"messages"`
	Reply     string            `json:"reply"`
	ToolCalls []*ToolInvocation `json:"tool_calls,omitempty"`
	Turns     int               `json:"turns"`
	CreatedAt time.Time         `json:"created_at"`
}
