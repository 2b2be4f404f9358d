package v1

import (
	"time"

	"github.com/moralisweb3/docschat/internal/docschat/service/chat/entity"
)

// ChatRequest is the request body for POST /v1/chat.
type ChatRequest struct {
	// Messages is the conversation to continue, kept in order. Required
	// and must not be empty.
	Messages []ChatMessage `json:"messages" binding:"required"`
}

// ChatMessage is a single inbound message.
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Name    string `json:"name,omitempty"`
	Content string `json:"content"`
}

// ToEntity converts the wire message to the domain message.
func (m ChatMessage) ToEntity() *entity.Message {
	return &entity.Message{
		Role:    entity.Role(m.Role),
		Name:    m.Name,
		Content: m.Content,
	}
}

// TranscriptResponse is the response for GET /v1/transcripts/:id.
type TranscriptResponse struct {
	ID        string                   `json:"id"`
	Messages  []*entity.Message        `json:"messages"`
	Reply     string                   `json:"reply"`
	ToolCalls []*entity.ToolInvocation `json:"tool_calls,omitempty"`
	Turns     int                      `json:"turns"`
	CreatedAt string                   `json:"created_at"`
}

const timeFormat = time.RFC3339

// FormatTime formats a time value for API responses.
func FormatTime(t time.Time) string {
	return t.Format(timeFormat)
}
