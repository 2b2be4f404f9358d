package entity

// Role represents the role of a message sender.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleFunction  Role = "function"
)

// Message is a single message in a conversation.
//
// Messages are immutable once appended; ordering is significant and is
// preserved throughout the chat loop. A function-role message always
// carries the Name of the tool that produced it and Content equal to the
// serialized tool result.
type Message struct {
	// Role is the sender role (system/user/assistant/function).
	Role Role `json:"role"`

	// Name is the tool name; required when Role == RoleFunction.
	Name string `json:"name,omitempty"`

	// Content is the text content of the message.
	Content string `json:"content"`
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) *Message {
	return &Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) *Message {
	return &Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) *Message {
	return &Message{Role: RoleAssistant, Content: content}
}

// NewFunctionMessage creates a function-result message for the named tool.
func NewFunctionMessage(name, content string) *Message {
	return &Message{Role: RoleFunction, Name: name, Content: content}
}

// DedupMessages returns a new slice containing only the first message for
// each distinct Content value, in original relative order. Comparison is
// exact string equality on Content only; role and name are not part of the
// key, so two messages with identical text but different roles collapse to
// one. The input is never modified.
func DedupMessages(messages []*Message) []*Message {
	seen := make(map[string]struct{}, len(messages))
	out := make([]*Message, 0, len(messages))

	for _, msg := range messages {
		if _, ok := seen[msg.Content]; ok {
			continue
		}
		seen[msg.Content] = struct{}{}
		out = append(out, msg)
	}

	return out
}
