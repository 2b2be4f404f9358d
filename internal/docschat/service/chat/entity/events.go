package entity

// EventType identifies the type of a streaming chat event.
type EventType string

const (
	// EventTextDelta is a chunk of assistant text being streamed.
	EventTextDelta EventType = "text_delta"

	// EventDone indicates the chat loop has completed and the stream is ending.
	EventDone EventType = "done"
)

// ChatEvent is a streaming event emitted by the chat loop. Events flow
// through a schema.Pipe from the execution goroutine to the client-facing
// response writer.
type ChatEvent struct {
	// Type identifies which kind of event this is.
	Type EventType `json:"type"`

	// Delta contains the text fragment for EventTextDelta events.
	Delta string `json:"delta,omitempty"`
}
