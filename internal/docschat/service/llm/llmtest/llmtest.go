// Package llmtest provides a scripted chat model for exercising the chat
// runtime without a live provider.
package llmtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Turn is one scripted model turn: the chunks the stream yields in order,
// an error returned when opening the stream, or an error the stream yields
// after its chunks.
type Turn struct {
	Chunks  []*schema.Message
	Err     error
	RecvErr error
}

// ScriptedModel replays pre-recorded turns. Each Stream call consumes the
// next turn in order. It records the messages it was called with so tests
// can assert on the conversation the runtime built up.
type ScriptedModel struct {
	mu    sync.Mutex
	turns []Turn
	next  int

	Calls [][]*schema.Message
	Tools []*schema.ToolInfo
}

func NewScriptedModel(turns ...Turn) *ScriptedModel {
	return &ScriptedModel{turns: turns}
}

func (m *ScriptedModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	sr, err := m.Stream(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	defer sr.Close()

	var msgs []*schema.Message
	for {
		msg, err := sr.Recv()
		if err != nil {
			break
		}
		msgs = append(msgs, msg)
	}
	return schema.ConcatMessages(msgs)
}

func (m *ScriptedModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, input)
	if m.next >= len(m.turns) {
		return nil, fmt.Errorf("scripted model exhausted after %d turns", len(m.turns))
	}

	turn := m.turns[m.next]
	m.next++
	if turn.Err != nil {
		return nil, turn.Err
	}
	if turn.RecvErr != nil {
		sr, sw := schema.Pipe[*schema.Message](len(turn.Chunks) + 1)
		go func() {
			defer sw.Close()
			for _, chunk := range turn.Chunks {
				if sw.Send(chunk, nil) {
					return
				}
			}
			sw.Send(nil, turn.RecvErr)
		}()
		return sr, nil
	}
	return schema.StreamReaderFromArray(turn.Chunks), nil
}

func (m *ScriptedModel) WithTools(tools []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tools = tools
	return m, nil
}

// Text builds a content-only chunk.
func Text(s string) *schema.Message {
	return &schema.Message{Role: schema.Assistant, Content: s}
}

// ToolCall builds a chunk carrying one tool-call fragment.
func ToolCall(index int, id, name, args string) *schema.Message {
	idx := index
	return &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{
			{
				Index:    &idx,
				ID:       id,
				Type:     "function",
				Function: schema.FunctionCall{Name: name, Arguments: args},
			},
		},
	}
}

// Finish builds a chunk carrying only a finish reason.
func Finish(reason string) *schema.Message {
	return &schema.Message{
		Role:         schema.Assistant,
		ResponseMeta: &schema.ResponseMeta{FinishReason: reason},
	}
}
