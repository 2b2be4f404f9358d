package runtime

import (
	"context"
	"fmt"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/moralisweb3/docschat/internal/docschat/service/chat/entity"
	chatpkg "github.com/moralisweb3/docschat/internal/docschat/service/chat/pkg"
	"github.com/moralisweb3/docschat/internal/docschat/service/chat/pkg/errno"
	"github.com/moralisweb3/docschat/internal/docschat/service/docs/toolset"
	"github.com/moralisweb3/docschat/pkg/logger"
	"github.com/moralisweb3/docschat/pkg/utils/json"
)

// State is the loop controller state.
type State string

const (
	// StateStreaming means a completion turn is being consumed.
	StateStreaming State = "streaming"
	// StateDispatching means an accumulated tool call is being executed.
	StateDispatching State = "dispatching"
	// StateDone is the terminal state.
	StateDone State = "done"
)

// DefaultMaxTurns bounds the number of streaming turns a single chat may
// take. Without a bound, a tool that keeps being re-requested with the same
// arguments would loop forever.
const DefaultMaxTurns = 10

// Loop drives the stream-and-maybe-call cycle: stream a turn, and if it
// ended with a fully accumulated tool call, dispatch it through the
// registry, append the result to the conversation, and stream again.
//
// The only externally visible output of intermediate turns is the content
// relayed through the emit callback; the returned Result exists for
// transcripts, not for the transport path.
type Loop struct {
	cm       einoModel.BaseChatModel
	registry *toolset.Registry
	maxTurns int

	state State
}

// NewLoop creates a loop over a chat model that already has the registry's
// descriptors bound. maxTurns <= 0 selects DefaultMaxTurns.
func NewLoop(cm einoModel.BaseChatModel, registry *toolset.Registry, maxTurns int) *Loop {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Loop{
		cm:       cm,
		registry: registry,
		maxTurns: maxTurns,
		state:    StateStreaming,
	}
}

// State returns the loop's current state.
func (l *Loop) State() State { return l.state }

// Result summarizes a completed loop for transcript persistence.
type Result struct {
	// Reply is all content relayed across every turn, concatenated.
	Reply string

	// ToolCalls records each dispatched tool invocation in order.
	ToolCalls []*entity.ToolInvocation

	// Turns is the number of streaming turns consumed.
	Turns int
}

// Run executes the loop over an already-deduplicated conversation. Content
// fragments reach emit in arrival order, across turns: turn N's fragments
// fully precede turn N+1's, with tool dispatch strictly between them.
func (l *Loop) Run(ctx context.Context, conversation []*entity.Message, emit EmitFunc) (*Result, error) {
	messages := ToSchemaMessages(conversation)
	result := &Result{}
	l.state = StateStreaming

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if result.Turns >= l.maxTurns {
			return nil, fmt.Errorf("%w after %d turns", errno.ErrMaxTurnsExceeded, result.Turns)
		}

		turn, err := StreamTurn(ctx, l.cm, messages, emit)
		if err != nil {
			return nil, err
		}
		result.Turns++
		result.Reply += turn.Text

		if turn.Call.Empty() {
			l.state = StateDone
			return result, nil
		}

		l.state = StateDispatching
		toolMsgs, invocation, err := l.dispatch(ctx, turn)
		if err != nil {
			return nil, err
		}
		result.ToolCalls = append(result.ToolCalls, invocation)
		messages = append(messages, toolMsgs...)
		l.state = StateStreaming
	}
}

// dispatch parses the accumulated arguments, resolves the named tool,
// invokes it synchronously, and returns the two messages to append: the
// assistant message carrying the call and the tool message carrying the
// serialized result.
func (l *Loop) dispatch(ctx context.Context, turn *TurnResult) ([]*schema.Message, *entity.ToolInvocation, error) {
	call := turn.Call

	args := call.Arguments
	if args == "" {
		args = "{}"
	}
	if !json.Valid([]byte(args)) {
		return nil, nil, fmt.Errorf("%w: tool %q arguments %q", errno.ErrBadToolArguments, call.Name, call.Arguments)
	}

	t, ok := l.registry.Resolve(call.Name)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", errno.ErrUnknownTool, call.Name)
	}

	logger.InfoX(chatpkg.ModuleName, "dispatching tool %q", call.Name)
	out, err := t.InvokableRun(ctx, args)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q: %v", errno.ErrToolInvocation, call.Name, err)
	}

	// The completion service needs the call echoed back ahead of its
	// result to resume the conversation.
	callID := call.ID
	if callID == "" {
		callID = call.Name
	}
	assistantMsg := &schema.Message{
		Role:    schema.Assistant,
		Content: turn.Text,
		ToolCalls: []schema.ToolCall{{
			ID:   callID,
			Type: "function",
			Function: schema.FunctionCall{
				Name:      call.Name,
				Arguments: args,
			},
		}},
	}
	toolMsg := &schema.Message{
		Role:       schema.Tool,
		Name:       call.Name,
		ToolCallID: callID,
		Content:    out,
	}

	return []*schema.Message{assistantMsg, toolMsg}, &entity.ToolInvocation{
		Name:      call.Name,
		Arguments: args,
		Result:    out,
	}, nil
}
