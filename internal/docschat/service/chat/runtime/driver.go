package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/moralisweb3/docschat/internal/docschat/service/chat/entity"
	chatpkg "github.com/moralisweb3/docschat/internal/docschat/service/chat/pkg"
	"github.com/moralisweb3/docschat/internal/docschat/service/chat/pkg/errno"
	"github.com/moralisweb3/docschat/pkg/logger"
)

// FinishStop is the finish signal for an ordinary end of turn. Any other
// non-empty finish signal (tool call requested, length limit, content
// filter) still ends the turn but hands the accumulated call, if any, back
// to the loop.
const FinishStop = "stop"

// EmitFunc receives each content fragment the moment it arrives. Fragments
// must be relayed verbatim and in arrival order; a non-nil return stops the
// turn (consumer gone).
type EmitFunc func(delta string) error

// TurnResult is the outcome of a single streaming turn.
type TurnResult struct {
	// Call is the fully accumulated tool-call signal, or nil when the turn
	// ended without requesting one.
	Call *entity.FunctionCall

	// Text is the concatenation of every content fragment relayed during
	// the turn.
	Text string

	// FinishReason is the finish signal that ended the turn, empty if the
	// stream simply drained.
	FinishReason string
}

// StreamTurn opens one streaming turn against the completion service and
// multiplexes its chunks: content fragments are emitted immediately,
// tool-call fragments are concatenated into an accumulated FunctionCall,
// and the finish signal decides how the turn ends.
//
// The driver does not validate the accumulated argument text; malformed
// JSON is the loop's failure to surface, not the driver's.
func StreamTurn(
	ctx context.Context,
	cm einoModel.BaseChatModel,
	messages []*schema.Message,
	emit EmitFunc,
) (*TurnResult, error) {
	sr, err := cm.Stream(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("open completion stream: %w", err)
	}
	defer sr.Close()

	var (
		text strings.Builder
		acc  entity.FunctionCall
	)

	for {
		chunk, err := sr.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errno.ErrStreamRecv, err)
		}
		if chunk == nil {
			continue
		}

		if chunk.Content != "" {
			text.WriteString(chunk.Content)
			if err := emit(chunk.Content); err != nil {
				return nil, fmt.Errorf("relay content fragment: %w", err)
			}
		}

		// Fragments may split the name or the arguments at arbitrary byte
		// boundaries; always concatenate, never replace.
		for _, tc := range chunk.ToolCalls {
			if tc.ID != "" && acc.ID == "" {
				acc.ID = tc.ID
			}
			acc.Name += tc.Function.Name
			acc.Arguments += tc.Function.Arguments
		}

		if chunk.ResponseMeta == nil || chunk.ResponseMeta.FinishReason == "" {
			continue
		}

		finish := chunk.ResponseMeta.FinishReason
		if finish == FinishStop {
			// Ordinary stop: whatever was accumulated is discarded.
			return &TurnResult{Text: text.String(), FinishReason: finish}, nil
		}

		logger.DebugX(chatpkg.ModuleName, "turn ended with finish=%q tool=%q", finish, acc.Name)
		return &TurnResult{
			Call:         pendingCall(acc),
			Text:         text.String(),
			FinishReason: finish,
		}, nil
	}

	// Stream drained without a finish signal. Some providers end the
	// stream right after the last chunk; treat the accumulated state as
	// the turn outcome.
	return &TurnResult{Call: pendingCall(acc), Text: text.String()}, nil
}

// pendingCall returns the accumulated call, or nil when no tool was named.
// Argument text without a name does not make a call.
func pendingCall(acc entity.FunctionCall) *entity.FunctionCall {
	if acc.Empty() {
		return nil
	}
	call := acc
	return &call
}
