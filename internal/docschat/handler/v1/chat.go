package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moralisweb3/docschat/internal/docschat/service/chat/entity"
	"github.com/moralisweb3/docschat/internal/docschat/service/chat/pkg/errno"
	"github.com/moralisweb3/docschat/internal/docschat/service/chat/runtime"
	"github.com/moralisweb3/docschat/internal/docschat/service/docs/toolset"
	"github.com/moralisweb3/docschat/internal/pkg/core"
	"github.com/moralisweb3/docschat/pkg/errorx"
	"github.com/moralisweb3/docschat/pkg/logger"
	"github.com/moralisweb3/docschat/pkg/utils/safego"
)

// TranscriptWriter persists completed chats. May be nil when persistence
// is disabled.
type TranscriptWriter interface {
	Create(ctx context.Context, transcript *entity.Transcript) error
}

// ChatHandler handles POST /v1/chat: it validates the inbound conversation,
// runs the function-calling chat loop, and relays every content fragment to
// the response as a raw text stream.
//
// The response body is the concatenation of relayed fragments, declared as
// text/plain (not an SSE or JSON envelope). The X-Chat-Id header carries the
// transcript id when persistence is enabled.
type ChatHandler struct {
	cm          einoModel.BaseChatModel
	registry    *toolset.Registry
	transcripts TranscriptWriter
	maxTurns    int
	eventBuffer int
}

// NewChatHandler creates a ChatHandler. The chat model must already have
// the registry's tool descriptors bound.
func NewChatHandler(
	cm einoModel.BaseChatModel,
	registry *toolset.Registry,
	transcripts TranscriptWriter,
	maxTurns, eventBuffer int,
) *ChatHandler {
	if eventBuffer <= 0 {
		eventBuffer = 16
	}
	return &ChatHandler{
		cm:          cm,
		registry:    registry,
		transcripts: transcripts,
		maxTurns:    maxTurns,
		eventBuffer: eventBuffer,
	}
}

// Handle is the main entry point for POST /v1/chat.
func (h *ChatHandler) Handle(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrBind, "bind chat request"), nil)
		return
	}

	if len(req.Messages) == 0 {
		core.WriteResponse(c, errorx.WithCode(ErrMessagesEmpty, "messages array is required and must not be empty"), nil)
		return
	}

	conversation := make([]*entity.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		conversation = append(conversation, m.ToEntity())
	}
	conversation = entity.DedupMessages(conversation)

	chatID := uuid.New().String()
	ctx := c.Request.Context()

	// Event pipe between the loop goroutine and the response writer. The
	// buffer is the backpressure window: the loop blocks on Send once the
	// writer falls behind.
	sr, sw := schema.Pipe[*entity.ChatEvent](h.eventBuffer)
	defer sr.Close()

	safego.Go(ctx, func() {
		defer sw.Close()

		loop := runtime.NewLoop(h.cm, h.registry, h.maxTurns)
		result, err := loop.Run(ctx, conversation, func(delta string) error {
			if closed := sw.Send(&entity.ChatEvent{Type: entity.EventTextDelta, Delta: delta}, nil); closed {
				return errors.New("event stream closed by consumer")
			}
			return nil
		})
		if err != nil {
			sw.Send(nil, err)
			return
		}

		h.saveTranscript(chatID, conversation, result)
		sw.Send(&entity.ChatEvent{Type: entity.EventDone}, nil)
	})

	// The first event decides the response shape: an error before any byte
	// was written still gets a proper JSON error envelope.
	first, err := sr.Recv()
	if err != nil && !errors.Is(err, io.EOF) {
		core.WriteResponse(c, h.classifyLoopError(err), nil)
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Header("X-Chat-Id", chatID)
	c.Status(http.StatusOK)
	w := c.Writer

	relay := func(ev *entity.ChatEvent) {
		if ev != nil && ev.Type == entity.EventTextDelta {
			_, _ = w.WriteString(ev.Delta)
			w.Flush()
		}
	}
	relay(first)

	for {
		ev, err := sr.Recv()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			// Streaming already started; the relayed prefix stands and the
			// connection is closed without a trailer.
			logger.Warn("[Chat] stream aborted after partial output (chat=%s): %v", chatID, err)
			return
		}
		relay(ev)
	}
}

// classifyLoopError maps loop sentinels to registered error codes. Unknown
// errors stay unwrapped and fall through to the generic 500 envelope.
func (h *ChatHandler) classifyLoopError(err error) error {
	switch {
	case errors.Is(err, errno.ErrBadToolArguments):
		return errorx.WrapC(err, ErrToolArguments, "parse accumulated tool arguments")
	case errors.Is(err, errno.ErrUnknownTool):
		return errorx.WrapC(err, ErrUnknownTool, "resolve requested tool")
	case errors.Is(err, errno.ErrToolInvocation):
		return errorx.WrapC(err, ErrToolFailed, "invoke requested tool")
	case errors.Is(err, errno.ErrMaxTurnsExceeded):
		return errorx.WrapC(err, ErrMaxTurns, "chat loop turn budget")
	case errors.Is(err, errno.ErrStreamRecv):
		return errorx.WrapC(err, ErrStreamRecv, "receive completion chunk")
	default:
		return err
	}
}

// saveTranscript persists a completed chat. Persistence failures are logged,
// never surfaced: the reply already reached the client.
func (h *ChatHandler) saveTranscript(chatID string, conversation []*entity.Message, result *runtime.Result) {
	if h.transcripts == nil || result == nil {
		return
	}

	transcript := &entity.Transcript{
		ID:        chatID,
		Messages:  conversation,
		Reply:     result.Reply,
		ToolCalls: result.ToolCalls,
		Turns:     result.Turns,
		CreatedAt: time.Now(),
	}
	if err := h.transcripts.Create(context.Background(), transcript); err != nil {
		logger.Warn("[Chat] failed to persist transcript %s: %v", chatID, err)
	}
}
