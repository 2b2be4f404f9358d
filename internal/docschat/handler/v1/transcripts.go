package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/moralisweb3/docschat/internal/docschat/service/chat/entity"
	"github.com/moralisweb3/docschat/internal/pkg/core"
	"github.com/moralisweb3/docschat/pkg/errorx"
)

// TranscriptReader reads persisted chats.
type TranscriptReader interface {
	Get(ctx context.Context, id string) (*entity.Transcript, error)
	List(ctx context.Context) ([]*entity.Transcript, error)
}

// TranscriptHandler serves GET /v1/transcripts/:id.
type TranscriptHandler struct {
	store TranscriptReader
}

// NewTranscriptHandler creates a TranscriptHandler. store may be nil when
// persistence is disabled.
func NewTranscriptHandler(store TranscriptReader) *TranscriptHandler {
	return &TranscriptHandler{store: store}
}

// Get returns a single transcript by id.
func (h *TranscriptHandler) Get(c *gin.Context) {
	if h.store == nil {
		core.WriteResponse(c, errorx.WithCode(ErrTranscriptStore, "transcript persistence is disabled"), nil)
		return
	}

	id := c.Param("id")
	transcript, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrTranscriptNotFound, "get transcript %q", id), nil)
		return
	}

	core.WriteResponse(c, nil, toTranscriptResponse(transcript))
}

// List returns every persisted transcript.
func (h *TranscriptHandler) List(c *gin.Context) {
	if h.store == nil {
		core.WriteResponse(c, errorx.WithCode(ErrTranscriptStore, "transcript persistence is disabled"), nil)
		return
	}

	transcripts, err := h.store.List(c.Request.Context())
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrTranscriptStore, "list transcripts"), nil)
		return
	}

	out := make([]TranscriptResponse, 0, len(transcripts))
	for _, transcript := range transcripts {
		out = append(out, toTranscriptResponse(transcript))
	}
	core.WriteResponse(c, nil, out)
}

func toTranscriptResponse(transcript *entity.Transcript) TranscriptResponse {
	return TranscriptResponse{
		ID:        transcript.ID,
		Messages:  transcript.Messages,
		Reply:     transcript.Reply,
		ToolCalls: transcript.ToolCalls,
		Turns:     transcript.Turns,
		CreatedAt: FormatTime(transcript.CreatedAt),
	}
}
