package v1

import (
	"net/http"

	"github.com/moralisweb3/docschat/pkg/errorx"
)

// Docschat handler error codes.
// Code format: 1XXYYZ
//   - 1:  module prefix (docschat handler)
//   - XX: resource group (00=common, 01=chat, 02=transcript)
//   - YY: sequential error number
//   - Z:  reserved (0)

const (
	// Common request errors (100xxx).
	ErrBind       = 100001
	ErrValidation = 100002

	// Chat errors (1001xx).
	ErrMessagesEmpty = 100101
	ErrChatRun       = 100102
	ErrStreamRecv    = 100103
	ErrUnknownTool   = 100104
	ErrToolArguments = 100105
	ErrToolFailed    = 100106
	ErrMaxTurns      = 100107

	// Transcript errors (1002xx).
	ErrTranscriptNotFound = 100201
	ErrTranscriptStore    = 100202
)

func init() {
	// Common.
	errorx.MustRegister(newCoder(ErrBind, http.StatusBadRequest, "Missing request data"))
	errorx.MustRegister(newCoder(ErrValidation, http.StatusBadRequest, "Request validation failed"))

	// Chat.
	errorx.MustRegister(newCoder(ErrMessagesEmpty, http.StatusBadRequest, "Messages array is required and must not be empty"))
	errorx.MustRegister(newCoder(ErrChatRun, http.StatusInternalServerError, "Chat run failed"))
	errorx.MustRegister(newCoder(ErrStreamRecv, http.StatusInternalServerError, "Completion stream receive error"))
	errorx.MustRegister(newCoder(ErrUnknownTool, http.StatusInternalServerError, "Requested tool is not registered"))
	errorx.MustRegister(newCoder(ErrToolArguments, http.StatusInternalServerError, "Tool arguments are not valid JSON"))
	errorx.MustRegister(newCoder(ErrToolFailed, http.StatusInternalServerError, "Tool invocation failed"))
	errorx.MustRegister(newCoder(ErrMaxTurns, http.StatusInternalServerError, "Max tool-call turns exceeded"))

	// Transcript.
	errorx.MustRegister(newCoder(ErrTranscriptNotFound, http.StatusNotFound, "Transcript not found"))
	errorx.MustRegister(newCoder(ErrTranscriptStore, http.StatusInternalServerError, "Transcript store unavailable"))
}

type coder struct {
	code int
	http int
	msg  string
}

func newCoder(code, httpStatus int, msg string) *coder {
	return &coder{code: code, http: httpStatus, msg: msg}
}

func (c *coder) Code() int         { return c.code }
func (c *coder) HTTPStatus() int   { return c.http }
func (c *coder) String() string    { return c.msg }
func (c *coder) Reference() string { return "" }
