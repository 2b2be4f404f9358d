// Package core holds the shared HTTP response envelope used by all handlers.
package core

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moralisweb3/docschat/pkg/errorx"
	"github.com/moralisweb3/docschat/pkg/logger"
)

// ErrResponse is the JSON body returned for failed requests. Only the
// registered coder message is exposed; the wrapped cause stays in the logs.
type ErrResponse struct {
	Code  int         `json:"code"`
	Error string      `json:"error"`
	Data  interface{} `json:"data,omitempty"`
}

// WriteResponse writes either an error envelope or the success payload.
// Coded errors map to their registered HTTP status; anything else becomes
// a generic 500.
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		logger.Warn("[Response] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		coder := errorx.ParseCoder(err)
		c.JSON(coder.HTTPStatus(), ErrResponse{
			Code:  coder.Code(),
			Error: coder.String(),
			Data:  data,
		})
		return
	}

	c.JSON(http.StatusOK, data)
}
