package errno

import (
	"errors"
)

var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrBadToolArguments = errors.New("malformed tool arguments")
	ErrToolInvocation   = errors.New("tool invocation failed")
	ErrMaxTurnsExceeded = errors.New("max turns exceeded")
	ErrStreamRecv       = errors.New("completion stream receive failed")
)
