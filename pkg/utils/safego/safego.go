// Package safego spawns goroutines that survive panics in the spawned
// function, logging the panic instead of crashing the process.
package safego

import (
	"context"
	"runtime/debug"

	"github.com/moralisweb3/docschat/pkg/logger"
)

// Go runs fn in a new goroutine, recovering and logging any panic.
// The context is accepted for call-site symmetry; fn should observe
// cancellation itself.
func Go(_ context.Context, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("[safego] goroutine panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}
