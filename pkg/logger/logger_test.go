package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	fn()
	return buf.String()
}

func TestLevelFiltering(t *testing.T) {
	SetLevel("warn")
	t.Cleanup(func() { SetLevel("info") })

	out := capture(t, func() {
		Info("[Test] hidden %d", 1)
		Warn("[Test] shown %d", 2)
	})

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[Test] shown 2")
}

func TestModuleField(t *testing.T) {
	SetLevel("debug")
	t.Cleanup(func() { SetLevel("info") })

	out := capture(t, func() {
		DebugX("chat", "turn ended")
		InfoX("chat", "dispatching tool %q", "get_moralis_articles")
		WarnX("chat", "slow tool")
	})

	assert.Contains(t, out, "module=chat")
	assert.Contains(t, out, `dispatching tool "get_moralis_articles"`)
	assert.Contains(t, out, "slow tool")
}

func TestSetLevelUnknownFallsBackToInfo(t *testing.T) {
	SetLevel("nonsense")
	t.Cleanup(func() { SetLevel("info") })

	out := capture(t, func() {
		Debug("[Test] debug line")
		Info("[Test] info line")
	})

	assert.NotContains(t, out, "debug line")
	assert.Contains(t, out, "info line")
}
