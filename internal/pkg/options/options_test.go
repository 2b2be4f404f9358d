package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelOptionsResolveAPIKey(t *testing.T) {
	o := NewModelOptions()

	o.APIKey = "sk-literal"
	assert.Equal(t, "sk-literal", o.ResolveAPIKey())

	t.Setenv("DOCSCHAT_TEST_KEY", "sk-from-env")
	o.APIKey = "${DOCSCHAT_TEST_KEY}"
	assert.Equal(t, "sk-from-env", o.ResolveAPIKey())

	o.APIKey = "${DOCSCHAT_MISSING_KEY}"
	assert.Empty(t, o.ResolveAPIKey())
}

func TestModelOptionsValidate(t *testing.T) {
	o := NewModelOptions()
	o.APIKey = "sk-literal"
	assert.Empty(t, o.Validate())

	o.Model = ""
	o.APIKey = ""
	assert.Len(t, o.Validate(), 2)
}

func TestServerRunOptionsAddr(t *testing.T) {
	o := NewServerRunOptions()
	assert.Equal(t, "127.0.0.1:11790", o.Addr())
	assert.Empty(t, o.Validate())

	o.BindPort = 70000
	assert.NotEmpty(t, o.Validate())
}

func TestChatOptionsDefaults(t *testing.T) {
	o := NewChatOptions()
	assert.Equal(t, 10, o.MaxTurns)
	assert.Equal(t, 16, o.EventBuffer)
	assert.Empty(t, o.Validate())
}
