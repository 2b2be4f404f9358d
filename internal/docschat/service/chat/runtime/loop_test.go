package runtime

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moralisweb3/docschat/internal/docschat/service/chat/entity"
	"github.com/moralisweb3/docschat/internal/docschat/service/chat/pkg/errno"
	"github.com/moralisweb3/docschat/internal/docschat/service/docs"
	"github.com/moralisweb3/docschat/internal/docschat/service/docs/toolset"
	"github.com/moralisweb3/docschat/internal/docschat/service/llm/llmtest"
)

func newTestRegistry(t *testing.T) *toolset.Registry {
	t.Helper()
	store, err := docs.NewStore()
	require.NoError(t, err)
	return toolset.New(store)
}

func userTurn(content string) []*entity.Message {
	return []*entity.Message{entity.NewUserMessage(content)}
}

func TestLoopPlainAnswer(t *testing.T) {
	cm := llmtest.NewScriptedModel(llmtest.Turn{Chunks: []*schema.Message{
		llmtest.Text("Moralis is "),
		llmtest.Text("a Web3 data platform."),
		llmtest.Finish(FinishStop),
	}})
	loop := NewLoop(cm, newTestRegistry(t), 0)

	var emitted []string
	result, err := loop.Run(context.Background(), userTurn("What is Moralis?"), collectEmits(&emitted))
	require.NoError(t, err)

	assert.Equal(t, "Moralis is a Web3 data platform.", result.Reply)
	assert.Equal(t, []string{"Moralis is ", "a Web3 data platform."}, emitted)
	assert.Equal(t, 1, result.Turns)
	assert.Empty(t, result.ToolCalls)
	assert.Equal(t, StateDone, loop.State())
}

func TestLoopDispatchesToolAndResumes(t *testing.T) {
	cm := llmtest.NewScriptedModel(
		llmtest.Turn{Chunks: []*schema.Message{
			llmtest.ToolCall(0, "call-1", toolset.ToolArticlesList, "{}"),
			llmtest.Finish("tool_calls"),
		}},
		llmtest.Turn{Chunks: []*schema.Message{
			llmtest.Text("Here are the articles."),
			llmtest.Finish(FinishStop),
		}},
	)
	loop := NewLoop(cm, newTestRegistry(t), 0)

	var emitted []string
	result, err := loop.Run(context.Background(), userTurn("List the docs"), collectEmits(&emitted))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Turns)
	require.Len(t, result.ToolCalls, 1)
	assert.Equal(t, toolset.ToolArticlesList, result.ToolCalls[0].Name)
	assert.Contains(t, result.ToolCalls[0].Result, "how-to-get-nft-metadata")
	assert.Equal(t, []string{"Here are the articles."}, emitted)

	// The second turn sees the call echoed back followed by its result.
	require.Len(t, cm.Calls, 2)
	second := cm.Calls[1]
	require.Len(t, second, 3)
	assert.Equal(t, schema.Assistant, second[1].Role)
	require.Len(t, second[1].ToolCalls, 1)
	assert.Equal(t, "call-1", second[1].ToolCalls[0].ID)
	assert.Equal(t, schema.Tool, second[2].Role)
	assert.Equal(t, "call-1", second[2].ToolCallID)
	assert.Equal(t, toolset.ToolArticlesList, second[2].Name)
}

func TestLoopFetchByIDsPassesArguments(t *testing.T) {
	cm := llmtest.NewScriptedModel(
		llmtest.Turn{Chunks: []*schema.Message{
			llmtest.ToolCall(0, "call-2", toolset.ToolArticles, `{"ids":["how-to-get-token-price"]}`),
			llmtest.Finish("tool_calls"),
		}},
		llmtest.Turn{Chunks: []*schema.Message{
			llmtest.Text("See the token price guide."),
			llmtest.Finish(FinishStop),
		}},
	)
	loop := NewLoop(cm, newTestRegistry(t), 0)

	result, err := loop.Run(context.Background(), userTurn("token price?"), collectEmits(&[]string{}))
	require.NoError(t, err)

	require.Len(t, result.ToolCalls, 1)
	assert.Contains(t, result.ToolCalls[0].Result, "how-to-get-token-price")
	assert.NotContains(t, result.ToolCalls[0].Result, "streams-getting-started")
}

func TestLoopEmptyArgumentsDefaultToEmptyObject(t *testing.T) {
	cm := llmtest.NewScriptedModel(
		llmtest.Turn{Chunks: []*schema.Message{
			llmtest.ToolCall(0, "call-3", toolset.ToolCortexArticlesList, ""),
			llmtest.Finish("tool_calls"),
		}},
		llmtest.Turn{Chunks: []*schema.Message{
			llmtest.Finish(FinishStop),
		}},
	)
	loop := NewLoop(cm, newTestRegistry(t), 0)

	result, err := loop.Run(context.Background(), userTurn("cortex docs"), collectEmits(&[]string{}))
	require.NoError(t, err)

	require.Len(t, result.ToolCalls, 1)
	assert.Equal(t, "{}", result.ToolCalls[0].Arguments)
	assert.Contains(t, result.ToolCalls[0].Result, "cortex-overview")
}

func TestLoopUnknownTool(t *testing.T) {
	cm := llmtest.NewScriptedModel(llmtest.Turn{Chunks: []*schema.Message{
		llmtest.ToolCall(0, "call-4", "get_moralis_secrets", "{}"),
		llmtest.Finish("tool_calls"),
	}})
	loop := NewLoop(cm, newTestRegistry(t), 0)

	_, err := loop.Run(context.Background(), userTurn("hi"), collectEmits(&[]string{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrUnknownTool)
	assert.Contains(t, err.Error(), "get_moralis_secrets")
}

func TestLoopMalformedArguments(t *testing.T) {
	cm := llmtest.NewScriptedModel(llmtest.Turn{Chunks: []*schema.Message{
		llmtest.ToolCall(0, "call-5", toolset.ToolArticles, `{"ids":[`),
		llmtest.Finish("tool_calls"),
	}})
	loop := NewLoop(cm, newTestRegistry(t), 0)

	_, err := loop.Run(context.Background(), userTurn("hi"), collectEmits(&[]string{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrBadToolArguments)
}

func TestLoopToolFailureSurfaces(t *testing.T) {
	// Valid JSON that does not match the tool's argument shape fails inside
	// the tool, not in the loop's own validation.
	cm := llmtest.NewScriptedModel(llmtest.Turn{Chunks: []*schema.Message{
		llmtest.ToolCall(0, "call-7", toolset.ToolArticles, `{"ids":"not-an-array"}`),
		llmtest.Finish("tool_calls"),
	}})
	loop := NewLoop(cm, newTestRegistry(t), 0)

	_, err := loop.Run(context.Background(), userTurn("hi"), collectEmits(&[]string{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrToolInvocation)
}

func TestLoopMaxTurnsGuard(t *testing.T) {
	// A model that requests the same tool forever must be cut off.
	turns := make([]llmtest.Turn, 0, 4)
	for i := 0; i < 4; i++ {
		turns = append(turns, llmtest.Turn{Chunks: []*schema.Message{
			llmtest.ToolCall(0, "", toolset.ToolArticlesList, "{}"),
			llmtest.Finish("tool_calls"),
		}})
	}
	loop := NewLoop(llmtest.NewScriptedModel(turns...), newTestRegistry(t), 3)

	_, err := loop.Run(context.Background(), userTurn("loop forever"), collectEmits(&[]string{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrMaxTurnsExceeded)
}

func TestLoopCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := NewLoop(llmtest.NewScriptedModel(), newTestRegistry(t), 0)
	_, err := loop.Run(ctx, userTurn("hi"), collectEmits(&[]string{}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoopReplySpansTurns(t *testing.T) {
	cm := llmtest.NewScriptedModel(
		llmtest.Turn{Chunks: []*schema.Message{
			llmtest.Text("Checking the docs. "),
			llmtest.ToolCall(0, "call-6", toolset.ToolAPIEndpointsList, "{}"),
			llmtest.Finish("tool_calls"),
		}},
		llmtest.Turn{Chunks: []*schema.Message{
			llmtest.Text("Use getNFTMetadata."),
			llmtest.Finish(FinishStop),
		}},
	)
	loop := NewLoop(cm, newTestRegistry(t), 0)

	var emitted []string
	result, err := loop.Run(context.Background(), userTurn("which endpoint?"), collectEmits(&emitted))
	require.NoError(t, err)

	assert.Equal(t, "Checking the docs. Use getNFTMetadata.", result.Reply)
	// Fragments of turn one strictly precede fragments of turn two.
	assert.True(t, strings.HasPrefix(strings.Join(emitted, ""), "Checking the docs. "))
}
