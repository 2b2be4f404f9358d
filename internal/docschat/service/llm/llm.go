// Package llm builds the completion-service boundary: an Eino chat model
// talking to an OpenAI-compatible endpoint, with the tool registry's
// descriptors bound so the service can request tool calls on its own.
package llm

import (
	"context"
	"fmt"

	"github.com/bytedance/gg/gptr"
	einoOpenAI "github.com/cloudwego/eino-ext/components/model/openai"
	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	genericoptions "github.com/moralisweb3/docschat/internal/pkg/options"
)

// NewChatModel creates the OpenAI-compatible chat model from the model
// options. The returned model supports Generate and Stream.
func NewChatModel(ctx context.Context, opts *genericoptions.ModelOptions) (einoModel.ToolCallingChatModel, error) {
	cfg := &einoOpenAI.ChatModelConfig{
		Model:     opts.Model,
		APIKey:    opts.ResolveAPIKey(),
		MaxTokens: gptr.Of(opts.MaxTokens),
		ResponseFormat: &einoOpenAI.ChatCompletionResponseFormat{
			Type: einoOpenAI.ChatCompletionResponseFormatTypeText,
		},
	}

	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Temperature != 0 {
		cfg.Temperature = gptr.Of(opts.Temperature)
	}

	cm, err := einoOpenAI.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create chat model %q: %w", opts.Model, err)
	}
	return cm, nil
}

// BindTools returns a model with the given tool descriptors attached, so
// streamed turns may end in a tool-call request.
func BindTools(cm einoModel.ToolCallingChatModel, infos []*schema.ToolInfo) (einoModel.ToolCallingChatModel, error) {
	bound, err := cm.WithTools(infos)
	if err != nil {
		return nil, fmt.Errorf("bind %d tools: %w", len(infos), err)
	}
	return bound, nil
}
