package chat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/moralisweb3/docschat/pkg/utils/json"
)

// ChatMessage is a single message in the /v1/chat request format.
type ChatMessage struct {
	Role    string `json:"role"`
	Name    string `json:"name,omitempty"`
	Content string `json:"content"`
}

// chatRequest is the request body for /v1/chat.
type chatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// errResponse is the JSON error envelope returned on failure.
type errResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// DocschatClient is the HTTP client for the docschat /v1/chat endpoint.
type DocschatClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewDocschatClient creates a new client.
func NewDocschatClient(baseURL string, httpClient *http.Client) *DocschatClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	return &DocschatClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: httpClient,
	}
}

// StreamCallback is called for each text fragment as it arrives.
type StreamCallback func(delta string)

// ChatStream sends the conversation and streams the raw-text reply, calling
// cb for each fragment. Returns the full reply when the stream closes.
func (c *DocschatClient) ChatStream(ctx context.Context, messages []ChatMessage, cb StreamCallback) (string, error) {
	body, err := json.Marshal(chatRequest{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		var envelope errResponse
		if json.Unmarshal(respBody, &envelope) == nil && envelope.Error != "" {
			return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, envelope.Error)
		}
		return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, string(respBody))
	}

	// The body is raw relayed text, not a framed protocol: read fragments
	// as they arrive and hand them to the callback.
	var full strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			delta := string(buf[:n])
			full.WriteString(delta)
			if cb != nil {
				cb(delta)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return full.String(), fmt.Errorf("read stream: %w", err)
		}
	}

	return full.String(), nil
}
