// Package assistant adapts the OpenAI Assistants API (threads, messages and
// runs) to core.AssistantClient.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/sevigo/review-assistant/internal/config"
	"github.com/sevigo/review-assistant/internal/core"
)

// Client talks to the assistant service. It is safe for concurrent use.
type Client struct {
	api    openai.Client
	logger *slog.Logger
}

var _ core.AssistantClient = (*Client)(nil)

// NewHTTPClient returns the transport used for assistant calls. Individual
// calls are short; the long wait happens between polls, not inside a request.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: 2 * time.Minute,
	}
}

// New creates a Client from the OpenAI section of cfg. SDK-level retries are
// disabled: a transport failure is reported to the caller as is.
func New(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, errors.New("assistant API key cannot be empty")
	}
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAI.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}
	if cfg.OpenAI.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAI.BaseURL))
	}

	return &Client{
		api:    openai.NewClient(opts...),
		logger: logger,
	}, nil
}

// CreateConversation opens a new, empty thread.
func (c *Client) CreateConversation(ctx context.Context) (string, error) {
	thread, err := c.api.Beta.Threads.New(ctx, openai.BetaThreadNewParams{})
	if err != nil {
		return "", translateError("create thread", "", err)
	}
	c.logger.Debug("created conversation thread", "thread_id", thread.ID)
	return thread.ID, nil
}

// PostMessage appends one text message to the thread.
func (c *Client) PostMessage(ctx context.Context, threadID string, role core.MessageRole, content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: message content is empty", core.ErrInvalidRequest)
	}

	_, err := c.api.Beta.Threads.Messages.New(ctx, threadID, openai.BetaThreadMessageNewParams{
		Role: openai.BetaThreadMessageNewParamsRole(role),
		Content: openai.BetaThreadMessageNewParamsContentUnion{
			OfString: openai.String(content),
		},
	})
	if err != nil {
		return translateError("post message", threadID, err)
	}
	return nil
}

// StartRun starts assistantID against the thread.
func (c *Client) StartRun(ctx context.Context, threadID, assistantID string) (*core.Run, error) {
	run, err := c.api.Beta.Threads.Runs.New(ctx, threadID, openai.BetaThreadRunNewParams{
		AssistantID: assistantID,
	})
	if err != nil {
		return nil, translateError("start run", threadID, err)
	}
	c.logger.Debug("started assistant run", "thread_id", threadID, "run_id", run.ID, "status", run.Status)
	return toRun(threadID, run), nil
}

// GetRun fetches the current state of a run.
func (c *Client) GetRun(ctx context.Context, threadID, runID string) (*core.Run, error) {
	run, err := c.api.Beta.Threads.Runs.Get(ctx, threadID, runID)
	if err != nil {
		return nil, translateError("get run", threadID, err)
	}
	return toRun(threadID, run), nil
}

// FetchLatestReply returns the text of the newest assistant message in the thread.
func (c *Client) FetchLatestReply(ctx context.Context, threadID string) (string, error) {
	page, err := c.api.Beta.Threads.Messages.List(ctx, threadID, openai.BetaThreadMessageListParams{
		Order: openai.BetaThreadMessageListParamsOrderDesc,
		Limit: openai.Int(20),
	})
	if err != nil {
		return "", translateError("list messages", threadID, err)
	}

	for _, msg := range page.Data {
		if msg.Role != openai.MessageRoleAssistant {
			continue
		}
		for _, part := range msg.Content {
			if part.Type == "text" {
				return part.Text.Value, nil
			}
		}
	}
	return "", fmt.Errorf("thread %s: %w", threadID, core.ErrEmptyReply)
}

func toRun(threadID string, run *openai.Run) *core.Run {
	return &core.Run{
		ID:               run.ID,
		ThreadID:         threadID,
		Status:           core.RunStatus(run.Status),
		LastErrorCode:    string(run.LastError.Code),
		LastErrorMessage: run.LastError.Message,
	}
}

// translateError maps SDK failures onto the core taxonomy. Context errors are
// passed through so callers can tell cancellation from an outage.
func translateError(op, threadID string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound && threadID != "" {
		return fmt.Errorf("%s: thread %s: %w", op, threadID, core.ErrInvalidThread)
	}
	return fmt.Errorf("%s: %w: %v", op, core.ErrUpstreamUnavailable, err)
}
