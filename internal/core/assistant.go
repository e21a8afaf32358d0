// Package core defines the domain types and contracts shared by the assistant
// adapter, the exchange orchestrator and the HTTP layer.
package core

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_assistant.go -package=mocks . AssistantClient
//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_exchanger.go -package=mocks . Exchanger

// AssistantKind names which configured assistant an exchange talks to.
type AssistantKind string

const (
	KindReview AssistantKind = "review"
	KindSample AssistantKind = "sample"
)

// MessageRole is the author of a message posted to a conversation thread.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// RunStatus is the lifecycle state of an assistant run.
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCancelling     RunStatus = "cancelling"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusExpired        RunStatus = "expired"
	RunStatusIncomplete     RunStatus = "incomplete"

	// RunStatusTimeout is never reported by the service. It marks a run we
	// stopped waiting for.
	RunStatusTimeout RunStatus = "timeout"
)

// IsTerminal reports whether no further transition is expected.
// requires_action counts as terminal: tool outputs are never submitted, so
// such a run would only ever expire.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusFailed, RunStatusCancelled,
		RunStatusExpired, RunStatusIncomplete, RunStatusRequiresAction,
		RunStatusTimeout:
		return true
	default:
		return false
	}
}

// IsSuccess reports whether the run completed and a reply can be fetched.
func (s RunStatus) IsSuccess() bool {
	return s == RunStatusCompleted
}

// Run is one execution of an assistant against a thread.
type Run struct {
	ID               string
	ThreadID         string
	Status           RunStatus
	LastErrorCode    string
	LastErrorMessage string
}

// AssistantClient isolates every call made to the external assistant service.
// Implementations must be safe for concurrent use.
type AssistantClient interface {
	// CreateConversation opens a new, empty thread and returns its id.
	CreateConversation(ctx context.Context) (string, error)
	// PostMessage appends one message to the thread. Content must not be empty.
	PostMessage(ctx context.Context, threadID string, role MessageRole, content string) error
	// StartRun starts the assistant against the thread.
	StartRun(ctx context.Context, threadID, assistantID string) (*Run, error)
	// GetRun fetches the current state of a run.
	GetRun(ctx context.Context, threadID, runID string) (*Run, error)
	// FetchLatestReply returns the text of the newest assistant message.
	FetchLatestReply(ctx context.Context, threadID string) (string, error)
}

// ExchangeRequest describes one "ask assistant X about payload Y" round trip.
type ExchangeRequest struct {
	Kind        AssistantKind
	AssistantID string
	Payload     string
	// RequestID identifies the exchange in logs and errors, e.g. a file path.
	RequestID string
}

// Exchanger performs a complete exchange and returns the assistant's raw text.
type Exchanger interface {
	Exchange(ctx context.Context, req ExchangeRequest) (string, error)
}

// CodeAssistant is the use-case surface the HTTP handlers and the CLI call.
type CodeAssistant interface {
	Review(ctx context.Context, req ReviewRequest) (*ReviewResponse, error)
	ReviewBatch(ctx context.Context, reqs []ReviewRequest) []ReviewResult
	GenerateSample(ctx context.Context, req SampleCodeRequest) (*SampleCodeResponse, error)
}
