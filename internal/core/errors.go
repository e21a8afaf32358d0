package core

import (
	"errors"
	"fmt"
)

var (
	ErrUpstreamUnavailable = errors.New("assistant service unavailable")
	ErrInvalidThread       = errors.New("conversation thread not found")
	ErrEmptyReply          = errors.New("assistant produced no reply")
	ErrInvalidRequest      = errors.New("invalid request")
)

// RunFailedError reports a run that ended in a terminal-error state, or one
// we gave up waiting for (Status == RunStatusTimeout).
type RunFailedError struct {
	Status  RunStatus
	Code    string
	Message string
}

func (e *RunFailedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("assistant run %s", e.Status)
	}
	if e.Code == "" {
		return fmt.Sprintf("assistant run %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("assistant run %s: %s (%s)", e.Status, e.Message, e.Code)
}

// ExchangeFailedError wraps any failure raised while exchanging with an assistant.
// Context carries the request identifier (file path or request id).
type ExchangeFailedError struct {
	Context string
	Kind    AssistantKind
	Op      string
	Cause   error
}

func (e *ExchangeFailedError) Error() string {
	return fmt.Sprintf("%s exchange for %s failed at %s: %v", e.Kind, e.Context, e.Op, e.Cause)
}

func (e *ExchangeFailedError) Unwrap() error {
	return e.Cause
}
