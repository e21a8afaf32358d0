package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStatus(t *testing.T) {
	tests := []struct {
		status   RunStatus
		terminal bool
		success  bool
	}{
		{RunStatusQueued, false, false},
		{RunStatusInProgress, false, false},
		{RunStatusCancelling, false, false},
		{RunStatusRequiresAction, true, false},
		{RunStatusCompleted, true, true},
		{RunStatusFailed, true, false},
		{RunStatusCancelled, true, false},
		{RunStatusExpired, true, false},
		{RunStatusIncomplete, true, false},
		{RunStatusTimeout, true, false},
		{RunStatus("something_new"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.success, tt.status.IsSuccess())
		})
	}
}

func TestExchangeFailedError(t *testing.T) {
	runErr := &RunFailedError{Status: RunStatusFailed, Code: "server_error", Message: "boom"}
	err := fmt.Errorf("handler: %w", &ExchangeFailedError{
		Context: "a.py",
		Kind:    KindReview,
		Op:      "run_and_wait",
		Cause:   runErr,
	})

	var exErr *ExchangeFailedError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, "a.py", exErr.Context)

	var gotRun *RunFailedError
	require.ErrorAs(t, err, &gotRun)
	assert.Equal(t, RunStatusFailed, gotRun.Status)

	assert.Contains(t, err.Error(), "a.py")
	assert.Contains(t, err.Error(), "assistant run failed: boom (server_error)")
	assert.False(t, errors.Is(err, ErrUpstreamUnavailable))
}

func TestRunFailedError_Message(t *testing.T) {
	assert.Equal(t, "assistant run expired", (&RunFailedError{Status: RunStatusExpired}).Error())
	assert.Equal(t, "assistant run timeout: gave up", (&RunFailedError{Status: RunStatusTimeout, Message: "gave up"}).Error())
}
