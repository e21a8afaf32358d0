package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-assistant/internal/config"
	"github.com/sevigo/review-assistant/internal/core"
)

// fakeUpstream speaks the subset of the Assistants wire format the client uses.
type fakeUpstream struct {
	mu       sync.Mutex
	threads  map[string][]map[string]any
	runs     map[string]string
	requests atomic.Int32
	lastAuth string
	lastBody map[string]any
	lastList string
	failWith int
}

func newFakeUpstream(t *testing.T) (*fakeUpstream, *Client) {
	t.Helper()
	f := &fakeUpstream{
		threads: map[string][]map[string]any{},
		runs:    map[string]string{},
	}

	mux := chi.NewRouter()
	mux.Post("/v1/threads", f.createThread)
	mux.Post("/v1/threads/{thread}/messages", f.createMessage)
	mux.Get("/v1/threads/{thread}/messages", f.listMessages)
	mux.Post("/v1/threads/{thread}/runs", f.createRun)
	mux.Get("/v1/threads/{thread}/runs/{run}", f.getRun)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		f.mu.Lock()
		f.lastAuth = r.Header.Get("Authorization")
		failWith := f.failWith
		f.mu.Unlock()
		if failWith != 0 {
			writeJSON(w, failWith, map[string]any{"error": map[string]any{"message": "upstream broke", "type": "server_error"}})
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{OpenAI: config.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1/"}}
	client, err := New(cfg, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return f, client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeUpstream) decode(r *http.Request) map[string]any {
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)
	f.mu.Lock()
	f.lastBody = body
	f.mu.Unlock()
	return body
}

func (f *fakeUpstream) createThread(w http.ResponseWriter, r *http.Request) {
	f.decode(r)
	f.mu.Lock()
	id := fmt.Sprintf("thread_%d", len(f.threads)+1)
	f.threads[id] = nil
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "object": "thread", "created_at": 1, "metadata": map[string]any{}})
}

func (f *fakeUpstream) createMessage(w http.ResponseWriter, r *http.Request) {
	body := f.decode(r)
	thread := chi.URLParam(r, "thread")

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.threads[thread]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]any{"message": "No thread found", "type": "invalid_request_error"}})
		return
	}
	msg := textMessage(fmt.Sprintf("msg_%d", len(f.threads[thread])+1), fmt.Sprint(body["role"]), fmt.Sprint(body["content"]))
	f.threads[thread] = append(f.threads[thread], msg)
	writeJSON(w, http.StatusOK, msg)
}

func (f *fakeUpstream) listMessages(w http.ResponseWriter, r *http.Request) {
	thread := chi.URLParam(r, "thread")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = r.URL.RawQuery

	msgs := f.threads[thread]
	data := make([]map[string]any, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		data = append(data, msgs[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"object": "list", "data": data, "has_more": false})
}

func (f *fakeUpstream) createRun(w http.ResponseWriter, r *http.Request) {
	body := f.decode(r)
	thread := chi.URLParam(r, "thread")
	f.mu.Lock()
	id := fmt.Sprintf("run_%d", len(f.runs)+1)
	f.runs[id] = "queued"
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"id": id, "object": "thread.run", "thread_id": thread,
		"assistant_id": body["assistant_id"], "status": "queued",
	})
}

func (f *fakeUpstream) getRun(w http.ResponseWriter, r *http.Request) {
	thread, run := chi.URLParam(r, "thread"), chi.URLParam(r, "run")
	f.mu.Lock()
	status := f.runs[run]
	if status == "completed" {
		f.threads[thread] = append(f.threads[thread], textMessage("msg_reply", "assistant", "Looks fine."))
	}
	f.mu.Unlock()

	resp := map[string]any{"id": run, "object": "thread.run", "thread_id": thread, "status": status}
	if status == "failed" {
		resp["last_error"] = map[string]any{"code": "server_error", "message": "model crashed"}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (f *fakeUpstream) setRunStatus(run, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs[run] = status
}

func textMessage(id, role, text string) map[string]any {
	return map[string]any{
		"id": id, "object": "thread.message", "role": role,
		"content": []any{map[string]any{"type": "text", "text": map[string]any{"value": text, "annotations": []any{}}}},
	}
}

func TestClient_FullExchange(t *testing.T) {
	ctx := context.Background()
	f, client := newFakeUpstream(t)

	threadID, err := client.CreateConversation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "thread_1", threadID)
	assert.Equal(t, "Bearer sk-test", f.lastAuth)

	require.NoError(t, client.PostMessage(ctx, threadID, core.RoleUser, "print(1)"))
	assert.Equal(t, "user", f.lastBody["role"])
	assert.Equal(t, "print(1)", f.lastBody["content"])

	run, err := client.StartRun(ctx, threadID, "asst_review")
	require.NoError(t, err)
	assert.Equal(t, "asst_review", f.lastBody["assistant_id"])
	assert.Equal(t, core.RunStatusQueued, run.Status)
	assert.Equal(t, threadID, run.ThreadID)

	f.setRunStatus(run.ID, "completed")
	run, err = client.GetRun(ctx, threadID, run.ID)
	require.NoError(t, err)
	assert.Equal(t, core.RunStatusCompleted, run.Status)

	reply, err := client.FetchLatestReply(ctx, threadID)
	require.NoError(t, err)
	assert.Equal(t, "Looks fine.", reply)
	assert.Contains(t, f.lastList, "order=desc")
}

func TestClient_RunLastError(t *testing.T) {
	ctx := context.Background()
	f, client := newFakeUpstream(t)

	threadID, err := client.CreateConversation(ctx)
	require.NoError(t, err)
	run, err := client.StartRun(ctx, threadID, "asst_review")
	require.NoError(t, err)

	f.setRunStatus(run.ID, "failed")
	run, err = client.GetRun(ctx, threadID, run.ID)
	require.NoError(t, err)
	assert.Equal(t, core.RunStatusFailed, run.Status)
	assert.Equal(t, "server_error", run.LastErrorCode)
	assert.Equal(t, "model crashed", run.LastErrorMessage)
}

func TestClient_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown thread", func(t *testing.T) {
		_, client := newFakeUpstream(t)
		err := client.PostMessage(ctx, "thread_missing", core.RoleUser, "hello")
		require.ErrorIs(t, err, core.ErrInvalidThread)
		assert.NotErrorIs(t, err, core.ErrUpstreamUnavailable)
	})

	t.Run("server error is not retried", func(t *testing.T) {
		f, client := newFakeUpstream(t)
		f.failWith = http.StatusInternalServerError

		_, err := client.CreateConversation(ctx)
		require.ErrorIs(t, err, core.ErrUpstreamUnavailable)
		assert.Equal(t, int32(1), f.requests.Load())
	})

	t.Run("empty content never leaves the process", func(t *testing.T) {
		f, client := newFakeUpstream(t)
		err := client.PostMessage(ctx, "thread_1", core.RoleUser, "  \n")
		require.ErrorIs(t, err, core.ErrInvalidRequest)
		assert.Equal(t, int32(0), f.requests.Load())
	})

	t.Run("no assistant reply", func(t *testing.T) {
		_, client := newFakeUpstream(t)
		threadID, err := client.CreateConversation(ctx)
		require.NoError(t, err)
		require.NoError(t, client.PostMessage(ctx, threadID, core.RoleUser, "hello"))

		_, err = client.FetchLatestReply(ctx, threadID)
		require.ErrorIs(t, err, core.ErrEmptyReply)
	})

	t.Run("cancelled context", func(t *testing.T) {
		_, client := newFakeUpstream(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := client.CreateConversation(cctx)
		require.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, core.ErrUpstreamUnavailable)
	})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(&config.Config{}, nil, slog.Default())
	assert.Error(t, err)
}
