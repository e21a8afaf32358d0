package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-assistant/internal/config"
	"github.com/sevigo/review-assistant/internal/core"
	"github.com/sevigo/review-assistant/internal/metrics"
)

func TestNewRouter(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Port: "0", RequestTimeout: time.Second}}
	m := metrics.New(prometheus.NewRegistry())
	m.ObserveRun("completed", 2)

	srv := httptest.NewServer(NewRouter(cfg, nil, m, slog.New(slog.NewTextHandler(io.Discard, nil))))
	defer srv.Close()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"health check", http.MethodGet, "/api/health-check", http.StatusOK, `"ok"`},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "review_assistant_run_polls"},
		{"unknown route", http.MethodGet, "/api/unknown", http.StatusNotFound, ""},
		{"wrong method", http.MethodGet, "/api/pulls", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			if tt.wantBody != "" {
				assert.True(t, strings.Contains(string(body), tt.wantBody), "body %q should contain %q", body, tt.wantBody)
			}
		})
	}
}

// stalledAssistant blocks every call until the request context ends.
type stalledAssistant struct{}

func (stalledAssistant) Review(ctx context.Context, req core.ReviewRequest) (*core.ReviewResponse, error) {
	<-ctx.Done()
	return nil, fmt.Errorf("review %s: %w", req.FilePath, ctx.Err())
}

func (stalledAssistant) ReviewBatch(ctx context.Context, reqs []core.ReviewRequest) []core.ReviewResult {
	<-ctx.Done()
	results := make([]core.ReviewResult, len(reqs))
	for i, req := range reqs {
		results[i] = core.ReviewResult{Branch: req.Branch, FilePath: req.FilePath, Error: ctx.Err().Error()}
	}
	return results
}

func (stalledAssistant) GenerateSample(ctx context.Context, _ core.SampleCodeRequest) (*core.SampleCodeResponse, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestNewRouter_RequestTimeout(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Port: "0", RequestTimeout: 20 * time.Millisecond}}
	srv := httptest.NewServer(NewRouter(cfg, stalledAssistant{}, metrics.New(prometheus.NewRegistry()),
		slog.New(slog.NewTextHandler(io.Discard, nil))))
	defer srv.Close()

	tests := []struct {
		name string
		path string
		body string
	}{
		{"single review", "/api/pulls", `{"branch":"main","file_path":"a.py","code":"print(1)"}`},
		{"batch review", "/api/pulls", `[{"branch":"main","file_path":"a.py","code":"print(1)"}]`},
		{"sample", "/api/sample", `{"code":"def f(): pass","comment":"add type hints"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+tt.path, "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.NotContains(t, string(body), "detail", "the handler must leave the response to the timeout middleware")
		})
	}
}
