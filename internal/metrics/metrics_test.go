package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-assistant/internal/core"
)

func TestMetrics_Exchange(t *testing.T) {
	m := New(prometheus.NewRegistry())

	done := m.ExchangeStarted(core.KindReview)
	assert.InDelta(t, 1, testutil.ToFloat64(m.inflight.WithLabelValues("review")), 0)

	done("success")
	assert.InDelta(t, 0, testutil.ToFloat64(m.inflight.WithLabelValues("review")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.exchanges.WithLabelValues("review", "success")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))

	m.ObserveRun(core.RunStatusCompleted, 3)
	assert.Equal(t, 1, testutil.CollectAndCount(m.runPolls))
}

func TestMetrics_Handler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ExchangeStarted(core.KindSample)("run_failed")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `review_assistant_exchanges_total{kind="sample",outcome="run_failed"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ExchangeStarted(core.KindReview)("success")
		m.ObserveRun(core.RunStatusFailed, 1)
	})
}
