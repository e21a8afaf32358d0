// Package exchange runs one complete round trip with an assistant: create a
// thread, post the payload, run the assistant until it settles and return its
// reply verbatim.
package exchange

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sevigo/review-assistant/internal/config"
	"github.com/sevigo/review-assistant/internal/core"
	"github.com/sevigo/review-assistant/internal/metrics"
)

// Exchange steps, as reported in ExchangeFailedError.Op.
const (
	OpCreateConversation = "create_conversation"
	OpPostMessage        = "post_message"
	OpRunAndWait         = "run_and_wait"
	OpFetchReply         = "fetch_latest_reply"
)

// Service implements core.Exchanger on top of a core.AssistantClient.
// It holds no per-exchange state; every call gets its own thread.
type Service struct {
	client  core.AssistantClient
	poll    config.PollConfig
	metrics *metrics.Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

var _ core.Exchanger = (*Service)(nil)

// NewService creates an exchange service.
func NewService(client core.AssistantClient, cfg *config.Config, m *metrics.Metrics, tracer trace.Tracer, logger *slog.Logger) *Service {
	if client == nil {
		panic("assistant client cannot be nil")
	}
	return &Service{
		client:  client,
		poll:    cfg.Poll,
		metrics: m,
		tracer:  tracer,
		logger:  logger,
	}
}

// Exchange submits req.Payload to req.AssistantID and returns the reply text
// unmodified. Any failure is returned as *core.ExchangeFailedError.
func (s *Service) Exchange(ctx context.Context, req core.ExchangeRequest) (reply string, err error) {
	ctx, span := s.tracer.Start(ctx, "exchange."+string(req.Kind), trace.WithAttributes(
		attribute.String("assistant.kind", string(req.Kind)),
		attribute.String("assistant.id", req.AssistantID),
		attribute.String("exchange.request_id", req.RequestID),
	))
	defer span.End()

	done := s.metrics.ExchangeStarted(req.Kind)
	defer func() {
		done(outcome(err))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	logger := s.logger.With("kind", req.Kind, "request_id", req.RequestID)
	logger.Debug("starting assistant exchange", "assistant_id", req.AssistantID, "payload_bytes", len(req.Payload))

	threadID, err := s.client.CreateConversation(ctx)
	if err != nil {
		return "", s.fail(logger, req, OpCreateConversation, err)
	}
	span.SetAttributes(attribute.String("thread.id", threadID))
	span.AddEvent("thread created")

	if err := s.client.PostMessage(ctx, threadID, core.RoleUser, req.Payload); err != nil {
		return "", s.fail(logger, req, OpPostMessage, err)
	}
	span.AddEvent("message posted")

	run, err := s.RunAndWait(ctx, threadID, req.AssistantID)
	if err != nil {
		return "", s.fail(logger, req, OpRunAndWait, err)
	}
	span.SetAttributes(attribute.String("run.id", run.ID))
	span.AddEvent("run completed")

	reply, err = s.client.FetchLatestReply(ctx, threadID)
	if err != nil {
		return "", s.fail(logger, req, OpFetchReply, err)
	}

	logger.Debug("assistant exchange completed", "thread_id", threadID, "run_id", run.ID, "reply_bytes", len(reply))
	return reply, nil
}

func (s *Service) fail(logger *slog.Logger, req core.ExchangeRequest, op string, cause error) error {
	logger.Warn("assistant exchange failed", "op", op, "error", cause)
	return &core.ExchangeFailedError{
		Context: req.RequestID,
		Kind:    req.Kind,
		Op:      op,
		Cause:   cause,
	}
}

// outcome is the metrics label for an exchange result.
func outcome(err error) string {
	var runErr *core.RunFailedError
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &runErr):
		if runErr.Status == core.RunStatusTimeout {
			return "timeout"
		}
		return "run_failed"
	case errors.Is(err, core.ErrInvalidThread):
		return "invalid_thread"
	case errors.Is(err, core.ErrEmptyReply):
		return "empty_reply"
	case errors.Is(err, core.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
