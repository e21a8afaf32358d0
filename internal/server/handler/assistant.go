// Package handler provides the HTTP handlers of the review assistant API.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/review-assistant/internal/core"
)

const maxBodyBytes = 10 << 20

// AssistantHandler serves the review and sample-code endpoints.
type AssistantHandler struct {
	assistant core.CodeAssistant
	logger    *slog.Logger
}

// NewAssistantHandler creates a handler backed by the given assistant.
func NewAssistantHandler(assistant core.CodeAssistant, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		logger:    logger,
	}
}

// HealthCheck answers with the JSON string "ok".
func (h *AssistantHandler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, "ok")
}

// Review accepts either one review request object or an array of them.
// A single object yields a ReviewResponse; an array yields one ReviewResult
// per item, in order.
func (h *AssistantHandler) Review(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeDetail(w, h.logger, http.StatusUnprocessableEntity, fmt.Sprintf("could not read request body: %v", err))
		return
	}
	ctx := core.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))

	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		var reqs []core.ReviewRequest
		if err := decodeBody(trimmed, &reqs); err != nil {
			writeDetail(w, h.logger, http.StatusUnprocessableEntity, fmt.Sprintf("invalid review batch: %v", err))
			return
		}
		h.logger.Info("batch review requested", "files", len(reqs))
		results := h.assistant.ReviewBatch(ctx, reqs)
		if h.timedOut(r) {
			return
		}
		writeJSON(w, h.logger, http.StatusOK, results)

	case len(trimmed) > 0 && trimmed[0] == '{':
		var req core.ReviewRequest
		if err := decodeBody(trimmed, &req); err != nil {
			writeDetail(w, h.logger, http.StatusUnprocessableEntity, fmt.Sprintf("invalid review request: %v", err))
			return
		}
		resp, err := h.assistant.Review(ctx, req)
		if err != nil {
			if errors.Is(err, core.ErrInvalidRequest) {
				writeDetail(w, h.logger, http.StatusUnprocessableEntity, err.Error())
				return
			}
			if h.timedOut(r) {
				return
			}
			h.logger.Warn("review failed", "file_path", req.FilePath, "error", err)
			writeDetail(w, h.logger, http.StatusInternalServerError,
				fmt.Sprintf("Error processing review for %s: %v", req.FilePath, err))
			return
		}
		writeJSON(w, h.logger, http.StatusOK, resp)

	default:
		writeDetail(w, h.logger, http.StatusUnprocessableEntity, "request body must be a review object or an array of them")
	}
}

// Sample generates sample code for a review comment.
func (h *AssistantHandler) Sample(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeDetail(w, h.logger, http.StatusUnprocessableEntity, fmt.Sprintf("could not read request body: %v", err))
		return
	}

	var req core.SampleCodeRequest
	if err := decodeBody(bytes.TrimSpace(body), &req); err != nil {
		writeDetail(w, h.logger, http.StatusUnprocessableEntity, fmt.Sprintf("invalid sample code request: %v", err))
		return
	}

	ctx := core.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
	resp, err := h.assistant.GenerateSample(ctx, req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidRequest) {
			writeDetail(w, h.logger, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if h.timedOut(r) {
			return
		}
		h.logger.Warn("sample code generation failed", "error", err)
		writeDetail(w, h.logger, http.StatusInternalServerError, fmt.Sprintf("Error Generating Sample Code: %v", err))
		return
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// timedOut reports whether the request deadline has passed. The response is
// then left to middleware.Timeout, which answers 504 once the handler returns.
func (h *AssistantHandler) timedOut(r *http.Request) bool {
	if !errors.Is(r.Context().Err(), context.DeadlineExceeded) {
		return false
	}
	h.logger.Warn("request timed out", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()))
	return true
}

// decodeBody decodes exactly one JSON value; trailing data is an error.
func decodeBody(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
