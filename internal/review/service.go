// Package review implements the code-review and sample-code use cases on top
// of an assistant exchanger.
package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/sevigo/review-assistant/internal/config"
	"github.com/sevigo/review-assistant/internal/core"
	"github.com/sevigo/review-assistant/internal/llm"
)

// Service implements core.CodeAssistant.
type Service struct {
	exchanger         core.Exchanger
	prompts           *llm.PromptManager
	reviewAssistantID string
	sampleAssistantID string
	batchConcurrency  int
	logger            *slog.Logger
}

var _ core.CodeAssistant = (*Service)(nil)

func NewService(cfg *config.Config, exchanger core.Exchanger, prompts *llm.PromptManager, logger *slog.Logger) *Service {
	concurrency := cfg.BatchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sampleID := cfg.OpenAI.SampleAssistantID
	if sampleID == "" {
		sampleID = cfg.OpenAI.ReviewAssistantID
	}
	return &Service{
		exchanger:         exchanger,
		prompts:           prompts,
		reviewAssistantID: cfg.OpenAI.ReviewAssistantID,
		sampleAssistantID: sampleID,
		batchConcurrency:  concurrency,
		logger:            logger,
	}
}

// Review sends the file's code verbatim to the review assistant. The reply
// becomes ReviewResponse.Code; branch and file path are echoed back.
func (s *Service) Review(ctx context.Context, req core.ReviewRequest) (*core.ReviewResponse, error) {
	if err := ValidateReviewRequest(req); err != nil {
		return nil, err
	}

	s.logger.Debug("reviewing file", "branch", req.Branch, "file_path", req.FilePath)
	reply, err := s.exchanger.Exchange(ctx, core.ExchangeRequest{
		Kind:        core.KindReview,
		AssistantID: s.reviewAssistantID,
		Payload:     req.Code,
		RequestID:   req.FilePath,
	})
	if err != nil {
		return nil, err
	}

	return &core.ReviewResponse{
		Branch:   req.Branch,
		FilePath: req.FilePath,
		Code:     reply,
	}, nil
}

// ReviewBatch reviews every file on its own thread, at most batchConcurrency
// at a time. Results keep the input order and one failed file never fails
// the others.
func (s *Service) ReviewBatch(ctx context.Context, reqs []core.ReviewRequest) []core.ReviewResult {
	results := make([]core.ReviewResult, len(reqs))

	p := pool.New().WithMaxGoroutines(s.batchConcurrency)
	for i, req := range reqs {
		i, req := i, req
		p.Go(func() {
			result := core.ReviewResult{Branch: req.Branch, FilePath: req.FilePath}
			resp, err := s.Review(ctx, req)
			if err != nil {
				result.Error = err.Error()
			} else {
				result.Code = resp.Code
			}
			results[i] = result
		})
	}
	p.Wait()

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	s.logger.Info("batch review finished", "files", len(reqs), "failed", failed)
	return results
}

// GenerateSample asks the sample-code assistant to rework the code according
// to the comment.
func (s *Service) GenerateSample(ctx context.Context, req core.SampleCodeRequest) (*core.SampleCodeResponse, error) {
	if err := ValidateSampleCodeRequest(req); err != nil {
		return nil, err
	}

	payload, err := s.prompts.RenderSampleCode(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build sample code payload: %w", err)
	}

	requestID := core.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reply, err := s.exchanger.Exchange(ctx, core.ExchangeRequest{
		Kind:        core.KindSample,
		AssistantID: s.sampleAssistantID,
		Payload:     payload,
		RequestID:   requestID,
	})
	if err != nil {
		return nil, err
	}
	return &core.SampleCodeResponse{SampleCode: reply}, nil
}
