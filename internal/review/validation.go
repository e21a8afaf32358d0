package review

import (
	"fmt"
	"strings"

	"github.com/sevigo/review-assistant/internal/core"
)

// ValidateReviewRequest checks the fields an exchange cannot do without.
// Branch is informational and may be empty.
func ValidateReviewRequest(req core.ReviewRequest) error {
	if strings.TrimSpace(req.FilePath) == "" {
		return fmt.Errorf("%w: file_path is required", core.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("%w: code is required for %s", core.ErrInvalidRequest, req.FilePath)
	}
	return nil
}

func ValidateSampleCodeRequest(req core.SampleCodeRequest) error {
	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("%w: code is required", core.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Comment) == "" {
		return fmt.Errorf("%w: comment is required", core.ErrInvalidRequest)
	}
	return nil
}
