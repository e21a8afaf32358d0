package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sevigo/review-assistant/internal/core"
	"github.com/sevigo/review-assistant/internal/wire"
)

var branch string

var reviewCmd = &cobra.Command{
	Use:   "review <file>...",
	Short: "Review one or more source files",
	Long: `Review one or more source files with the review assistant.

Every file is sent on its own conversation thread. Files are reviewed
concurrently and printed in the order given.

Examples:
  review-cli review main.go
  review-cli review --branch feature/login --render api/*.py
  review-cli review --format json a.py b.py`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&branch, "branch", "b", "local", "branch name reported with each file")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	opts, err := newOutputOptions(outputFormat, renderMarkdown)
	if err != nil {
		return err
	}

	reqs := make([]core.ReviewRequest, 0, len(args))
	for _, path := range args {
		code, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		reqs = append(reqs, core.ReviewRequest{Branch: branch, FilePath: path, Code: string(code)})
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	assistant, cleanup, err := wire.InitializeAssistant()
	if err != nil {
		return fmt.Errorf("failed to initialize assistant: %w\n\nTip: set OPENAI_PRIVATE_KEY and PR_STATIC_ANALYSIS_ID or pass --api-key and --assistant-id", err)
	}
	defer cleanup()

	results := assistant.ReviewBatch(ctx, reqs)
	if err := writeReviewResults(cmd.OutOrStdout(), results, opts); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return errors.New(pluralize(failed, "file") + " could not be reviewed")
	}
	return nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
