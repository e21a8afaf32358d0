package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sevigo/review-assistant/internal/core"
	"github.com/sevigo/review-assistant/internal/wire"
)

var (
	codeFile string
	comment  string
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate sample code that applies a review comment",
	Long: `Ask the sample-code assistant to rework a piece of code according to a
review comment.

Examples:
  review-cli sample --code-file f.py --comment "add type hints"
  review-cli sample --code-file - --comment "use a context manager" < f.py`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	sampleCmd.Flags().StringVar(&codeFile, "code-file", "", "file holding the code, or - for stdin")
	sampleCmd.Flags().StringVarP(&comment, "comment", "c", "", "review comment to apply")
	_ = sampleCmd.MarkFlagRequired("code-file")
	_ = sampleCmd.MarkFlagRequired("comment")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	opts, err := newOutputOptions(outputFormat, renderMarkdown)
	if err != nil {
		return err
	}

	code, err := readCode(cmd, codeFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	assistant, cleanup, err := wire.InitializeAssistant()
	if err != nil {
		return fmt.Errorf("failed to initialize assistant: %w", err)
	}
	defer cleanup()

	resp, err := assistant.GenerateSample(ctx, core.SampleCodeRequest{Code: code, Comment: comment})
	if err != nil {
		return fmt.Errorf("error generating sample code: %w", err)
	}
	return writeSample(cmd.OutOrStdout(), resp, opts)
}

func readCode(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read code from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
