package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/review-assistant/internal/core"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	renderWidth = 100
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	errorColor = color.New(color.FgRed)
	dimColor   = color.New(color.FgHiBlack)
)

type outputOptions struct {
	format string
	// style is a glamour standard style; empty means plain text.
	style string
}

func newOutputOptions(format string, render bool) (outputOptions, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case formatText, formatJSON, formatYAML:
	default:
		return outputOptions{}, fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
	}

	opts := outputOptions{format: format}
	if render && format == formatText {
		opts.style = "dark"
		if color.NoColor {
			opts.style = "notty"
		}
	}
	return opts, nil
}

func writeReviewResults(w io.Writer, results []core.ReviewResult, opts outputOptions) error {
	switch opts.format {
	case formatJSON:
		return writeJSON(w, results)
	case formatYAML:
		return writeYAML(w, results)
	}

	separator := strings.Repeat("─", 60)
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		titleColor.Fprintln(w, separator)
		titleColor.Fprintf(w, "%s", r.FilePath)
		dimColor.Fprintf(w, " (%s)\n", r.Branch)
		titleColor.Fprintln(w, separator)

		if r.Failed() {
			errorColor.Fprintf(w, "review failed: %s\n", r.Error)
			continue
		}
		body, err := renderText(r.Code, opts.style)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, body)
	}
	return nil
}

func writeSample(w io.Writer, resp *core.SampleCodeResponse, opts outputOptions) error {
	switch opts.format {
	case formatJSON:
		return writeJSON(w, resp)
	case formatYAML:
		return writeYAML(w, resp)
	}

	body, err := renderText(resp.SampleCode, opts.style)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, body)
	return err
}

func renderText(text, style string) (string, error) {
	if style == "" || text == "" {
		return strings.TrimRight(text, "\n"), nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
