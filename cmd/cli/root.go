package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	apiKey            string
	assistantID       string
	sampleAssistantID string
	outputFormat      string
	renderMarkdown    bool
)

var rootCmd = &cobra.Command{
	Use:   "review-cli",
	Short: "review-cli sends code to the hosted review assistants from the command line.",
	Long: `A CLI for the review assistant. It runs the same exchanges as the HTTP
service, directly against the configured assistants, without starting a server.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&apiKey, "api-key", "k", "", "assistant service API key")
	flags.StringVar(&assistantID, "assistant-id", "", "review assistant id")
	flags.StringVar(&sampleAssistantID, "sample-assistant-id", "", "sample-code assistant id (defaults to the review assistant)")
	flags.StringVarP(&outputFormat, "format", "f", formatText, "output format: text, json or yaml")
	flags.BoolVar(&renderMarkdown, "render", false, "render assistant replies as markdown (text format only)")

	bindings := map[string]string{
		"OPENAI_PRIVATE_KEY":      "api-key",
		"PR_STATIC_ANALYSIS_ID":   "assistant-id",
		"SAMPLECODE_GENERATOR_ID": "sample-assistant-id",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads in ENV variables if set. Logs default to stderr so stdout
// carries only command output; LOG_OUTPUT from the environment or .env wins.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("LOG_OUTPUT", "stderr")
}
