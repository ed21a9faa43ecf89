package cmd

import (
	"fmt"
	"os"

	"github.com/gaurabsaha12345/master-prompter/internal/logger"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "prompter",
	Short: "Master Prompter: structured prompt assembly for generative AI",
	Long: `prompter turns a raw idea into a structured, provider-aware prompt.

Commands:
  prompter optimize   Assemble a prompt from flags or a JSON request file
  prompter serve      Run the HTTP API and the builder web page
  prompter mcp        Expose the same operations as MCP stdio tools`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Parse and set log level
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info",
		"Log level: trace, debug, info, warn, error, fatal, panic")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
