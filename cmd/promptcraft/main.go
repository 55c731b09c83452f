/*
Package main is the entry point for the promptcraft CLI.

promptcraft turns a rough task description into an executable prompt, ranks
the AI tools best suited to run it, learns the user's tool preferences, and
scores prompt quality.

Usage:
  promptcraft [command]

Available Commands:
  craft       Generate an executable prompt for a task
  rank        Classify a task and rank the AI tools for it
  score       Score a prompt's quality
  open        Copy the last crafted prompt and open an AI tool
  history     Show recently crafted prompts
  stats       Show selection history statistics
  models      List available generation models
  tools       List launchable AI tools
  health      Check the generation worker
  config      Manage promptcraft configuration
  help        Help about any command

Examples:
  # Craft a prompt and see tool recommendations
  promptcraft craft "summarize this quarter's sales numbers"

  # Hand the prompt to the recommended tool
  promptcraft open deepseek

  # Check prompt quality on its own
  promptcraft score "Task to perform: ..."
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vshagun/promptcraft/internal/cli"
	"github.com/vshagun/promptcraft/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "promptcraft",
		Short: "Craft executable prompts and route them to the right AI tool",
		Long: `promptcraft is a prompt crafting pipeline: it generates an executable
prompt from a rough task description, classifies the task, ranks the
AI tools for it (learning your preferences over time), and scores the
result.

Generation degrades gracefully: fallback models, partial-response
recovery, and a local template keep the pipeline producing output even
when the remote worker is down.`,
		Version: version.GetVersion(),
	}

	// Add subcommands
	rootCmd.AddCommand(cli.NewCraftCmd())
	rootCmd.AddCommand(cli.NewRankCmd())
	rootCmd.AddCommand(cli.NewScoreCmd())
	rootCmd.AddCommand(cli.NewOpenCmd())
	rootCmd.AddCommand(cli.NewHistoryCmd())
	rootCmd.AddCommand(cli.NewStatsCmd())
	rootCmd.AddCommand(cli.NewModelsCmd())
	rootCmd.AddCommand(cli.NewToolsCmd())
	rootCmd.AddCommand(cli.NewHealthCmd())
	rootCmd.AddCommand(cli.NewConfigCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
