package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewScoreCmd creates the 'score' command.
func NewScoreCmd() *cobra.Command {
	var tool string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "score <prompt>",
		Short: "Score a prompt's quality",
		Long: `Score a prompt against the remote scorer. When the scorer is
unreachable the local heuristic answers instead and the result is
marked as estimated.`,
		Example: `  promptcraft score "Task to perform: summarize the report..."
  promptcraft score --tool claude "..."`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(strings.Join(args, " "), tool, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&tool, "tool", "", "Tool to score against (default: chatgpt)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runScore(prompt, tool string, jsonOutput bool) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.close()

	d.scorer.SetTool(tool)
	score, err := d.scorer.Score(context.Background(), prompt)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(score)
	}

	heading := color.New(color.Bold)
	dim := color.New(color.Faint)

	heading.Printf("Score: %d (%s)\n", score.TotalScore, score.Grade)
	fmt.Printf("  Clarity:   %d\n", score.Clarity)
	fmt.Printf("  Structure: %d\n", score.Structure)
	fmt.Printf("  Context:   %d\n", score.Context)
	if score.Feedback != "" {
		fmt.Println(score.Feedback)
	}
	if score.IsMockData {
		dim.Println("(estimated locally; scorer unreachable)")
	}
	return nil
}
