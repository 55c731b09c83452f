package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vshagun/promptcraft/internal/generator"
	"github.com/vshagun/promptcraft/internal/ranking"
	"github.com/vshagun/promptcraft/internal/session"
)

// NewCraftCmd creates the 'craft' command, the main generation flow.
func NewCraftCmd() *cobra.Command {
	var model string
	var style string
	var temperature float64
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "craft <task description>",
		Short: "Generate an executable prompt for a task",
		Long: `Generate an executable prompt for a task, rank the AI tools for it,
and score the result. The top-ranked tool is recorded as the current
recommendation for a later 'open' command.`,
		Example: `  promptcraft craft "summarize this quarter's sales numbers"
  promptcraft craft --model gpt-4o-mini "debug my sort function"
  promptcraft craft --json "draw a lighthouse at dusk"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCraft(strings.Join(args, " "), model, style, temperature, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to use (default from config)")
	cmd.Flags().StringVar(&style, "style", "", "Generation style (default: detailed)")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0, "Sampling temperature (default: 0.4)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runCraft(task, model, style string, temperature float64, jsonOutput bool) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.close()

	result, err := d.session.Craft(context.Background(), task, generator.Options{
		Model:       model,
		Style:       style,
		Temperature: temperature,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(craftOutput{
			CraftResult: result,
			Metrics:     d.gen.Metrics(),
		})
	}

	printCraftResult(result)
	return nil
}

// craftOutput is the --json shape: the craft result plus the generator's
// counters for this invocation.
type craftOutput struct {
	session.CraftResult
	Metrics generator.Metrics `json:"generatorMetrics"`
}

func printCraftResult(result session.CraftResult) {
	gen := result.Generation

	heading := color.New(color.Bold)
	dim := color.New(color.Faint)
	warn := color.New(color.FgYellow)

	heading.Println("Crafted prompt")
	fmt.Println()
	fmt.Println(gen.Prompt)
	fmt.Println()

	dim.Printf("Model: %s", gen.Model)
	if gen.Provider != "" {
		dim.Printf(" (%s)", gen.Provider)
	}
	if gen.FallbackUsed {
		warn.Print("  [fallback]")
	}
	if gen.PartialContent {
		warn.Print("  [partial response recovered]")
	}
	fmt.Println()

	if gen.ModelCorrectionWarning != "" {
		warn.Printf("Note: %s\n", gen.ModelCorrectionWarning)
	}
	if gen.ValidationWarning != "" {
		warn.Printf("Note: %s\n", gen.ValidationWarning)
	}

	fmt.Printf("\nTask type: %s (%s confidence)\n", result.Analysis.TaskType, result.Analysis.Confidence)

	if len(result.Ranking) > 0 {
		fmt.Println("\nRecommended tools:")
		for i, ranked := range result.Ranking {
			marker := " "
			if i == 0 {
				marker = color.GreenString("✓")
			}
			name := ranked.ToolID
			if profile, ok := ranking.ByID(ranked.ToolID); ok {
				name = profile.Name
			}
			fmt.Printf("  %s %-15s %d\n", marker, name, ranked.Score)
		}
		if result.Explanation != "" {
			dim.Printf("  %s\n", result.Explanation)
		}
	}

	if result.Score != nil {
		fmt.Printf("\nQuality: %d (%s)", result.Score.TotalScore, result.Score.Grade)
		if result.Score.IsMockData {
			dim.Print("  [heuristic]")
		}
		fmt.Println()
		if result.Score.Feedback != "" {
			dim.Printf("%s\n", result.Score.Feedback)
		}
	}

	if len(gen.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range gen.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}

	fmt.Println()
	dim.Println("Run 'promptcraft open <tool>' to copy the prompt and launch a tool.")
}
