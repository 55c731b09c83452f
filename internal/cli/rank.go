package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vshagun/promptcraft/internal/classify"
	"github.com/vshagun/promptcraft/internal/ranking"
)

// NewRankCmd creates the 'rank' command.
func NewRankCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rank <task description>",
		Short: "Classify a task and rank the AI tools for it",
		Example: `  promptcraft rank "debug my python script"
  promptcraft rank --json "draft a client proposal"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(strings.Join(args, " "), jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runRank(task string, jsonOutput bool) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.close()

	analysis := classify.Classify(task)
	ranked := ranking.Rank(analysis, d.prefs)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(struct {
			TaskType   string               `json:"taskType"`
			Confidence classify.Confidence  `json:"confidence"`
			Ranking    []ranking.RankedTool `json:"ranking"`
		}{analysis.TaskType, analysis.Confidence, ranked})
	}

	fmt.Printf("Task type: %s (%s confidence)\n\n", analysis.TaskType, analysis.Confidence)

	for i, r := range ranked {
		profile, _ := ranking.ByID(r.ToolID)
		marker := " "
		if i == 0 {
			marker = color.GreenString("✓")
		}
		fmt.Printf("  %s %-15s %4d  %s\n", marker, profile.Name, r.Score, profile.Explanation)
	}

	if pref, ok := d.prefs.Preference(analysis.TaskType); ok {
		fmt.Printf("\nYour usual choice for %s tasks: %s (confidence %.1f)\n",
			analysis.TaskType, pref, d.prefs.Confidence(analysis.TaskType))
	}
	return nil
}
