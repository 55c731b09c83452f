package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates the 'stats' command.
func NewStatsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show selection history statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runStats(jsonOutput bool) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.close()

	stats, err := d.prefs.Stats()
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(stats)
	}

	if stats.TotalSelections == 0 {
		fmt.Println("No selections recorded yet.")
		fmt.Println("Run 'promptcraft craft <task>' to get started.")
		return nil
	}

	heading := color.New(color.Bold)
	heading.Println("Selection statistics")
	fmt.Printf("  Total selections:        %d\n", stats.TotalSelections)
	fmt.Printf("  Recommendation accuracy: %.0f%%\n", stats.RecommendationAccuracy*100)

	fmt.Println("\n  Task types:")
	for taskType, count := range stats.TaskTypeDistribution {
		fmt.Printf("    %-28s %d\n", taskType, count)
	}

	fmt.Println("\n  Recent selections:")
	for _, entry := range stats.RecentRecommendations {
		marker := " "
		if entry.WasRecommended {
			marker = color.GreenString("✓")
		}
		fmt.Printf("    %s %-12s %-20s %s\n",
			marker, entry.ToolID, entry.TaskType, entry.Timestamp.Format("2006-01-02 15:04"))
	}
	return nil
}
