package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the 'history' command.
func NewHistoryCmd() *cobra.Command {
	var limit int
	var jsonOutput bool
	var full bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently crafted prompts",
		Example: `  promptcraft history
  promptcraft history --limit 5 --full`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(limit, full, jsonOutput)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of prompts to show")
	cmd.Flags().BoolVar(&full, "full", false, "Show full prompt text")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runHistory(limit int, full, jsonOutput bool) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.close()

	prompts, err := d.store.Prompts(limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(prompts)
	}

	if len(prompts) == 0 {
		fmt.Println("No prompts crafted yet.")
		return nil
	}

	dim := color.New(color.Faint)
	for _, rec := range prompts {
		fmt.Printf("%s  %s\n", rec.Timestamp.Format("2006-01-02 15:04"), rec.Input)
		dim.Printf("  model: %s\n", rec.Model)
		if full {
			fmt.Println(rec.Output)
		} else {
			fmt.Printf("  %s\n", firstLine(rec.Output))
		}
		fmt.Println()
	}
	return nil
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
