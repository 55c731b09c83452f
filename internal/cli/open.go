package cli

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vshagun/promptcraft/internal/classify"
	"github.com/vshagun/promptcraft/internal/platform"
	"github.com/vshagun/promptcraft/internal/ranking"
)

// NewOpenCmd creates the 'open' command: copy-then-launch.
func NewOpenCmd() *cobra.Command {
	var noCopy bool

	cmd := &cobra.Command{
		Use:   "open <tool>",
		Short: "Copy the last crafted prompt and open an AI tool",
		Long: `Copy the most recently crafted prompt to the clipboard and print the
tool's launch URL. The selection is recorded and feeds future
recommendations for this kind of task.`,
		Example: `  promptcraft open deepseek
  promptcraft open chatgpt --no-copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(args[0], noCopy)
		},
	}

	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "Skip copying the prompt to the clipboard")

	return cmd
}

func runOpen(toolID string, noCopy bool) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.close()

	p, ok := platform.ByID(toolID)
	if !ok {
		return fmt.Errorf("unknown tool %q (run 'promptcraft tools' for the list)", toolID)
	}

	prompts, err := d.store.Prompts(1)
	if err != nil || len(prompts) == 0 {
		return fmt.Errorf("no crafted prompt to open; run 'promptcraft craft <task>' first")
	}
	prompt := prompts[0].Output

	// Copy first, launch second, matching the flow users expect: by the
	// time the tool is in front of them the prompt is already on the
	// clipboard.
	copied := false
	if !noCopy {
		if err := clipboard.WriteAll(prompt); err != nil {
			log.Printf("Warning: clipboard copy failed: %v", err)
		} else {
			copied = true
		}
	}

	taskType := classify.Classify(prompt).TaskType
	explanation := ""
	if profile, found := ranking.ByID(toolID); found {
		explanation = profile.Name + ": " + profile.Explanation
	}
	// A fresh process has no recommendation to compare against.
	if err := d.prefs.LogSelection(taskType, toolID, false, explanation); err != nil {
		log.Printf("Warning: failed to log selection: %v", err)
	}
	if err := d.prefs.SavePreference(taskType, toolID, explanation); err != nil {
		log.Printf("Warning: failed to save preference: %v", err)
	}

	if copied {
		color.Green("✓ Prompt copied to clipboard")
	} else if !noCopy {
		color.Yellow("Could not copy automatically; copy the prompt manually")
	}
	fmt.Printf("Open %s: %s\n", p.Name, p.LaunchURL)
	return nil
}
