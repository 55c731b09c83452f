package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vshagun/promptcraft/internal/platform"
	"github.com/vshagun/promptcraft/internal/ranking"
)

// NewToolsCmd creates the 'tools' command.
func NewToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List launchable AI tools",
		Long: `List every AI platform a crafted prompt can be handed to. Tools with
a ranking profile participate in recommendations; the rest are
launch-only destinations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTools()
		},
	}
	return cmd
}

func runTools() error {
	dim := color.New(color.Faint)

	fmt.Printf("AI tools (%d):\n\n", len(platform.Platforms))
	for _, p := range platform.Platforms {
		fmt.Printf("  %s\n", p.Name)
		fmt.Printf("    ID:   %s\n", p.ID)
		fmt.Printf("    URL:  %s\n", p.LaunchURL)
		fmt.Printf("    Tags: %s\n", strings.Join(p.Tags, ", "))
		if profile, ok := ranking.ByID(p.ID); ok {
			fmt.Printf("    Rank: base weight %d, strengths %s\n",
				profile.Weight, strings.Join(profile.Strengths, ", "))
		} else {
			dim.Println("    Rank: launch-only (not ranked)")
		}
		fmt.Println()
	}
	return nil
}
