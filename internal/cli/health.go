package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewHealthCmd creates the 'health' command.
func NewHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the generation worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth()
		},
	}
	return cmd
}

func runHealth() error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.close()

	if d.cfg.WorkerURL == "" {
		color.Yellow("No worker configured; generation uses the local fallback.")
		fmt.Println("Set workerUrl in ~/.promptcraft.json to enable remote generation.")
		return nil
	}

	status, err := d.gen.Health(context.Background())
	if err != nil {
		color.Red("✗ Worker unreachable: %v", err)
		fmt.Println("Generation will degrade to fallback models or the local template.")
		return nil
	}

	color.Green("✓ Worker %s", status.Status)
	fmt.Printf("  URL:     %s\n", d.cfg.WorkerURL)
	if status.Version != "" {
		fmt.Printf("  Version: %s\n", status.Version)
	}
	if status.Models > 0 {
		fmt.Printf("  Models:  %d\n", status.Models)
	}
	if len(status.AvailableModels) > 0 {
		fmt.Printf("  Available: %s\n", strings.Join(status.AvailableModels, ", "))
	}
	return nil
}
