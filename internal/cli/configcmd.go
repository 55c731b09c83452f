package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vshagun/promptcraft/internal/config"
)

// NewConfigCmd creates the 'config' command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage promptcraft configuration",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var workerURL string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Example: `  promptcraft config init --worker-url https://prompt-worker.example.com
  promptcraft config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(workerURL, force)
		},
	}

	cmd.Flags().StringVar(&workerURL, "worker-url", "", "Generation worker base URL")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")

	return cmd
}

func runConfigInit(workerURL string, force bool) error {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.NewConfig()
	cfg.WorkerURL = workerURL

	if err := config.Save(cfg, path); err != nil {
		return err
	}

	color.Green("✓ Wrote %s", path)
	if workerURL == "" {
		fmt.Println("No worker URL set; generation will use the local fallback.")
	}
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}
}
