package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vshagun/promptcraft/internal/generator"
)

// NewModelsCmd creates the 'models' command.
func NewModelsCmd() *cobra.Command {
	var chatMode bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List available generation models",
		Long: `List the models in the capability table. By default only models
allowed for executable prompt generation are shown; --chat lists
every model usable in chat mode.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModels(chatMode)
		},
	}

	cmd.Flags().BoolVar(&chatMode, "chat", false, "List chat-mode models instead")

	return cmd
}

func runModels(chatMode bool) error {
	strict := !chatMode
	mode := "Executable Prompt"
	if chatMode {
		mode = "Chat"
	}

	fmt.Printf("Models available in %s mode:\n\n", mode)

	dim := color.New(color.Faint)
	for _, id := range generator.AllowedModels(strict) {
		cap := generator.ModelCapabilities[id]
		marker := " "
		if cap.Default {
			marker = color.GreenString("✓")
		}
		fmt.Printf("  %s %-24s %s\n", marker, id, cap.Name)
		dim.Printf("    %s (%s)\n", cap.Description, cap.Provider)
	}

	fmt.Println()
	dim.Println("✓ marks the default model.")
	return nil
}
