package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewTechportCommand creates the techport command.
func NewTechportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "techport PROJECT_ID",
		Short: "Look up a TechPort project",
		Long:  "Display data about a NASA technology project by its numeric TechPort ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			project, err := client.Techport(ctx, projectID)
			if err != nil {
				return fmt.Errorf("failed to get TechPort project '%s': %w", projectID, err)
			}

			return OutputPayload(project)
		},
	}
}
