package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewInsightCommand creates the insight command.
func NewInsightCommand() *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "insight",
		Short: "InSight Mars weather",
		Long:  "Fetch the latest weather measurements from the InSight Mars lander",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			weather, err := client.Insight(ctx, version)
			if err != nil {
				return fmt.Errorf("failed to get InSight weather: %w", err)
			}

			return OutputPayload(weather)
		},
	}

	cmd.Flags().StringVar(&version, "ver", "1.0", "API feed version")

	return cmd
}
