package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewApodCommand creates the apod command.
func NewApodCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apod",
		Short: "Astronomy Picture of the Day",
		Long:  "Fetch today's Astronomy Picture of the Day with its explanation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			picture, err := client.Apod(ctx)
			if err != nil {
				return fmt.Errorf("failed to get picture of the day: %w", err)
			}

			return OutputPayload(picture)
		},
	}
}
