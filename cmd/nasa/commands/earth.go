package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewEarthCommand creates the earth command group.
func NewEarthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "earth",
		Short: "Landsat earth imagery",
		Long:  "Query Landsat 8 imagery for a point on the earth",
	}

	cmd.AddCommand(newEarthImageryCommand())
	cmd.AddCommand(newEarthAssetsCommand())

	return cmd
}

func newEarthImageryCommand() *cobra.Command {
	var (
		lon, lat float64
		date     string
	)

	cmd := &cobra.Command{
		Use:   "imagery",
		Short: "Fetch the closest image",
		Long:  "Fetch the Landsat 8 image closest to the given point and date",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			image, err := client.Earth().Imagery(ctx, lon, lat, date)
			if err != nil {
				return fmt.Errorf("failed to get earth imagery: %w", err)
			}

			return OutputPayload(image)
		},
	}

	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("lon")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newEarthAssetsCommand() *cobra.Command {
	var (
		lon, lat, dim float64
		date          string
	)

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List available imagery",
		Long:  "List the imagery available for the given point, date, and area",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			assets, err := client.Earth().Assets(ctx, lon, lat, date, dim)
			if err != nil {
				return fmt.Errorf("failed to get earth assets: %w", err)
			}

			return OutputPayload(assets)
		},
	}

	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().StringVar(&date, "date", "", "beginning of the search period (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&dim, "dim", 0.025, "width and height of the area in degrees")
	_ = cmd.MarkFlagRequired("lon")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
