package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewNeoCommand creates the neo command group.
func NewNeoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "neo",
		Aliases: []string{"asteroids"},
		Short:   "Near earth objects",
		Long:    "Query the Near Earth Object Web Service (NeoWs)",
	}

	cmd.AddCommand(newNeoFeedCommand())
	cmd.AddCommand(newNeoLookupCommand())
	cmd.AddCommand(newNeoBrowseCommand())

	return cmd
}

func newNeoFeedCommand() *cobra.Command {
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "List asteroids by approach date",
		Long:  "List asteroids with a closest approach inside the given date range (max 7 days)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			feed, err := client.Neo().Feed(ctx, startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to get asteroid feed: %w", err)
			}

			if viper.GetString("output") == OutputFormatTable {
				return outputNeoFeedTable(feed)
			}

			return OutputPayload(feed)
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// outputNeoFeedTable flattens the per-date object lists into one table.
func outputNeoFeedTable(feed map[string]interface{}) error {
	byDate := mapField(feed, "near_earth_objects")
	if len(byDate) == 0 {
		_, _ = os.Stdout.WriteString("No near earth objects found\n")

		return nil
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}

	sort.Strings(dates)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Date", "Name", "Magnitude", "Hazardous")

	for _, date := range dates {
		objects, _ := byDate[date].([]interface{})
		for _, entry := range objects {
			object, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}

			_ = table.Append(
				date,
				stringField(object, "name"),
				stringValue(object["absolute_magnitude_h"]),
				stringValue(object["is_potentially_hazardous_asteroid"]),
			)
		}
	}

	_ = table.Render()

	return nil
}

func newNeoLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup ASTEROID_ID",
		Short: "Look up an asteroid",
		Long:  "Look up a single asteroid by its NASA JPL SPK-ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asteroidID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			asteroid, err := client.Neo().Lookup(ctx, asteroidID)
			if err != nil {
				return fmt.Errorf("failed to look up asteroid '%s': %w", asteroidID, err)
			}

			return OutputPayload(asteroid)
		},
	}
}

func newNeoBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the asteroid data set",
		Long:  "Page through the overall NeoWs asteroid data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			page, err := client.Neo().Browse(ctx)
			if err != nil {
				return fmt.Errorf("failed to browse asteroids: %w", err)
			}

			return OutputPayload(page)
		},
	}
}
