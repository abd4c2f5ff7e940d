package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewImagesCommand creates the images command group. These commands hit the
// public media library host and work without an API key being configured,
// but the shared client still requires one; see CreateClient.
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"media"},
		Short:   "NASA image and video library",
		Long:    "Search and inspect media in the NASA image and video library",
	}

	cmd.AddCommand(newImagesSearchCommand())
	cmd.AddCommand(newImagesAssetCommand())
	cmd.AddCommand(newImagesMetadataCommand())
	cmd.AddCommand(newImagesCaptionsCommand())

	return cmd
}

func newImagesSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search the media library",
		Long:  "Free-text search over the NASA image and video library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			results, err := client.Images().Search(ctx, query)
			if err != nil {
				return fmt.Errorf("failed to search media library for '%s': %w", query, err)
			}

			if viper.GetString("output") == OutputFormatTable {
				return outputSearchResultsTable(results)
			}

			return OutputPayload(results)
		},
	}
}

// outputSearchResultsTable renders collection items; each item carries its
// descriptive fields in a single-element data array.
func outputSearchResultsTable(results map[string]interface{}) error {
	collection := mapField(results, "collection")
	items := sliceField(collection, "items")

	if len(items) == 0 {
		_, _ = os.Stdout.WriteString("No media found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("NASA ID", "Media Type", "Date Created", "Title")

	for _, entry := range items {
		item, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		data := sliceField(item, "data")
		if len(data) == 0 {
			continue
		}

		fields, ok := data[0].(map[string]interface{})
		if !ok {
			continue
		}

		_ = table.Append(
			stringField(fields, "nasa_id"),
			stringField(fields, "media_type"),
			stringField(fields, "date_created"),
			stringField(fields, "title"),
		)
	}

	_ = table.Render()

	return nil
}

func newImagesAssetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "asset NASA_ID",
		Short: "Get a media asset manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			asset, err := client.Images().Asset(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get asset '%s': %w", args[0], err)
			}

			return OutputPayload(asset)
		},
	}
}

func newImagesMetadataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata NASA_ID",
		Short: "Get media metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			metadata, err := client.Images().Metadata(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get metadata for '%s': %w", args[0], err)
			}

			return OutputPayload(metadata)
		},
	}
}

func newImagesCaptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "captions NASA_ID",
		Short: "Get video captions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			captions, err := client.Images().Captions(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get captions for '%s': %w", args[0], err)
			}

			return OutputPayload(captions)
		},
	}
}
