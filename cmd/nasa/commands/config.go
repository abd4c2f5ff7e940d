package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/nasa/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Store and inspect the API key and endpoints used by the CLI",
	}

	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [API_KEY]",
		Short: "Store the API key",
		Long:  "Store the NASA API key in the config file. With no argument the key is prompted for without echo.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var apiKey string

			if len(args) == 1 {
				apiKey = args[0]
			} else {
				fmt.Fprint(os.Stdout, "API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))

				fmt.Fprintln(os.Stdout)

				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(byteKey))
			}

			if apiKey == "" {
				return ErrEmptyAPIKey
			}

			path, err := persistConfigValue("api-key", apiKey)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "API key saved to %s\n", path)

			return nil
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := viper.GetString("api-key")
			if apiKey != "" {
				apiKey = constants.MaskedSecret
			}

			resolved := map[string]interface{}{
				"api-key":    apiKey,
				"api":        viper.GetString("api"),
				"images-api": viper.GetString("images-api"),
				"output":     viper.GetString("output"),
			}

			return OutputPayload(resolved)
		},
	}
}

// persistConfigValue merges one value into ~/.nasa/config.yml, creating the
// file when missing, and returns the config path.
func persistConfigValue(key string, value interface{}) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".nasa")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.yml")

	settings := map[string]interface{}{}

	existing, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(existing, &settings); err != nil {
			return "", fmt.Errorf("parsing existing config: %w", err)
		}
	}

	settings[key] = value

	encoded, err := yaml.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, encoded, constants.ConfigFilePerm); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	return path, nil
}
