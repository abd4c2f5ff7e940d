package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/nasa/cmd/nasa/commands"
	"github.com/fivetwenty-io/nasa/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "nasa",
	Short: "NASA Open APIs CLI",
	Long: `A command-line interface for the NASA Open APIs.

Query the Astronomy Picture of the Day, near earth objects, Landsat earth
imagery, InSight Mars weather, TechPort projects, and the NASA image and
video library. An API key from https://api.nasa.gov is required for
everything except the image library commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.nasa/config.yml)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "NASA API key")
	rootCmd.PersistentFlags().StringP("api", "a", "", "general API endpoint URL")
	rootCmd.PersistentFlags().String("images-api", "", "image library endpoint URL")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format (json, yaml, table)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api-key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("images-api", rootCmd.PersistentFlags().Lookup("images-api"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewApodCommand())
	rootCmd.AddCommand(commands.NewNeoCommand())
	rootCmd.AddCommand(commands.NewEarthCommand())
	rootCmd.AddCommand(commands.NewInsightCommand())
	rootCmd.AddCommand(commands.NewTechportCommand())
	rootCmd.AddCommand(commands.NewImagesCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Create config directory if it doesn't exist
		configDir := filepath.Join(home, ".nasa")
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		}

		// Search config in ~/.nasa/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match (NASA_API_KEY etc.)
	viper.SetEnvPrefix("NASA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
