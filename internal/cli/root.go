package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vexa/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "vexa",
	Short: "Offline semantic search over your own text snippets",
	Long: `vexa stores text snippets as vector embeddings and retrieves the
most similar ones for a free-text query, entirely on-device once the
model assets are cached.

Example usage:
  vexa init                      # Create the data directory and config
  vexa fetch                     # Cache the model and vocabulary assets
  vexa add "cats nap in the sun" # Store a snippet
  vexa search -q "sleepy pets"   # Find similar snippets`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./vexa.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "data root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
