package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"vexa/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory and default configuration",
	Long: `Create the .vexa data directory in the current (or --dir) directory
and write a default config.yaml there.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	rootDir := GetRootDir()

	if err := config.EnsureDataDir(rootDir); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	cfgPath := filepath.Join(config.DataDir(rootDir), "config.yaml")
	if err := config.DefaultConfig().Save(cfgPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Initialized %s\n", config.DataDir(rootDir))
	return nil
}
