package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and cache the model assets",
	Long: `Ensure the model weights and tokenizer vocabulary are present in the
local asset cache. Already-cached assets are not downloaded again, so
the command is safe to re-run after an interrupted download.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	assets, prefs, err := buildAssets()
	if err != nil {
		return err
	}
	defer prefs.Close()

	for _, request := range []string{cfg.Model.VocabURL, cfg.Model.ModelURL} {
		if _, err := assets.Ensure(cmd.Context(), request); err != nil {
			return fmt.Errorf("failed to fetch asset: %w", err)
		}
	}

	fmt.Println("Model assets are cached")
	return nil
}
