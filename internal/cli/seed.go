package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vexa/internal/usecase"
)

// sampleSnippets gives a fresh store something to search against.
var sampleSnippets = []string{
	"dogs are loyal and friendly",
	"cats like to nap in sunny spots",
	"parrots can mimic human speech",
	"goldfish have a memory longer than 3 seconds",
	"rabbits love to chew on cardboard",
	"pizza is best when it's fresh and hot",
	"avocado toast is a trendy breakfast choice",
	"spicy ramen warms you up on cold days",
	"homemade cookies smell amazing while baking",
	"dark chocolate has a rich, bitter taste",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a small set of sample snippets",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	assets, prefs, err := buildAssets()
	if err != nil {
		return err
	}
	defer prefs.Close()

	embedder, err := buildEmbedder(cmd.Context(), assets)
	if err != nil {
		return err
	}

	library := usecase.NewLibraryUseCase(st, embedder)
	records, err := library.AddBatch(cmd.Context(), sampleSnippets)
	if err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	fmt.Printf("Seeded %d records\n", len(records))
	return nil
}
