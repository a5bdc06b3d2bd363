package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vexa/internal/usecase"
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Embed a snippet and store it",
	Long: `Embed the given text and append it to the vector store.

Examples:
  vexa add "cats like to nap in sunny spots"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	content := strings.TrimSpace(strings.Join(args, " "))
	if content == "" {
		return fmt.Errorf("cannot add empty content")
	}

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
	record, err := library.Add(cmd.Context(), content)
	if err != nil {
		return fmt.Errorf("failed to add snippet: %w", err)
	}

	fmt.Printf("Added record %d\n", record.ID)
	return nil
}
