package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vexa/internal/usecase"
)

var (
	searchQuery string
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find the stored snippets most similar to a query",
	Long: `Embed the query and rank stored snippets by cosine similarity.

Examples:
  vexa search -q "sleepy pets"
  vexa search -q "comfort food" --json`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query (required)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.MarkFlagRequired("query")
}

func runSearch(cmd *cobra.Command, args []string) error {
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
	results, total, err := library.Search(cmd.Context(), searchQuery)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Results interface{} `json:"results"`
			Count   int         `json:"count"`
		}{results, total})
	}

	if len(results) == 0 {
		fmt.Println("No results")
		return nil
	}
	for _, r := range results {
		fmt.Printf("%6.4f  #%d  %s\n", r.Score, r.Record.ID, r.Record.Content)
	}
	fmt.Printf("(%d stored)\n", total)
	return nil
}
