package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listLimit  int
	listCursor uint64
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snippets page by page",
	Long: `List stored snippets in insertion order. Pass the printed cursor back
with --cursor to continue from where the previous page ended.

Examples:
  vexa list --limit 10
  vexa list --limit 10 --cursor 42`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "page size (default from config)")
	listCmd.Flags().Uint64Var(&listCursor, "cursor", 0, "continue after this record id")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	limit := cfg.Store.PageSize
	if listLimit > 0 {
		limit = listLimit
	}

	page, err := st.GetWithPagination(cmd.Context(), limit, listCursor)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}

	for _, r := range page.Records {
		fmt.Printf("#%d  %s  %s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Content)
	}
	if page.HasMore {
		fmt.Printf("More available: --cursor %d\n", page.NextCursor)
	}
	return nil
}
