package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"vexa/internal/port"
)

var importGlob string

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import text files as snippets in one atomic batch",
	Long: `Embed every matching text file under the given directory and insert
them as a single batch: concurrent readers see either none or all of
the imported records.

Examples:
  vexa import ./notes
  vexa import ./docs --glob "**/*.md"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importGlob, "glob", "**/*.txt", "doublestar pattern for files to import")
}

func runImport(cmd *cobra.Command, args []string) error {
	dir := GetRootDir()
	if len(args) > 0 {
		var err error
		dir, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	matches, err := doublestar.Glob(os.DirFS(dir), importGlob)
	if err != nil {
		return fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no files match %q under %s", importGlob, dir)
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

	// Embed everything up front so the batch insert stays one atomic
	// unit with no inference calls inside the transaction window.
	bar := progressbar.Default(int64(len(matches)), "embedding")
	items := make([]port.InsertItem, 0, len(matches))
	for _, rel := range matches {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rel, err)
		}
		content := strings.TrimSpace(string(data))
		if content == "" {
			bar.Add(1)
			continue
		}

		vec, err := embedder.Embed(cmd.Context(), content)
		if err != nil {
			return fmt.Errorf("failed to embed %s: %w", rel, err)
		}
		items = append(items, port.InsertItem{Content: content, Embedding: vec})
		bar.Add(1)
	}

	records, err := st.BatchInsert(cmd.Context(), items)
	if err != nil {
		return fmt.Errorf("failed to insert batch: %w", err)
	}

	fmt.Printf("Imported %d records\n", len(records))
	return nil
}
