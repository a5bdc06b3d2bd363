package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"vexa/internal/adapter/store"
)

// fakeEmbedder maps known texts to fixed unit vectors.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, ok := f.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no embedding for %q", text)
	}
	return vec, nil
}

func (f *fakeEmbedder) Dimension() int { return 3 }

func newLibrary(t *testing.T) (*LibraryUseCase, *fakeEmbedder) {
	t.Helper()
	st, err := store.NewBoltStore(filepath.Join(t.TempDir(), "store.db"), 3)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	emb := &fakeEmbedder{vectors: map[string][]float32{
		"cats nap":   {1, 0, 0},
		"dogs play":  {0, 1, 0},
		"sleepy cat": {1, 0, 0},
	}}
	return NewLibraryUseCase(st, emb), emb
}

func TestLibrary_AddAndSearch(t *testing.T) {
	lib, _ := newLibrary(t)
	ctx := context.Background()

	if _, err := lib.Add(ctx, "cats nap"); err != nil {
		t.Fatal(err)
	}
	if _, err := lib.Add(ctx, "dogs play"); err != nil {
		t.Fatal(err)
	}

	results, total, err := lib.Search(ctx, "sleepy cat")
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Errorf("expected 2 stored records, got %d", total)
	}
	if len(results) == 0 || results[0].Record.Content != "cats nap" {
		t.Errorf("expected 'cats nap' ranked first, got %+v", results)
	}
}

func TestLibrary_AddEmbeddingFailureLeavesStoreUntouched(t *testing.T) {
	lib, _ := newLibrary(t)
	ctx := context.Background()

	if _, err := lib.Add(ctx, "unknown text"); err == nil {
		t.Fatal("expected embedding failure")
	}

	page, err := lib.List(ctx, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Records) != 0 {
		t.Errorf("expected no records after failed add, got %d", len(page.Records))
	}
}

func TestLibrary_AddBatchFailsWholeBatch(t *testing.T) {
	lib, _ := newLibrary(t)
	ctx := context.Background()

	_, err := lib.AddBatch(ctx, []string{"cats nap", "unknown text", "dogs play"})
	if err == nil {
		t.Fatal("expected batch to fail on unembeddable item")
	}

	page, err := lib.List(ctx, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Records) != 0 {
		t.Errorf("expected no records after failed batch, got %d", len(page.Records))
	}
}

func TestLibrary_ListPages(t *testing.T) {
	lib, _ := newLibrary(t)
	ctx := context.Background()

	records, err := lib.AddBatch(ctx, []string{"cats nap", "dogs play", "sleepy cat"})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	page, err := lib.List(ctx, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Records) != 2 || !page.HasMore {
		t.Fatalf("expected full first page with more available, got %+v", page)
	}

	rest, err := lib.List(ctx, 2, page.NextCursor)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest.Records) != 1 || rest.HasMore {
		t.Fatalf("expected final page with one record, got %+v", rest)
	}
}
