package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"vexa/config"
	"vexa/internal/adapter/cache"
	"vexa/internal/adapter/embedding"
	"vexa/internal/adapter/store"
	"vexa/internal/adapter/tokenizer"
	"vexa/internal/adapter/transfer"
	"vexa/internal/usecase"
)

// openStore opens the vector store for the current data directory.
func openStore() (*store.BoltStore, error) {
	cfg := GetConfig()
	rootDir := GetRootDir()

	if _, err := os.Stat(config.DataDir(rootDir)); os.IsNotExist(err) {
		return nil, fmt.Errorf("no data directory found. Run 'vexa init' first")
	}

	st, err := store.NewBoltStore(config.StoreDBPath(rootDir), cfg.Model.Dimension)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

// buildAssets wires the asset cache from the config: bbolt-backed
// preferences, HTTP transfer, filesystem cache.
func buildAssets() (*usecase.AssetUseCase, *cache.BoltPreferences, error) {
	cfg := GetConfig()
	rootDir := GetRootDir()

	prefs, err := cache.NewBoltPreferences(config.PreferencesPath(rootDir))
	if err != nil {
		return nil, nil, err
	}

	fsCache := cache.NewFilesystemCache(prefs, transfer.NewHTTPTransfer(true), config.CacheDir(rootDir))

	assets, err := usecase.NewAssetUseCase(usecase.AssetConfig{
		AllowRemoteFetch: cfg.Assets.AllowRemoteFetch,
		AllowLocalPaths:  cfg.Assets.AllowLocalPaths,
		Cache:            fsCache,
	})
	if err != nil {
		prefs.Close()
		return nil, nil, err
	}
	return assets, prefs, nil
}

// buildEmbedder assembles the embedding pipeline: vocabulary from the
// asset cache, tokenizer, HTTP runtime client.
func buildEmbedder(ctx context.Context, assets *usecase.AssetUseCase) (*usecase.EmbedUseCase, error) {
	cfg := GetConfig()

	vocabData, err := assets.Ensure(ctx, cfg.Model.VocabURL)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain vocabulary: %w", err)
	}
	vocab, err := tokenizer.ParseVocab(bytes.NewReader(vocabData))
	if err != nil {
		return nil, err
	}

	opts := tokenizer.DefaultOptions()
	opts.Lowercase = cfg.Tokenizer.Lowercase
	opts.StripAccents = cfg.Tokenizer.StripAccents
	if cfg.Tokenizer.MaxWordChars > 0 {
		opts.MaxWordChars = cfg.Tokenizer.MaxWordChars
	}

	tok, err := tokenizer.New(vocab, opts)
	if err != nil {
		return nil, err
	}

	runtime := embedding.NewHTTPRuntime(cfg.Model.RuntimeEndpoint)
	return usecase.NewEmbedUseCase(tok, runtime, cfg.Model.SequenceLength, cfg.Model.Dimension)
}
