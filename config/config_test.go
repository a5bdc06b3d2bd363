package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model.Dimension != 384 {
		t.Errorf("expected Dimension=384, got %d", cfg.Model.Dimension)
	}
	if cfg.Model.SequenceLength != 256 {
		t.Errorf("expected SequenceLength=256, got %d", cfg.Model.SequenceLength)
	}
	if !cfg.Tokenizer.Lowercase {
		t.Error("expected Lowercase=true")
	}
	if cfg.Tokenizer.MaxWordChars != 100 {
		t.Errorf("expected MaxWordChars=100, got %d", cfg.Tokenizer.MaxWordChars)
	}
	if cfg.Store.PageSize != 20 {
		t.Errorf("expected PageSize=20, got %d", cfg.Store.PageSize)
	}
	if !cfg.Assets.AllowRemoteFetch {
		t.Error("expected AllowRemoteFetch=true")
	}
	if cfg.Assets.AllowLocalPaths {
		t.Error("expected AllowLocalPaths=false")
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "vexa.yaml")

	content := `
model:
  dimension: 768
  sequence_length: 128
tokenizer:
  lowercase: false
assets:
  allow_local_paths: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Model.Dimension != 768 {
		t.Errorf("expected Dimension=768, got %d", cfg.Model.Dimension)
	}
	if cfg.Model.SequenceLength != 128 {
		t.Errorf("expected SequenceLength=128, got %d", cfg.Model.SequenceLength)
	}
	if cfg.Tokenizer.Lowercase {
		t.Error("expected Lowercase=false")
	}
	if !cfg.Assets.AllowLocalPaths {
		t.Error("expected AllowLocalPaths=true")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "vexa.yaml")

	content := `
store:
  page_size: 50
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Store.PageSize != 50 {
		t.Errorf("expected PageSize=50, got %d", cfg.Store.PageSize)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "vexa.yaml")

	cfg := DefaultConfig()
	cfg.Model.Dimension = 512
	if err := cfg.Save(configPath); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Model.Dimension != 512 {
		t.Errorf("expected Dimension=512 after reload, got %d", loaded.Model.Dimension)
	}
}

func TestStoreDBPath(t *testing.T) {
	path := StoreDBPath("/home/user/notes")
	expected := filepath.Join("/home/user/notes", ".vexa", "store.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
