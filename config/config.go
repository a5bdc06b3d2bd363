package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the semantic search core.
type Config struct {
	Model     ModelConfig     `yaml:"model"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Store     StoreConfig     `yaml:"store"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// ModelConfig describes the embedding model and its runtime.
type ModelConfig struct {
	Name            string `yaml:"name"`
	Dimension       int    `yaml:"dimension"`
	SequenceLength  int    `yaml:"sequence_length"`
	ModelURL        string `yaml:"model_url"`
	VocabURL        string `yaml:"vocab_url"`
	RuntimeEndpoint string `yaml:"runtime_endpoint"`
}

// TokenizerConfig holds tokenizer options.
type TokenizerConfig struct {
	Lowercase    bool `yaml:"lowercase"`
	StripAccents bool `yaml:"strip_accents"`
	MaxWordChars int  `yaml:"max_word_chars"`
}

// StoreConfig holds vector store options.
type StoreConfig struct {
	PageSize int `yaml:"page_size"` // default page size for listing
}

// AssetsConfig controls how model assets are obtained.
type AssetsConfig struct {
	AllowRemoteFetch bool `yaml:"allow_remote_fetch"`
	AllowLocalPaths  bool `yaml:"allow_local_paths"`
}

// DefaultConfig returns the default configuration (uncased MiniLM,
// 384-dim embeddings).
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Name:            "all-MiniLM-L6-v2",
			Dimension:       384,
			SequenceLength:  256,
			ModelURL:        "https://huggingface.co/sentence-transformers/all-MiniLM-L6-v2/resolve/main/onnx/model.onnx",
			VocabURL:        "https://huggingface.co/sentence-transformers/all-MiniLM-L6-v2/resolve/main/vocab.txt",
			RuntimeEndpoint: "http://127.0.0.1:8199/forward",
		},
		Tokenizer: TokenizerConfig{
			Lowercase:    true,
			StripAccents: true,
			MaxWordChars: 100,
		},
		Store: StoreConfig{
			PageSize: 20,
		},
		Assets: AssetsConfig{
			AllowRemoteFetch: true,
			AllowLocalPaths:  false,
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// if the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// vexa.yaml, then .vexa/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "vexa.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".vexa", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DataDir returns the data directory under dir.
func DataDir(dir string) string {
	return filepath.Join(dir, ".vexa")
}

// StoreDBPath returns the path to the vector store database.
func StoreDBPath(dir string) string {
	return filepath.Join(DataDir(dir), "store.db")
}

// PreferencesPath returns the path to the cache preference database.
func PreferencesPath(dir string) string {
	return filepath.Join(DataDir(dir), "preferences.db")
}

// CacheDir returns the asset cache directory.
func CacheDir(dir string) string {
	return filepath.Join(DataDir(dir), "assets")
}

// EnsureDataDir ensures the data directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(DataDir(dir), 0755)
}
