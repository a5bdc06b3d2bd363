package usecase

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"vexa/internal/port"
)

// AssetConfig is the explicit pipeline wiring for obtaining model
// assets. It is constructed once and passed in, never read from
// process-wide state.
type AssetConfig struct {
	// AllowRemoteFetch permits downloading an asset that is not yet
	// cached.
	AllowRemoteFetch bool

	// AllowLocalPaths permits reading assets from plain filesystem
	// paths, bypassing the cache.
	AllowLocalPaths bool

	// Cache is the asset cache consulted before any fetch.
	Cache port.AssetCache
}

// AssetUseCase resolves logical asset requests (model weights,
// vocabulary files) to their bytes, cache first.
type AssetUseCase struct {
	cfg AssetConfig
}

// NewAssetUseCase creates the asset resolver.
func NewAssetUseCase(cfg AssetConfig) (*AssetUseCase, error) {
	if cfg.Cache == nil && !cfg.AllowLocalPaths {
		return nil, fmt.Errorf("asset configuration has no cache and local paths are disabled")
	}
	return &AssetUseCase{cfg: cfg}, nil
}

// Ensure returns the asset bytes for request: cache hit first, then a
// local file when the request is a plain path and local paths are
// allowed, then a remote fetch through the cache when permitted.
func (u *AssetUseCase) Ensure(ctx context.Context, request string) ([]byte, error) {
	if u.cfg.Cache != nil {
		data, hit, err := u.cfg.Cache.Match(request)
		if err != nil {
			return nil, err
		}
		if hit {
			return data, nil
		}
	}

	if local, ok := localPath(request); ok {
		if !u.cfg.AllowLocalPaths {
			return nil, fmt.Errorf("local asset paths are disabled: %s", request)
		}
		data, err := os.ReadFile(local)
		if err != nil {
			return nil, fmt.Errorf("failed to read local asset: %w", err)
		}
		return data, nil
	}

	if !u.cfg.AllowRemoteFetch {
		return nil, fmt.Errorf("asset %s is not cached and remote fetch is disabled", request)
	}
	if u.cfg.Cache == nil {
		return nil, fmt.Errorf("asset %s requires a cache for remote fetch", request)
	}

	if err := u.cfg.Cache.Put(ctx, request); err != nil {
		return nil, err
	}

	data, hit, err := u.cfg.Cache.Match(request)
	if err != nil {
		return nil, err
	}
	if !hit {
		return nil, fmt.Errorf("asset %s missing from cache after fetch", request)
	}
	return data, nil
}

// localPath reports whether request names a local file and returns
// the filesystem path to read.
func localPath(request string) (string, bool) {
	u, err := url.Parse(request)
	if err != nil {
		return request, true
	}
	if u.Scheme == "file" {
		return u.Path, true
	}
	if u.Scheme == "" {
		return request, true
	}
	return "", false
}
