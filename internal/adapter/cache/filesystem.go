// Package cache implements the content-addressed asset cache: large
// downloaded files (model weights, vocabularies) keyed by the final
// path segment of their request URL, with the key->path mapping held
// in a preference store.
package cache

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"vexa/internal/port"
)

// FilesystemCache exposes the web-cache match/put shape over local
// files. A recorded mapping is never trusted blindly: Match re-checks
// that the backing file still exists and purges stale entries.
type FilesystemCache struct {
	prefs    port.Preferences
	transfer port.Transfer
	dir      string
}

// NewFilesystemCache creates a cache storing files under dir.
func NewFilesystemCache(prefs port.Preferences, transfer port.Transfer, dir string) *FilesystemCache {
	return &FilesystemCache{prefs: prefs, transfer: transfer, dir: dir}
}

// assetKey derives the cache key from the request's final path
// segment.
func assetKey(request string) string {
	if u, err := url.Parse(request); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	if i := strings.LastIndex(request, "/"); i >= 0 {
		return request[i+1:]
	}
	return request
}

// Match returns the cached bytes for the request, or a miss. An entry
// whose backing file was deleted out-of-band is removed and reported
// as a miss, never as an error.
func (c *FilesystemCache) Match(request string) ([]byte, bool, error) {
	key := assetKey(request)

	filePath, found, err := c.prefs.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	if _, err := os.Stat(filePath); err != nil {
		// Backing file is gone: self-heal by dropping the mapping.
		if err := c.prefs.Remove(key); err != nil {
			return nil, false, fmt.Errorf("failed to purge stale cache entry: %w", err)
		}
		return nil, false, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached file: %w", err)
	}
	return data, true, nil
}

// Put downloads the resource into the cache directory and records the
// mapping. On any download failure nothing is recorded, so a failed
// put never produces a mapping to a missing file.
func (c *FilesystemCache) Put(ctx context.Context, request string) error {
	u, err := url.Parse(request)
	if err != nil {
		return fmt.Errorf("invalid asset url %q: %w", request, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		return fmt.Errorf("asset url %q has no file name", request)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	dest := filepath.Join(c.dir, name)

	if err := c.transfer.Download(ctx, request, dest); err != nil {
		return fmt.Errorf("failed to download %s: %w", name, err)
	}

	if err := c.prefs.Set(name, dest); err != nil {
		return fmt.Errorf("failed to record cache entry: %w", err)
	}
	return nil
}
