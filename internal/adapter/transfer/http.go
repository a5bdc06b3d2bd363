// Package transfer downloads remote resources to local files.
package transfer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
)

// HTTPTransfer downloads over HTTP into a temporary file that is
// renamed into place on success, so a failed or cancelled download
// never leaves a visible partial file.
type HTTPTransfer struct {
	client       *http.Client
	showProgress bool
}

// NewHTTPTransfer creates a downloader. With showProgress a progress
// bar is written to stderr while downloading.
func NewHTTPTransfer(showProgress bool) *HTTPTransfer {
	return &HTTPTransfer{
		client: &http.Client{
			// Model files are large; rely on ctx for cancellation
			// instead of a whole-request timeout.
			Timeout: 0,
		},
		showProgress: showProgress,
	}
}

// Download fetches url into dest.
func (t *HTTPTransfer) Download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: status %d for %s", resp.StatusCode, url)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	var w io.Writer = tmp
	if t.showProgress {
		bar := progressbar.DefaultBytes(resp.ContentLength, filepath.Base(dest))
		w = io.MultiWriter(tmp, bar)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("download failed: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close download: %w", err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move download into place: %w", err)
	}
	return nil
}
