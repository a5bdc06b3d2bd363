package port

import "context"

// Transfer downloads a remote resource to a local destination path.
// Implementations must not leave a visible partial file at dest when
// the download fails or is cancelled.
type Transfer interface {
	Download(ctx context.Context, url, dest string) error
}
