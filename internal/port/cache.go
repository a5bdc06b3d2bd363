package port

import "context"

// AssetCache is a content-addressed local cache for large downloaded
// files, keyed by the final path segment of the request URL.
type AssetCache interface {
	// Match looks up the cached bytes for the request. A miss is
	// (nil, false, nil), not an error. A stale entry whose backing
	// file is gone is purged and reported as a miss.
	Match(request string) ([]byte, bool, error)

	// Put downloads the resource and records the key->path mapping.
	// The mapping is only recorded after the download completes; any
	// failure propagates to the caller with nothing recorded.
	Put(ctx context.Context, request string) error
}
