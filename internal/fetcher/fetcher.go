package fetcher

import (
	"context"
	"io"
)

// Fetcher defines the interface for downloading remote documents.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// DownloadFresh fetches the URL with a cache-defeating query parameter
	// appended, so the response is never served from an intermediate cache.
	DownloadFresh(ctx context.Context, url string) (io.ReadCloser, error)
}
