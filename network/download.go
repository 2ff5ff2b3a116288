package network

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tvdbx/tvdbx/util"
)

// Downloader fetches the body found at url.
type Downloader func(ctx context.Context, url string) ([]byte, error)

// HTTPStatusError is returned for responses outside the 2xx range.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Download fetches url with the shared client.
func Download(ctx context.Context, url string) ([]byte, error) {
	return get(ctx, Client(), url)
}

// NewDownloader returns a Downloader bound to client.
func NewDownloader(client *http.Client) Downloader {
	return func(ctx context.Context, url string) ([]byte, error) {
		return get(ctx, client, url)
	}
}

func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	return data, nil
}
