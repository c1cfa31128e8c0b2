package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ImageFetcher downloads remote images and converts them to data URIs for
// embedding into landing pages and logo overlays.
type ImageFetcher struct {
	client *HTTPClient
}

// NewImageFetcher creates an ImageFetcher with its own HTTP client.
// timeout bounds each download; a non-positive value leaves requests
// unbounded by the client (the caller's context still applies).
func NewImageFetcher(timeout time.Duration) *ImageFetcher {
	client := NewHTTPClient()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &ImageFetcher{client: client}
}

// FetchDataURI downloads the image at url and returns it as a base64 data
// URI. Non-2xx responses and non-image content are rejected.
func (f *ImageFetcher) FetchDataURI(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("error fetching image: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("error fetching image: status %s", resp.Status())
	}

	data := resp.Body()
	mime := resp.Header().Get("Content-Type")
	if mime == "" || !strings.HasPrefix(mime, "image/") {
		mime = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("remote resource is not an image: %s", mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
