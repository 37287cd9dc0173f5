package fetcher

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

// Fetcher resolves feed formats, builds http requests and fetches feed files.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	return &Fetcher{
		client:    client,
		userAgent: userAgent,
	}
}

// ResolveFormat resolves the feed format from the url file extension alone.
func ResolveFormat(feedURL string) models.FeedFormat {
	parsed, err := url.Parse(feedURL)
	if err != nil {
		return models.FormatUnknown
	}

	switch strings.ToLower(path.Ext(parsed.Path)) {
	case ".xml":
		return models.FormatXML
	case ".csv":
		return models.FormatCSV
	default:
		return models.FormatUnknown
	}
}

// FetchFeed resolves the feed format and returns a ReadCloser with the
// fetched document. Unsupported formats are rejected before any request
// is made. The caller is responsible for closing the returned ReadCloser.
func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string) (io.ReadCloser, models.FeedFormat, error) {
	format := ResolveFormat(feedURL)
	if format == models.FormatUnknown {
		return nil, format, ErrFormatNotSupported
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, format, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/xml, text/csv, text/plain")
	req.Header.Add("Accept-Encoding", "gzip")
	req.Header.Add("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, format, fmt.Errorf("can't get http response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, format, fmt.Errorf("%w: %s", ErrStatusNotOK, resp.Status)
	}

	if resp.Header.Get("Content-Encoding") == "gzip" || resp.Header.Get("Content-Type") == "application/zip" {
		body, err := decompressResponse(resp.Body)
		if err != nil {
			_ = resp.Body.Close()
			return nil, format, err
		}
		return body, format, nil
	}

	return resp.Body, format, nil
}

// decompressResponse returns io.ReadCloser with decompressed http response and error.
func decompressResponse(response io.ReadCloser) (io.ReadCloser, error) {
	decompressed, err := gzip.NewReader(response)
	if err != nil {
		return nil, fmt.Errorf("can't decompress response: %w", err)
	}

	return &decompressedReadCloser{
		compressed:   response,
		decompressed: decompressed,
	}, nil
}

// decompressedReadCloser wraps decompressed Reader and compressed ReadCloser.
// It reads from decompressed Reader, but closes compressed ReadCloser.
type decompressedReadCloser struct {
	compressed   io.ReadCloser
	decompressed io.Reader
}

// Read reads uncompressed bytes from underlying Reader into p.
func (r decompressedReadCloser) Read(p []byte) (n int, err error) {
	return r.decompressed.Read(p)
}

// Close closes underlying compressed ReadCloser.
func (r decompressedReadCloser) Close() error {
	return r.compressed.Close()
}
