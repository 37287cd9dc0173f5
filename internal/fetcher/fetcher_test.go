package fetcher_test

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supplyhub/yml-feed-parser/internal/fetcher"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

const (
	userAgent   = "test/0.0.0"
	response    = "hello-world"
	contentType = "Content-Type"
)

func TestUniResolveFormat(t *testing.T) {
	tests := map[string]struct {
		feedURL string
		want    models.FeedFormat
	}{
		"xml":            {"https://example.com/feed.xml", models.FormatXML},
		"xml upper case": {"https://example.com/FEED.XML", models.FormatXML},
		"csv":            {"https://example.com/export/products.csv", models.FormatCSV},
		"query ignored":  {"https://example.com/feed.xml?key=123", models.FormatXML},
		"no extension":   {"https://example.com/feed", models.FormatUnknown},
		"json":           {"https://example.com/feed.json", models.FormatUnknown},
		"not a url":      {"://bad", models.FormatUnknown},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, fetcher.ResolveFormat(tt.feedURL), "should resolve correct format")
		})
	}
}

func TestUniFetchFeed(t *testing.T) {
	wantHeaders := map[string]string{
		"User-Agent":      userAgent,
		"Accept":          "application/xml, text/csv, text/plain",
		"Accept-Encoding": "gzip",
	}

	tests := map[string]struct {
		endpoint      string
		serverHandler http.Handler
		wantFormat    models.FeedFormat
		wantBody      string
		wantErr       error
	}{
		"ok xml": {
			endpoint: "/feed.xml",
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.Header().Add(contentType, "application/xml")
				wrt.Write([]byte(response))
			}),
			wantFormat: models.FormatXML,
			wantBody:   response,
		},
		"ok csv": {
			endpoint: "/feed.csv",
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.Header().Add(contentType, "text/csv")
				wrt.Write([]byte(response))
			}),
			wantFormat: models.FormatCSV,
			wantBody:   response,
		},
		"ok gzip": {
			endpoint: "/feed.xml",
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.Header().Add(contentType, "application/zip")
				compressedWrt := gzip.NewWriter(wrt)
				compressedWrt.Write([]byte(response))
				compressedWrt.Flush()
				compressedWrt.Close()
			}),
			wantFormat: models.FormatXML,
			wantBody:   response,
		},
		"bad status error": {
			endpoint: "/feed.xml",
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.WriteHeader(http.StatusInternalServerError)
			}),
			wantFormat: models.FormatXML,
			wantErr:    fetcher.ErrStatusNotOK,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(tt.serverHandler)
			t.Cleanup(func() {
				srv.Close()
			})

			fet := fetcher.NewFetcher(srv.Client(), userAgent)
			resp, format, err := fet.FetchFeed(context.TODO(), srv.URL+tt.endpoint)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Equal(t, tt.wantFormat, format, "should resolve correct format")

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, readAndClose(t, resp), "should return correct response")
			}
		})
	}
}

func TestUniFetchFeedUnsupportedFormat(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		requested = true
	}))
	t.Cleanup(func() {
		srv.Close()
	})

	fet := fetcher.NewFetcher(srv.Client(), userAgent)
	resp, format, err := fet.FetchFeed(context.TODO(), srv.URL+"/feed.json")

	require.ErrorIs(t, err, fetcher.ErrFormatNotSupported, "should return correct error")
	assert.Equal(t, models.FormatUnknown, format, "should return unknown format")
	assert.Nil(t, resp, "shouldn't return any response")
	assert.False(t, requested, "unsupported format should be rejected before any request is made")
}

// readAndClose reads ReadCloser, closes it and returns result as string.
func readAndClose(t *testing.T, reader io.ReadCloser) string {
	t.Helper()

	if !assert.NotNil(t, reader, "reader shouldn't be nil") {
		return ""
	}

	result, err := io.ReadAll(reader)
	if !assert.NoError(t, err, "can't read reader") {
		return ""
	}

	assert.NoError(t, reader.Close(), "can't close reader")

	return string(result)
}

func validateHeaders(t *testing.T, headers http.Header, expected map[string]string) {
	t.Helper()

	for header, expectedValue := range expected {
		assert.Equalf(t, expectedValue, headers.Get(header), "request should contain correct value for header %s", header)
	}
}
