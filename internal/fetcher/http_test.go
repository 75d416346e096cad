package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPOptions{})
	body, err := f.Download(context.Background(), srv.URL)
	require.NoError(t, err)
	defer body.Close() //nolint:errcheck

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))
}

func TestDownloadNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPOptions{})
	_, err := f.Download(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestDownloadSetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPOptions{UserAgent: "atlas-test/9"})
	body, err := f.Download(context.Background(), srv.URL)
	require.NoError(t, err)
	_ = body.Close()

	assert.Equal(t, "atlas-test/9", gotUA)
}

func TestDownloadFreshAppendsCacheBuster(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("t")
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPOptions{})
	f.now = func() time.Time { return time.UnixMilli(1700000000000) }

	body, err := f.DownloadFresh(context.Background(), srv.URL+"/data.json")
	require.NoError(t, err)
	_ = body.Close()

	assert.Equal(t, "1700000000000", gotQuery)
}

func TestAppendCacheBusterPreservesQuery(t *testing.T) {
	out, err := appendCacheBuster("https://example.com/data.json?v=2", 42)
	require.NoError(t, err)
	assert.Contains(t, out, "v=2")
	assert.Contains(t, out, "t=42")
}

func TestDecodeJSONObject(t *testing.T) {
	type payload struct {
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	}

	obj, err := DecodeJSONObject[payload](strings.NewReader(`{"name":"Odisha","score":0.9}`))
	require.NoError(t, err)
	assert.Equal(t, "Odisha", obj.Name)
	assert.InDelta(t, 0.9, obj.Score, 0.001)
}

func TestDecodeJSONObjectMalformed(t *testing.T) {
	_, err := DecodeJSONObject[map[string]any](strings.NewReader(`{"name":`))
	assert.Error(t, err)
}
