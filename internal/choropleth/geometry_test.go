package choropleth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/risk-atlas/internal/fetcher"
)

func TestLoadGeometry_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(geometryDoc))
	}))
	defer srv.Close()

	fc, err := LoadGeometry(context.Background(), fetcher.NewHTTPFetcher(fetcher.HTTPOptions{}), srv.URL)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 3)
	assert.Equal(t, "Orissa", FeatureName(fc.Features[0].Properties))
}

func TestLoadGeometry_RequestsFreshCopy(t *testing.T) {
	var gotBuster string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBuster = r.URL.Query().Get("t")
		_, _ = w.Write([]byte(geometryDoc))
	}))
	defer srv.Close()

	_, err := LoadGeometry(context.Background(), fetcher.NewHTTPFetcher(fetcher.HTTPOptions{}), srv.URL)
	require.NoError(t, err)
	assert.NotEmpty(t, gotBuster)
}

func TestLoadGeometry_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := LoadGeometry(context.Background(), fetcher.NewHTTPFetcher(fetcher.HTTPOptions{}), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeometryUnavailable))
}

func TestLoadGeometry_ParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type": "FeatureCollection", "features": [{`))
	}))
	defer srv.Close()

	_, err := LoadGeometry(context.Background(), fetcher.NewHTTPFetcher(fetcher.HTTPOptions{}), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeometryUnavailable))
}
