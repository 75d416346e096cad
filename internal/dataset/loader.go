package dataset

import (
	"context"
	"errors"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/risk-atlas/internal/fetcher"
)

// ErrDataUnavailable reports that the analysis-result document could not be
// fetched or parsed. It is fatal to the whole render session: stale data is
// worse than no data, and the load is cheap to reissue on a fresh page load,
// so there is no retry and no partial document.
var ErrDataUnavailable = errors.New("dataset: data unavailable")

// Loader fetches and parses the analysis-result document.
type Loader struct {
	fetcher fetcher.Fetcher
	url     string
}

// NewLoader creates a Loader reading from the given URL.
func NewLoader(f fetcher.Fetcher, url string) *Loader {
	return &Loader{fetcher: f, url: url}
}

// Load fetches a fresh copy of the document. Any transport or parse failure
// is collapsed into ErrDataUnavailable, logged once.
func (l *Loader) Load(ctx context.Context) (*Document, error) {
	body, err := l.fetcher.DownloadFresh(ctx, l.url)
	if err != nil {
		zap.L().Error("dataset: load failed", zap.String("url", l.url), zap.Error(err))
		return nil, eris.Wrap(ErrDataUnavailable, "fetch")
	}
	defer body.Close() //nolint:errcheck

	doc, err := fetcher.DecodeJSONObject[Document](body)
	if err != nil {
		zap.L().Error("dataset: parse failed", zap.String("url", l.url), zap.Error(err))
		return nil, eris.Wrap(ErrDataUnavailable, "parse")
	}

	zap.L().Info("dataset: loaded",
		zap.String("url", l.url),
		zap.Int("map_regions", len(doc.MapData)),
		zap.Int64("total_records", doc.Summary.TotalRecords),
	)
	return doc, nil
}
