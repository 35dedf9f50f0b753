package source

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/weddingweek/internal/config"
	"github.com/JonMunkholm/weddingweek/internal/core"
	"github.com/JonMunkholm/weddingweek/internal/logging"
)

// Loader fetches and parses each dataset.
type Loader struct {
	fetcher *Fetcher
	sources config.SourcesConfig
}

// NewLoader creates a Loader reading the configured locations.
func NewLoader(f *Fetcher, sources config.SourcesConfig) *Loader {
	return &Loader{fetcher: f, sources: sources}
}

// table fetches a dataset and parses it. A fetch failure comes back as a
// *core.UserError carrying the guest-facing message. A header that lacks
// expected columns is logged but still parsed.
func (l *Loader) table(ctx context.Context, dataset, location string) (*core.Table, error) {
	logger := logging.WithFields(ctx, "dataset", dataset)

	start := time.Now()
	text, err := l.fetcher.Fetch(ctx, location)
	if err != nil {
		logger.Error("dataset fetch failed", "location", location, "error", err)
		return nil, core.NewUserError(fmt.Errorf("load %s: %w", dataset, err))
	}
	logger.Debug("dataset fetched", "bytes", len(text), "duration", time.Since(start))

	t := core.ParseTable(text)
	if def, ok := core.Get(dataset); ok {
		if report := core.CheckHeader(def, t.Header); !report.OK() {
			logger.Warn("dataset columns missing", "missing", report.Missing, "extra", report.Extra)
		}
	}
	return t, nil
}

// Itinerary loads the itinerary grouped by day.
func (l *Loader) Itinerary(ctx context.Context) ([]core.DayGroup, error) {
	t, err := l.table(ctx, core.DatasetItinerary, l.sources.Itinerary)
	if err != nil {
		return nil, err
	}
	days := core.GroupItinerary(t.Rows)
	logging.WithFields(ctx, "dataset", core.DatasetItinerary).Info("dataset loaded",
		"days", len(days),
		"items", core.ItemCount(days),
	)
	return days, nil
}

// Places loads the explore places.
func (l *Loader) Places(ctx context.Context) ([]core.Place, error) {
	t, err := l.table(ctx, core.DatasetExplore, l.sources.Explore)
	if err != nil {
		return nil, err
	}
	places := core.NormalizePlaces(t.Rows)
	logging.WithFields(ctx, "dataset", core.DatasetExplore).Info("dataset loaded", "rows", len(places))
	return places, nil
}

// Contacts loads the contact records.
func (l *Loader) Contacts(ctx context.Context) ([]core.ContactRecord, error) {
	t, err := l.table(ctx, core.DatasetContacts, l.sources.Contacts)
	if err != nil {
		return nil, err
	}
	records := core.NormalizeContacts(t.Rows)
	logging.WithFields(ctx, "dataset", core.DatasetContacts).Info("dataset loaded", "rows", len(records))
	return records, nil
}
