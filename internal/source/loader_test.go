package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/JonMunkholm/weddingweek/internal/config"
	"github.com/JonMunkholm/weddingweek/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "it.csv", "Day,Date,Start Time,Activity Name\n"+
		"Day 2,2025-09-01,14:00,Boat\nDay 2,2025-09-01,9:30,Breakfast\n")
	writeDataset(t, dir, "ex.csv", "Name,Category\nCafe,Food\n")
	writeDataset(t, dir, "co.csv", "Name,Category,Website/Link\nRedAlert,siren,https://x\n")

	sources := config.SourcesConfig{Dir: dir, Itinerary: "it.csv", Explore: "ex.csv", Contacts: "co.csv"}
	l := NewLoader(newTestFetcher(dir, ""), sources)
	ctx := context.Background()

	days, err := l.Itinerary(ctx)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "09:30", days[0].Items[0].StartTime)

	places, err := l.Places(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Food", places[0].Category)

	records, err := l.Contacts(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://x", records[0].Link)
}

func TestLoader_Failure(t *testing.T) {
	sources := config.SourcesConfig{Explore: "missing.csv"}
	l := NewLoader(newTestFetcher(t.TempDir(), ""), sources)

	_, err := l.Places(context.Background())
	require.Error(t, err)

	var ue *core.UserError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Technical.Error(), "load explore")
	assert.Equal(t, "FETCH002", ue.User.Code)
	assert.Equal(t, ue.User, core.MessageFor(err))
}
