package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlens/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testCatalog(t *testing.T) *config.Catalog {
	t.Helper()
	dir := t.TempDir()
	return &config.Catalog{
		Occurrences: writeFile(t, dir, "occurrences.csv", "Word,Frequency,Line Number,Line Content\n"+
			"gawan,2,1,gawan rode\n"+
			",,2,gawan luf\n"+
			"luf,1,2,gawan luf\n"),
		Text:        writeFile(t, dir, "text.txt", "gawan rode\ngawan luf\n"),
		TargetWords: filepath.Join(dir, "missing-targets.csv"),
		Markers:     []string{"gawan luf"},
		Themes: config.ThemeSources{
			Emotion: []config.Source{
				{Label: "A", Path: writeFile(t, dir, "a.csv", "word\nluf\n")},
				{Label: "B", Path: writeFile(t, dir, "b.csv", "word\nluf\nrode\n")},
			},
		},
		Sections: []config.Section{{Name: "Fitt 1", Start: 1, End: 2}},
	}
}

func TestNew(t *testing.T) {
	app, err := New(testCatalog(t), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx := context.Background()

	summary, err := app.Dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.UniqueWords)
	assert.Equal(t, 3, summary.TotalOccurrences)
	assert.Equal(t, "gawan", summary.TopWord)

	dist, err := app.Dashboard.Distribution(ctx, "emotion")
	require.NoError(t, err)
	assert.Equal(t, 4, dist.TotalTokens)
	require.Len(t, dist.Lanes, 2)
	assert.Equal(t, []float64{0.75}, dist.Lanes[0].Positions)

	health := app.Dashboard.Health(ctx)
	assert.Equal(t, "degraded", health.Status)
	assert.Positive(t, app.Cache.Size())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, ":memory:")
	assert.Error(t, err)

	_, err = New(testCatalog(t), filepath.Join(t.TempDir(), "missing", "dir", "db.sqlite"))
	assert.Error(t, err)
}
