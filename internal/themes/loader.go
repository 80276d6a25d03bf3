package themes

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"textlens/internal/contextutil"
	"textlens/internal/corpus"
	"textlens/internal/filecache"
)

// Source is one annotator's word list for a theme.
type Source struct {
	Label string
	Path  string
}

// Loader reads the configured sources of a theme into word sets.
type Loader struct {
	sources map[Theme][]Source
	cache   *filecache.Cache
}

// NewLoader creates a Loader over the given sources.
func NewLoader(sources map[Theme][]Source, cache *filecache.Cache) *Loader {
	return &Loader{sources: sources, cache: cache}
}

// Sources returns the configured sources of theme in catalog order.
func (l *Loader) Sources(theme Theme) []Source {
	return l.sources[theme]
}

// Load returns one set per configured source, in catalog order. A source that
// cannot be read yields an empty set and a warning; the other sources are
// still loaded. Only an unknown theme is an error.
func (l *Loader) Load(ctx context.Context, theme Theme) ([]corpus.WordSet, error) {
	if !theme.Valid() {
		return nil, &UnknownThemeError{Value: string(theme)}
	}
	logger := contextutil.LoggerFromContext(ctx)

	sources := l.sources[theme]
	sets := make([]corpus.WordSet, 0, len(sources))
	for _, src := range sources {
		words, _, err := filecache.Load(l.cache, src.Path, ReadWordColumn)
		if err != nil {
			logger.WarnContext(ctx, "word list unavailable, using empty set",
				slog.String("theme", string(theme)),
				slog.String("source", src.Label),
				slog.String("path", src.Path),
				slog.Any("error", err))
			sets = append(sets, corpus.NewWordSet(src.Label, nil))
			continue
		}
		sets = append(sets, corpus.NewWordSet(src.Label, words))
	}
	return sets, nil
}

// ReadWordColumn returns the first-column values of a CSV, skipping the
// header row and empty cells. Other columns are ignored.
func ReadWordColumn(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var words []string
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read word list: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(record) == 0 {
			continue
		}
		v := record[0]
		if strings.TrimSpace(v) == "" || strings.EqualFold(v, "nan") {
			continue
		}
		words = append(words, v)
	}
	return words, nil
}
