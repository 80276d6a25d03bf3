package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_dashboard_service.go -package=mocks -mock_names=DashboardService=MockDashboardService textlens/internal/service DashboardService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_occurrence_store.go -package=mocks textlens/internal/service OccurrenceStore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"textlens/internal/chart"
	"textlens/internal/classify"
	"textlens/internal/contextutil"
	"textlens/internal/corpus"
	"textlens/internal/filecache"
	"textlens/internal/occurrence"
	"textlens/internal/session"
	"textlens/internal/storage"
	"textlens/internal/themes"
)

// OccurrenceStore is the query side of the occurrence table.
// This interface is defined from the service layer's perspective (consumer-first).
type OccurrenceStore interface {
	Replace(ctx context.Context, rows []occurrence.Row) error
	ReplaceTargets(ctx context.Context, targets []occurrence.Target) error
	Summary(ctx context.Context) (storage.Summary, error)
	WordFrequencies(ctx context.Context, limit int) ([]storage.WordFrequency, error)
	FrequencyBuckets(ctx context.Context) ([]storage.FrequencyBucket, error)
	LineGroups(ctx context.Context, width int) ([]storage.LineGroup, error)
	Search(ctx context.Context, q storage.SearchQuery) ([]occurrence.Row, int, error)
}

// WordListLoader reads the annotator word lists of a theme.
type WordListLoader interface {
	Load(ctx context.Context, theme themes.Theme) ([]corpus.WordSet, error)
	Sources(theme themes.Theme) []themes.Source
}

// DashboardService serves every view of the dashboard.
type DashboardService interface {
	// Summary returns the headline statistics of the occurrence table.
	Summary(ctx context.Context) (storage.Summary, error)
	// TopWords returns the n most frequent words.
	TopWords(ctx context.Context, n int) ([]storage.WordFrequency, error)
	// FrequencyBuckets counts words per frequency range.
	FrequencyBuckets(ctx context.Context) ([]storage.FrequencyBucket, error)
	// LineGroups averages frequency per block of 100 lines.
	LineGroups(ctx context.Context) ([]storage.LineGroup, error)
	// FrequencyDots returns every word with its frequency.
	FrequencyDots(ctx context.Context) ([]storage.WordFrequency, error)
	// Search runs a paged word search for a session.
	Search(ctx context.Context, req SearchRequest) (SearchResult, error)
	// Distribution places each annotator's theme words along the text.
	Distribution(ctx context.Context, theme string) (DistributionResult, error)
	// Overlap compares the annotators' word lists for a theme.
	Overlap(ctx context.Context, theme string) (OverlapResult, error)
	// Timeline plots religious and emotion target words by line.
	Timeline(ctx context.Context) (TimelineResult, error)
	// Comparison lists, per target word, the word lists that contain it.
	Comparison(ctx context.Context) (ComparisonResult, error)
	// Health reports which data files are readable.
	Health(ctx context.Context) HealthStatus
}

// Options locates the data a DashboardService reads.
type Options struct {
	OccurrencesPath string
	TextPath        string
	// TargetsPath is optional; an unreadable list degrades the views using it.
	TargetsPath string
	Markers     []string
	Sections    []chart.Section
}

const (
	// lineGroupWidth is the number of lines per LineGroups block.
	lineGroupWidth = 100
	boundaryPrefix = "Fitt"
	maxTopWords    = 1000
	maxTermLength  = 100
)

// dashboardService implements DashboardService.
type dashboardService struct {
	store  OccurrenceStore
	loader WordListLoader
	cache  *filecache.Cache
	opts   Options

	mu          sync.Mutex
	tableStamp  filecache.Stamp
	targetStamp filecache.Stamp
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store OccurrenceStore, loader WordListLoader, cache *filecache.Cache, opts Options) DashboardService {
	return &dashboardService{
		store:  store,
		loader: loader,
		cache:  cache,
		opts:   opts,
	}
}

// syncTable loads the occurrence file into the store when it changed since
// the last load. The target list is synced alongside and may be missing.
func (s *dashboardService) syncTable(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	// Load under the lock so a newer table is never overwritten by an older one.
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, stamp, err := filecache.Load(s.cache, s.opts.OccurrencesPath, occurrence.ReadTable)
	if err != nil {
		logger.ErrorContext(ctx, "occurrence table unavailable",
			slog.String("path", s.opts.OccurrencesPath), slog.Any("error", err))
		return &UnavailableError{File: "occurrence table", Err: err}
	}

	if stamp != s.tableStamp {
		if err := s.store.Replace(ctx, rows); err != nil {
			return WrapError(err, "failed to load occurrence table")
		}
		s.tableStamp = stamp
		logger.InfoContext(ctx, "occurrence table loaded",
			slog.String("path", s.opts.OccurrencesPath), slog.Int("rows", len(rows)))
	}

	targets, targetStamp, _ := s.targets(ctx)
	if targetStamp != s.targetStamp {
		if err := s.store.ReplaceTargets(ctx, targets); err != nil {
			return WrapError(err, "failed to load target words")
		}
		s.targetStamp = targetStamp
	}
	return nil
}

// targets returns the labelled target list. A missing or malformed list
// yields nil, a zero stamp and a notice.
func (s *dashboardService) targets(ctx context.Context) ([]occurrence.Target, filecache.Stamp, string) {
	if s.opts.TargetsPath == "" {
		return nil, filecache.Stamp{}, "no target word list configured"
	}
	targets, stamp, err := filecache.Load(s.cache, s.opts.TargetsPath, readLabelledTargets)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "target word list unavailable",
			slog.String("path", s.opts.TargetsPath), slog.Any("error", err))
		return nil, filecache.Stamp{}, "target word list unavailable"
	}
	return targets, stamp, ""
}

// readLabelledTargets parses the target list and fills in the religious and
// emotion labels, and the category, wherever the list leaves them out.
func readLabelledTargets(r io.Reader) ([]occurrence.Target, error) {
	targets, err := occurrence.ReadTargets(r)
	if err != nil {
		return nil, err
	}
	for i, t := range targets {
		if !t.Flagged {
			line := t.LineContent
			if line == "" {
				line = t.Word
			}
			labels := classify.Classify(t.Word, line)
			t.Religious = labels.Religious
			t.Emotional = labels.Emotional
		}
		if t.Category == "" {
			switch {
			case t.Religious:
				t.Category = chart.CategoryReligious
			case t.Emotional:
				t.Category = chart.CategoryEmotion
			}
		}
		targets[i] = t
	}
	return targets, nil
}

// text returns the raw text and its corpus.
func (s *dashboardService) text(ctx context.Context) (string, *corpus.Corpus, error) {
	logger := contextutil.LoggerFromContext(ctx)

	raw, _, err := filecache.Load(s.cache, s.opts.TextPath, filecache.ReadString)
	if err != nil {
		logger.ErrorContext(ctx, "text unavailable",
			slog.String("path", s.opts.TextPath), slog.Any("error", err))
		return "", nil, &UnavailableError{File: "text", Err: err}
	}
	c, _, err := filecache.Load(s.cache, s.opts.TextPath, parseCorpus)
	if err != nil {
		if errors.Is(err, corpus.ErrEmptyCorpus) {
			logger.ErrorContext(ctx, "text has no tokens", slog.String("path", s.opts.TextPath))
			return "", nil, err
		}
		return "", nil, &UnavailableError{File: "text", Err: err}
	}
	return raw, c, nil
}

func parseCorpus(r io.Reader) (*corpus.Corpus, error) {
	raw, err := filecache.ReadString(r)
	if err != nil {
		return nil, err
	}
	return corpus.New(raw)
}

// Summary returns the headline statistics of the occurrence table.
func (s *dashboardService) Summary(ctx context.Context) (storage.Summary, error) {
	if err := s.syncTable(ctx); err != nil {
		return storage.Summary{}, err
	}
	summary, err := s.store.Summary(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.Summary{}, fmt.Errorf("%w: occurrence table has no rows", ErrNotFound)
	}
	if err != nil {
		return storage.Summary{}, WrapError(err, "failed to compute summary")
	}
	return summary, nil
}

// TopWords returns the n most frequent words.
func (s *dashboardService) TopWords(ctx context.Context, n int) ([]storage.WordFrequency, error) {
	if n < 1 || n > maxTopWords {
		return nil, &ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("must be between 1 and %d", maxTopWords),
		}
	}
	if err := s.syncTable(ctx); err != nil {
		return nil, err
	}
	words, err := s.store.WordFrequencies(ctx, n)
	if err != nil {
		return nil, WrapError(err, "failed to query top words")
	}
	return words, nil
}

// FrequencyBuckets counts words per frequency range.
func (s *dashboardService) FrequencyBuckets(ctx context.Context) ([]storage.FrequencyBucket, error) {
	if err := s.syncTable(ctx); err != nil {
		return nil, err
	}
	buckets, err := s.store.FrequencyBuckets(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to query frequency buckets")
	}
	return buckets, nil
}

// LineGroups averages frequency per block of lines.
func (s *dashboardService) LineGroups(ctx context.Context) ([]storage.LineGroup, error) {
	if err := s.syncTable(ctx); err != nil {
		return nil, err
	}
	groups, err := s.store.LineGroups(ctx, lineGroupWidth)
	if err != nil {
		return nil, WrapError(err, "failed to query line groups")
	}
	return groups, nil
}

// FrequencyDots returns every word with its frequency, most frequent first.
func (s *dashboardService) FrequencyDots(ctx context.Context) ([]storage.WordFrequency, error) {
	if err := s.syncTable(ctx); err != nil {
		return nil, err
	}
	words, err := s.store.WordFrequencies(ctx, 0)
	if err != nil {
		return nil, WrapError(err, "failed to query word frequencies")
	}
	return words, nil
}

// SearchRequest is a search from one session.
type SearchRequest struct {
	State session.State
	Term  string
	// TargetsOnly restricts matches to the target word list.
	TargetsOnly bool
	// Category restricts matches to target words of one category.
	Category string
}

// SearchResult is one page of search hits and the session state after the
// search.
type SearchResult struct {
	State      session.State    `json:"-"`
	Term       string           `json:"term"`
	Rows       []occurrence.Row `json:"rows"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	Notice     string           `json:"notice,omitempty"`
}

// Search records the term on the session, moving back to the first page when
// it changed, and returns the session's current page of matching rows. A
// page past the end is moved to the last page.
func (s *dashboardService) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(req.Term) > maxTermLength {
		return SearchResult{}, &ValidationError{
			Field:   "q",
			Message: fmt.Sprintf("must be at most %d bytes", maxTermLength),
		}
	}
	state := req.State.WithSearch(req.Term)
	if !session.ValidPageSize(state.PageSize) {
		return SearchResult{}, &ValidationError{
			Field:   "page_size",
			Message: fmt.Sprintf("must be one of %v", session.PageSizes),
		}
	}
	state = state.WithPage(state.Page)

	result := SearchResult{
		State:      state,
		Term:       state.LastSearch,
		Rows:       []occurrence.Row{},
		Page:       state.Page,
		PageSize:   state.PageSize,
		TotalPages: 1,
	}
	filtered := req.TargetsOnly || req.Category != ""
	if state.LastSearch == "" && !filtered {
		return result, nil
	}

	if err := s.syncTable(ctx); err != nil {
		return SearchResult{}, err
	}

	query := storage.SearchQuery{
		Term:        state.LastSearch,
		TargetsOnly: req.TargetsOnly,
		Category:    req.Category,
		Limit:       state.PageSize,
		Offset:      state.Offset(),
	}
	rows, total, err := s.store.Search(ctx, query)
	if err != nil {
		return SearchResult{}, WrapError(err, "failed to search occurrences")
	}
	if pages := state.TotalPages(total); total > 0 && state.Page > pages {
		state = state.WithPage(pages)
		query.Offset = state.Offset()
		rows, total, err = s.store.Search(ctx, query)
		if err != nil {
			return SearchResult{}, WrapError(err, "failed to search occurrences")
		}
	}

	if filtered {
		if _, _, notice := s.targets(ctx); notice != "" {
			result.Notice = notice
		}
	}
	if total == 0 && result.Notice == "" {
		result.Notice = fmt.Sprintf("No words found containing '%s'", state.LastSearch)
	}

	logger.DebugContext(ctx, "search completed",
		slog.String("term", state.LastSearch), slog.Int("total", total), slog.Int("page", state.Page))

	result.State = state
	result.Rows = rows
	result.Total = total
	result.Page = state.Page
	result.TotalPages = state.TotalPages(total)
	return result, nil
}
