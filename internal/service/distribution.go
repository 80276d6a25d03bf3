package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"textlens/internal/chart"
	"textlens/internal/contextutil"
	"textlens/internal/corpus"
	"textlens/internal/filecache"
	"textlens/internal/occurrence"
	"textlens/internal/themes"
)

// DistributionResult places each annotator's theme words along the text.
type DistributionResult struct {
	Theme       string                `json:"theme"`
	Title       string                `json:"title"`
	TotalTokens int                   `json:"total_tokens"`
	Lanes       []chart.Lane          `json:"lanes"`
	Target      *chart.Lane           `json:"target,omitempty"`
	Boundaries  []chart.Boundary      `json:"boundaries"`
	Overlap     *corpus.OverlapResult `json:"overlap,omitempty"`
	Notices     []string              `json:"notices,omitempty"`
}

// SetSize is the number of words in one annotator's list.
type SetSize struct {
	Label string `json:"label"`
	Words int    `json:"words"`
}

// OverlapResult compares the annotators' lists for one theme.
type OverlapResult struct {
	Theme   string               `json:"theme"`
	Title   string               `json:"title"`
	Sets    []SetSize            `json:"sets"`
	Overlap corpus.OverlapResult `json:"overlap"`
	Notices []string             `json:"notices,omitempty"`
}

// TimelineResult plots target words by line between section dividers.
type TimelineResult struct {
	chart.Timeline
	Notices []string `json:"notices,omitempty"`
}

// ComparisonResult lists, per target word, the annotator lists containing it.
type ComparisonResult struct {
	Sources []string             `json:"sources"`
	Rows    []themes.Attribution `json:"rows"`
	Notices []string             `json:"notices,omitempty"`
}

// HealthStatus reports which data files are readable.
type HealthStatus struct {
	// Status is "healthy", "degraded" (optional files missing) or "unhealthy".
	Status       string            `json:"status"`
	Checks       map[string]string `json:"checks"`
	Issues       []string          `json:"issues,omitempty"`
	CacheEntries int               `json:"cache_entries"`
	CacheHitRate float64           `json:"cache_hit_rate"`
}

func parseTheme(name string) (themes.Theme, error) {
	theme, err := themes.ParseTheme(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return theme, nil
}

// emptySetNotices names every annotator whose list came back empty.
func emptySetNotices(sets []corpus.WordSet) []string {
	var notices []string
	for _, set := range sets {
		if set.Len() == 0 {
			notices = append(notices, fmt.Sprintf("no words loaded for %s", set.Label))
		}
	}
	return notices
}

// Distribution places each annotator's theme words along the text, with the
// target words in a lane of their own and section ends as boundaries.
func (s *dashboardService) Distribution(ctx context.Context, name string) (DistributionResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	theme, err := parseTheme(name)
	if err != nil {
		return DistributionResult{}, err
	}
	raw, c, err := s.text(ctx)
	if err != nil {
		return DistributionResult{}, err
	}

	markers, err := corpus.LocateMarkers(raw, s.opts.Markers)
	if err != nil {
		return DistributionResult{}, WrapError(err, "failed to locate section markers")
	}
	if len(markers) < len(s.opts.Markers) {
		logger.DebugContext(ctx, "some section markers not found",
			slog.Int("found", len(markers)), slog.Int("configured", len(s.opts.Markers)))
	}

	sets, err := s.loader.Load(ctx, theme)
	if err != nil {
		return DistributionResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	result := DistributionResult{
		Theme:       string(theme),
		Title:       theme.Title(),
		TotalTokens: c.Total(),
		Lanes:       chart.Lanes(corpus.ExtractPositions(c, sets)),
		Boundaries:  chart.Boundaries(markers, boundaryPrefix),
		Notices:     emptySetNotices(sets),
	}

	if overlap, err := corpus.Overlap(sets); err == nil {
		result.Overlap = &overlap
	} else if errors.Is(err, corpus.ErrTooFewSets) {
		result.Notices = append(result.Notices, "overlap needs at least two word lists")
	} else {
		return DistributionResult{}, WrapError(err, "failed to compute overlap")
	}

	targets, _, notice := s.targets(ctx)
	if notice != "" {
		result.Notices = append(result.Notices, notice)
	} else {
		set := corpus.NewWordSet(chart.TargetLabel, occurrence.TargetWords(targets))
		lane := chart.TargetLane(corpus.ExtractPositions(c, []corpus.WordSet{set})[0])
		result.Target = &lane
	}

	return result, nil
}

// Overlap compares the annotators' word lists for a theme.
func (s *dashboardService) Overlap(ctx context.Context, name string) (OverlapResult, error) {
	theme, err := parseTheme(name)
	if err != nil {
		return OverlapResult{}, err
	}
	sets, err := s.loader.Load(ctx, theme)
	if err != nil {
		return OverlapResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	overlap, err := corpus.Overlap(sets)
	if errors.Is(err, corpus.ErrTooFewSets) {
		return OverlapResult{}, fmt.Errorf("%w: %s has %d word lists configured", ErrUnavailable, theme, len(sets))
	}
	if err != nil {
		return OverlapResult{}, WrapError(err, "failed to compute overlap")
	}

	sizes := make([]SetSize, len(sets))
	for i, set := range sets {
		sizes[i] = SetSize{Label: set.Label, Words: set.Len()}
	}
	return OverlapResult{
		Theme:   string(theme),
		Title:   theme.Title(),
		Sets:    sizes,
		Overlap: overlap,
		Notices: emptySetNotices(sets),
	}, nil
}

// Timeline plots, for every line of the text, one bar per religious and one
// per emotion-related target word found on it.
func (s *dashboardService) Timeline(ctx context.Context) (TimelineResult, error) {
	raw, _, err := s.text(ctx)
	if err != nil {
		return TimelineResult{}, err
	}

	targets, _, notice := s.targets(ctx)
	var religious, emotional []string
	for _, t := range targets {
		if t.Religious {
			religious = append(religious, t.Word)
		}
		if t.Emotional {
			emotional = append(emotional, t.Word)
		}
	}

	lines := func(words []string) []int {
		matches := corpus.MatchLines(raw, corpus.NewWordSet("", words))
		out := make([]int, len(matches))
		for i, m := range matches {
			out[i] = m.Line
		}
		return out
	}

	result := TimelineResult{
		Timeline: chart.NewTimeline(lines(religious), lines(emotional), s.opts.Sections),
	}
	if notice != "" {
		result.Notices = append(result.Notices, notice)
	} else if len(religious) == 0 && len(emotional) == 0 {
		result.Notices = append(result.Notices, "no religious or emotion-related target words")
	}
	return result, nil
}

// Comparison lists every target word with the annotator lists of every theme
// that contain it.
func (s *dashboardService) Comparison(ctx context.Context) (ComparisonResult, error) {
	var sets []corpus.WordSet
	var notices []string
	for _, theme := range themes.All() {
		loaded, err := s.loader.Load(ctx, theme)
		if err != nil {
			return ComparisonResult{}, WrapError(err, "failed to load word lists")
		}
		notices = append(notices, emptySetNotices(loaded)...)
		for _, set := range loaded {
			sets = append(sets, set.WithLabel(set.Label+" "+theme.Title()))
		}
	}

	labels := make([]string, len(sets))
	for i, set := range sets {
		labels[i] = set.Label
	}

	targets, _, notice := s.targets(ctx)
	if notice != "" {
		notices = append(notices, notice)
	}
	return ComparisonResult{
		Sources: labels,
		Rows:    themes.Attribute(occurrence.TargetWords(targets), sets),
		Notices: notices,
	}, nil
}

// Health reports which data files are readable. Missing required files make
// the service unhealthy; missing optional files only degrade it.
func (s *dashboardService) Health(ctx context.Context) HealthStatus {
	logger := contextutil.LoggerFromContext(ctx)
	status := HealthStatus{
		Status:       "healthy",
		Checks:       make(map[string]string),
		CacheEntries: s.cache.Size(),
		CacheHitRate: s.cache.HitRate(),
	}

	check := func(name, path string, required bool) {
		if _, err := filecache.StatFile(path); err != nil {
			logger.WarnContext(ctx, "data file check failed",
				slog.String("file", name), slog.String("path", path), slog.Any("error", err))
			status.Checks[name] = "missing"
			status.Issues = append(status.Issues, name+"_unavailable")
			if required {
				status.Status = "unhealthy"
			} else if status.Status == "healthy" {
				status.Status = "degraded"
			}
			return
		}
		status.Checks[name] = "ok"
	}

	check("occurrences", s.opts.OccurrencesPath, true)
	check("text", s.opts.TextPath, true)
	if s.opts.TargetsPath != "" {
		check("target_words", s.opts.TargetsPath, false)
	}
	for _, theme := range themes.All() {
		for _, src := range s.loader.Sources(theme) {
			check(fmt.Sprintf("%s/%s", theme, src.Label), src.Path, false)
		}
	}
	if status.Checks["text"] == "ok" {
		if _, _, err := s.text(ctx); errors.Is(err, corpus.ErrEmptyCorpus) {
			status.Checks["text"] = "empty"
			status.Issues = append(status.Issues, "text_empty")
			status.Status = "unhealthy"
		}
	}
	return status
}
