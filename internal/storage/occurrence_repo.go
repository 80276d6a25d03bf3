package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"textlens/internal/occurrence"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// OccurrenceRepo queries the word-occurrence table.
type OccurrenceRepo struct {
	db *sql.DB
}

// NewOccurrenceRepo creates a new OccurrenceRepo.
func NewOccurrenceRepo(db *sql.DB) *OccurrenceRepo {
	return &OccurrenceRepo{db: db}
}

// Replace swaps the whole table for rows in one transaction.
func (r *OccurrenceRepo) Replace(ctx context.Context, rows []occurrence.Row) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM occurrences"); err != nil {
		return fmt.Errorf("failed to clear occurrences: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO occurrences (seq, word, word_lower, frequency, line_number, line_content)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, i, row.Word, strings.ToLower(row.Word),
			row.Frequency, row.LineNumber, row.LineContent); err != nil {
			return fmt.Errorf("failed to insert occurrence %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit occurrences: %w", err)
	}
	return nil
}

// ReplaceTargets swaps the target-word list.
func (r *OccurrenceRepo) ReplaceTargets(ctx context.Context, targets []occurrence.Target) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM target_words"); err != nil {
		return fmt.Errorf("failed to clear target words: %w", err)
	}
	for _, t := range targets {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO target_words (word, category, category_lower) VALUES (?, ?, ?)",
			strings.ToLower(t.Word), t.Category, strings.ToLower(t.Category)); err != nil {
			return fmt.Errorf("failed to insert target word: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit target words: %w", err)
	}
	return nil
}

// Summary computes the headline statistics. It returns ErrNotFound when the
// table is empty.
func (r *OccurrenceRepo) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	var minLine, maxLine sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT word), COUNT(*), MIN(line_number), MAX(line_number) FROM occurrences`,
	).Scan(&s.UniqueWords, &s.TotalOccurrences, &minLine, &maxLine)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to query summary: %w", err)
	}
	if s.TotalOccurrences == 0 {
		return Summary{}, ErrNotFound
	}
	s.MinLine = int(minLine.Int64)
	s.MaxLine = int(maxLine.Int64)

	top, err := r.WordFrequencies(ctx, 1)
	if err != nil {
		return Summary{}, err
	}
	if len(top) > 0 {
		s.TopWord = top[0].Word
		s.TopFrequency = top[0].Frequency
	}
	return s, nil
}

// firstRowsQuery selects each word's first row. SQLite fills bare columns of
// a MIN() aggregate from the row holding the minimum.
const firstRowsQuery = `SELECT word, frequency, MIN(seq) AS first_seq FROM occurrences GROUP BY word`

// WordFrequencies returns one entry per word, most frequent first, ties in
// order of first appearance. limit <= 0 returns all words.
func (r *OccurrenceRepo) WordFrequencies(ctx context.Context, limit int) ([]WordFrequency, error) {
	query := `SELECT word, frequency FROM (` + firstRowsQuery + `) ORDER BY frequency DESC, first_seq ASC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query word frequencies: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := []WordFrequency{}
	for rows.Next() {
		var wf WordFrequency
		if err := rows.Scan(&wf.Word, &wf.Frequency); err != nil {
			return nil, fmt.Errorf("failed to scan word frequency: %w", err)
		}
		out = append(out, wf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return out, nil
}

// FrequencyBuckets counts distinct words per frequency range. Every range is
// returned, including empty ones.
func (r *OccurrenceRepo) FrequencyBuckets(ctx context.Context) ([]FrequencyBucket, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT CASE
			WHEN frequency <= 5 THEN '1-5'
			WHEN frequency <= 20 THEN '6-20'
			WHEN frequency <= 50 THEN '21-50'
			WHEN frequency <= 100 THEN '51-100'
			ELSE '100+'
		END AS bucket, COUNT(*)
		FROM (`+firstRowsQuery+`)
		GROUP BY bucket`)
	if err != nil {
		return nil, fmt.Errorf("failed to query frequency buckets: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts := make(map[string]int)
	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, fmt.Errorf("failed to scan frequency bucket: %w", err)
		}
		counts[label] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	out := make([]FrequencyBucket, len(frequencyRanges))
	for i, b := range frequencyRanges {
		b.Words = counts[b.Label]
		out[i] = b
	}
	return out, nil
}

// LineGroups averages frequency over every row, grouped by
// (line_number / width) * width.
func (r *OccurrenceRepo) LineGroups(ctx context.Context, width int) ([]LineGroup, error) {
	if width <= 0 {
		return nil, fmt.Errorf("line group width must be positive, got %d", width)
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT (line_number / ?) * ? AS grp, AVG(frequency), COUNT(*)
		FROM occurrences
		GROUP BY grp
		ORDER BY grp`, width, width)
	if err != nil {
		return nil, fmt.Errorf("failed to query line groups: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := []LineGroup{}
	for rows.Next() {
		var g LineGroup
		if err := rows.Scan(&g.Start, &g.AverageFrequency, &g.Rows); err != nil {
			return nil, fmt.Errorf("failed to scan line group: %w", err)
		}
		g.Label = fmt.Sprintf("%d-%d", g.Start, g.Start+width-1)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return out, nil
}

// Search returns one page of rows, in table order, whose word contains the
// term case-insensitively, plus the total number of matching rows. The term
// is matched literally.
func (r *OccurrenceRepo) Search(ctx context.Context, q SearchQuery) ([]occurrence.Row, int, error) {
	where := "1 = 1"
	args := []any{}
	if q.Term != "" {
		where = "instr(word_lower, ?) > 0"
		args = append(args, strings.ToLower(q.Term))
	}
	switch {
	case q.Category != "":
		where += " AND word_lower IN (SELECT word FROM target_words WHERE category_lower = ?)"
		args = append(args, strings.ToLower(q.Category))
	case q.TargetsOnly:
		where += " AND word_lower IN (SELECT word FROM target_words)"
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM occurrences WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = -1
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	pageArgs := append(append([]any{}, args...), limit, offset)
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, word, frequency, line_number, line_content FROM occurrences
		 WHERE `+where+` ORDER BY seq LIMIT ? OFFSET ?`, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search occurrences: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := []occurrence.Row{}
	for rows.Next() {
		var row occurrence.Row
		if err := rows.Scan(&row.Seq, &row.Word, &row.Frequency, &row.LineNumber, &row.LineContent); err != nil {
			return nil, 0, fmt.Errorf("failed to scan occurrence: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("row iteration error: %w", err)
	}
	return out, total, nil
}
