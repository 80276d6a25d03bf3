package occurrence

import (
	"fmt"
	"io"
	"strings"
)

// Optional columns of the target-word list.
const (
	ColumnCategory  = "Category"
	ColumnReligious = "Religious"
	ColumnEmotion   = "Emotion-Related"
)

// Target is one row of the target-word list.
type Target struct {
	Word        string `json:"word"`
	Category    string `json:"category,omitempty"`
	LineContent string `json:"line_content,omitempty"`
	Religious   bool   `json:"religious"`
	Emotional   bool   `json:"emotional"`
	// Flagged is true when the list carried Religious/Emotion-Related columns,
	// so the two booleans are authoritative.
	Flagged bool `json:"-"`
}

// ReadTargets parses the target-word list. Words are lowercased and rows with
// an empty Word are skipped.
func ReadTargets(r io.Reader) ([]Target, error) {
	reader := newReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnWord)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := indexHeader(header)
	if _, ok := cols[ColumnWord]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnWord)
	}
	_, hasReligious := cols[ColumnReligious]
	_, hasEmotion := cols[ColumnEmotion]
	flagged := hasReligious || hasEmotion

	var targets []Target
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		word := field(record, cols, ColumnWord)
		if word == "" {
			continue
		}
		targets = append(targets, Target{
			Word:        strings.ToLower(word),
			Category:    field(record, cols, ColumnCategory),
			LineContent: field(record, cols, ColumnLineContent),
			Religious:   truthy(field(record, cols, ColumnReligious)),
			Emotional:   truthy(field(record, cols, ColumnEmotion)),
			Flagged:     flagged,
		})
	}
	return targets, nil
}

// TargetWords returns the distinct target words in first-seen order.
func TargetWords(targets []Target) []string {
	seen := make(map[string]struct{}, len(targets))
	words := make([]string, 0, len(targets))
	for _, t := range targets {
		if _, ok := seen[t.Word]; ok {
			continue
		}
		seen[t.Word] = struct{}{}
		words = append(words, t.Word)
	}
	return words
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "1.0", "yes", "y", "true":
		return true
	}
	return false
}
