// Package occurrence reads the word-occurrence table and the target-word list.
package occurrence

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Column names of the word-occurrence table.
const (
	ColumnWord        = "Word"
	ColumnFrequency   = "Frequency"
	ColumnLineNumber  = "Line Number"
	ColumnLineContent = "Line Content"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

// Row is one cleaned occurrence of a word on a line.
type Row struct {
	// Seq is the 0-based position of the row among kept rows.
	Seq         int    `json:"-"`
	Word        string `json:"word"`
	Frequency   int    `json:"frequency"`
	LineNumber  int    `json:"line_number"`
	LineContent string `json:"line_content"`
}

// ReadTable parses the occurrence CSV. Empty Word and Frequency cells are
// forward-filled from the previous row; rows still lacking Word, Frequency or
// Line Number afterwards are dropped, as are rows whose numbers do not parse.
func ReadTable(r io.Reader) ([]Row, error) {
	reader := newReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnWord)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := indexHeader(header)
	for _, name := range []string{ColumnWord, ColumnFrequency, ColumnLineNumber} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var (
		rows     []Row
		lastWord string
		lastFreq string
	)
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
			word = lastWord
		} else {
			lastWord = word
		}
		freq := field(record, cols, ColumnFrequency)
		if freq == "" {
			freq = lastFreq
		} else {
			lastFreq = freq
		}
		line := field(record, cols, ColumnLineNumber)
		if word == "" || freq == "" || line == "" {
			continue
		}

		frequency, ok := parseCount(freq)
		if !ok {
			continue
		}
		lineNumber, ok := parseCount(line)
		if !ok {
			continue
		}
		rows = append(rows, Row{
			Seq:         len(rows),
			Word:        word,
			Frequency:   frequency,
			LineNumber:  lineNumber,
			LineContent: field(record, cols, ColumnLineContent),
		})
	}
	return rows, nil
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// indexHeader maps trimmed header names to column indexes. A UTF-8 byte order
// mark on the first header is ignored.
func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

// field returns the trimmed cell for a named column, or "" when the column or
// cell is absent. "nan" cells count as empty.
func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	v := strings.TrimSpace(record[i])
	if strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}

// parseCount accepts integers and integral floats such as "12.0".
func parseCount(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
