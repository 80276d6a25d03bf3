package main

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		rows    [][]string
		want    []string
		notWant []string
	}{
		{
			name:    "headers keep their case",
			headers: []string{"Target word", "Emotion lists"},
			rows:    [][]string{{"luf", "A"}},
			want:    []string{"Target word", "Emotion lists", "luf"},
			notWant: []string{"TARGET WORD", "EMOTION LISTS"},
		},
		{
			name:    "short rows are padded",
			headers: []string{"Word", "Count"},
			rows:    [][]string{{"gawan"}},
			want:    []string{"Word", "gawan"},
		},
		{
			name:    "no headers renders nothing",
			headers: nil,
			rows:    [][]string{{"gawan"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderTable(tt.headers, tt.rows, []columnAlignment{alignLeft, alignRight})
			if len(tt.headers) == 0 && got != "" {
				t.Fatalf("renderTable() = %q, want empty", got)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("renderTable() missing %q in:\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("renderTable() contains %q in:\n%s", w, got)
				}
			}
		})
	}
}
