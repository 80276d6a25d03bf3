package corpus

import (
	"sort"
	"strings"
)

// WordSet is a labelled set of lowercase words.
type WordSet struct {
	Label string
	words map[string]struct{}
}

// NewWordSet lowercases words and drops empty values and duplicates.
func NewWordSet(label string, words []string) WordSet {
	set := WordSet{Label: label, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		set.words[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Contains reports exact membership. The zero WordSet contains nothing.
func (s WordSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct words.
func (s WordSet) Len() int {
	return len(s.words)
}

// Words returns the members in lexical order.
func (s WordSet) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// WithLabel returns a copy of s sharing its members under a new label.
func (s WordSet) WithLabel(label string) WordSet {
	return WordSet{Label: label, words: s.words}
}

// Intersection returns the words present in both sets.
func Intersection(a, b WordSet) WordSet {
	small, large := a, b
	if small.Len() > large.Len() {
		small, large = large, small
	}
	out := WordSet{Label: a.Label + " & " + b.Label, words: make(map[string]struct{})}
	for w := range small.words {
		if large.Contains(w) {
			out.words[w] = struct{}{}
		}
	}
	return out
}
