package corpus

import (
	"errors"
	"sort"
)

// ErrTooFewSets is returned by Overlap when fewer than two sets are given.
var ErrTooFewSets = errors.New("overlap needs at least two word sets")

// PositionList holds the normalized positions, in token order, at which
// members of one WordSet occur.
type PositionList struct {
	Label     string    `json:"label"`
	Positions []float64 `json:"positions"`
}

// ExtractPositions walks the corpus once and appends index/total to the list
// of every set containing the token. Sets are not exclusive, so one token can
// land in several lists at the same position.
func ExtractPositions(c *Corpus, sets []WordSet) []PositionList {
	lists := make([]PositionList, len(sets))
	for i, set := range sets {
		lists[i] = PositionList{Label: set.Label, Positions: []float64{}}
	}
	for index, token := range c.tokens {
		relative := c.Position(index)
		for i := range sets {
			if sets[i].Contains(token) {
				lists[i].Positions = append(lists[i].Positions, relative)
			}
		}
	}
	return lists
}

// PairOverlap is the intersection size of two sets.
type PairOverlap struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// OverlapResult holds every pairwise intersection size, in input order, and
// the size of the intersection of all sets.
type OverlapResult struct {
	Labels []string      `json:"labels"`
	Pairs  []PairOverlap `json:"pairs"`
	All    int           `json:"all"`
}

// Pair returns the count for the two labels in either order.
func (r OverlapResult) Pair(a, b string) (int, bool) {
	for _, p := range r.Pairs {
		if (p.A == a && p.B == b) || (p.A == b && p.B == a) {
			return p.Count, true
		}
	}
	return 0, false
}

// Overlap computes raw intersection cardinalities for two or more sets.
func Overlap(sets []WordSet) (OverlapResult, error) {
	if len(sets) < 2 {
		return OverlapResult{}, ErrTooFewSets
	}

	result := OverlapResult{
		Labels: make([]string, len(sets)),
		Pairs:  make([]PairOverlap, 0, len(sets)*(len(sets)-1)/2),
	}
	for i, set := range sets {
		result.Labels[i] = set.Label
	}
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			result.Pairs = append(result.Pairs, PairOverlap{
				A:     sets[i].Label,
				B:     sets[j].Label,
				Count: Intersection(sets[i], sets[j]).Len(),
			})
		}
	}

	smallest := 0
	for i := range sets {
		if sets[i].Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	for w := range sets[smallest].words {
		inAll := true
		for i := range sets {
			if !sets[i].Contains(w) {
				inAll = false
				break
			}
		}
		if inAll {
			result.All++
		}
	}
	return result, nil
}

// LineMatch records a word found as a whole token on a 1-based line.
type LineMatch struct {
	Line int    `json:"line"`
	Word string `json:"word"`
}

// MatchLines reports, for every line of text, each distinct member of set
// that occurs on it as a whole token. Results are ordered by line, then word.
func MatchLines(text string, set WordSet) []LineMatch {
	var matches []LineMatch
	for i, line := range splitLines(text) {
		seen := make(map[string]struct{})
		var words []string
		for _, token := range Tokenize(line) {
			if !set.Contains(token) {
				continue
			}
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			words = append(words, token)
		}
		sort.Strings(words)
		for _, w := range words {
			matches = append(matches, LineMatch{Line: i + 1, Word: w})
		}
	}
	return matches
}
