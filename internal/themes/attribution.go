package themes

import "textlens/internal/corpus"

// Attribution lists the word sets a target word appears in.
type Attribution struct {
	Word    string   `json:"word"`
	Sources []string `json:"sources"`
}

// Attribute checks every word against every set. Output is sorted by word and
// each Sources slice keeps set order. Words in no set get an empty slice.
func Attribute(words []string, sets []corpus.WordSet) []Attribution {
	unique := corpus.NewWordSet("", words).Words()
	out := make([]Attribution, 0, len(unique))
	for _, w := range unique {
		a := Attribution{Word: w, Sources: []string{}}
		for _, set := range sets {
			if set.Contains(w) {
				a.Sources = append(a.Sources, set.Label)
			}
		}
		out = append(out, a)
	}
	return out
}
