// Package corpus tokenizes the source text and maps token and marker offsets
// onto normalized [0,1] positions.
package corpus

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyCorpus is returned when a text yields no tokens. Normalized positions
// are undefined for an empty corpus.
var ErrEmptyCorpus = errors.New("corpus contains no tokens")

// tokenPattern matches maximal runs of ASCII letters plus thorn and yogh.
// Input is lowercased before matching.
var tokenPattern = regexp.MustCompile(`[a-zþȝ]+`)

// Tokenize lowercases text and returns its tokens in order. Characters outside
// the token alphabet only separate tokens.
func Tokenize(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// CountTokens returns len(Tokenize(text)) without keeping the tokens.
func CountTokens(text string) int {
	return len(tokenPattern.FindAllStringIndex(strings.ToLower(text), -1))
}

// Corpus is the immutable token sequence of one text.
type Corpus struct {
	tokens []string
}

// New tokenizes text. It returns ErrEmptyCorpus if the text has no tokens.
func New(text string) (*Corpus, error) {
	return FromTokens(Tokenize(text))
}

// FromTokens wraps an already tokenized sequence.
func FromTokens(tokens []string) (*Corpus, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyCorpus
	}
	owned := make([]string, len(tokens))
	copy(owned, tokens)
	return &Corpus{tokens: owned}, nil
}

// Tokens returns the token sequence. Callers must not modify it.
func (c *Corpus) Tokens() []string {
	return c.tokens
}

// Total returns the number of tokens.
func (c *Corpus) Total() int {
	return len(c.tokens)
}

// Position returns index/Total().
func (c *Corpus) Position(index int) float64 {
	return float64(index) / float64(len(c.tokens))
}
