// Package classify flags words as religious or emotion-related from keyword
// lists matched against the word and the line it occurs on.
package classify

import (
	"regexp"
	"strings"
)

var religiousTerms = []string{
	"lord", "christ", "jesus", "holy", "sacred", "divine", "prayer", "pray",
	"blessing", "bless", "church", "chapel", "altar", "mass", "service", "priest",
	"monk", "nun", "saint", "heaven", "hell", "soul", "spirit", "faith", "believe",
	"sin", "virtue", "grace", "mercy", "forgive", "absolution", "confession",
	"penance", "salvation", "redemption", "trinity", "cross", "crucifix", "bible",
	"scripture", "gospel", "sermon", "hymn", "psalm", "miracle", "resurrection",
	"angel", "devil", "satan", "demon", "blessed", "eternal", "immortal",
	"almighty", "omnipotent", "worship", "adore", "praise", "glory", "hallelujah",
	"amen",
	// Middle English forms. God is handled separately.
	"absolucioun", "auter", "blessyng", "lorde", "cryst",
	"crist", "haly", "kirke", "kyrke", "preest", "masse", "chirche",
}

var emotionTerms = []string{
	"joy", "happy", "happiness", "glad", "cheerful", "delight", "pleasure",
	"bliss", "elated", "sad", "sadness", "sorrow", "grief", "melancholy",
	"despair", "misery", "woe", "lament", "angry", "anger", "rage", "fury",
	"wrath", "ire", "mad", "furious", "livid", "indignant", "fear", "afraid",
	"scared", "terror", "horror", "dread", "anxiety", "worry", "panic",
	"love", "affection", "adore", "cherish", "devotion", "passion", "romance",
	"tender", "hate", "hatred", "loathe", "despise", "detest", "abhor",
	"disgust", "revulsion", "hope", "hopeful", "optimism", "confidence",
	"trust", "shame", "embarrassment", "guilt", "remorse", "regret",
	"humiliation", "pride", "proud", "arrogance", "vanity", "conceit",
	"hubris", "envy", "jealous", "jealousy", "covet", "resentment",
	"bitter", "bitterness", "surprise", "amazement", "wonder", "astonishment",
	"shock", "startled",
	// Middle English forms.
	"blis", "blys", "blysse", "blysful", "blyþe", "wraþ", "angre", "sorwe",
	"joye", "glade", "murþe", "mirth", "drede", "fere", "luf", "lufe",
	"hatrede",
}

// divineNames are matched case-sensitively; a capitalised form that does not
// open a sentence names the deity.
var divineNames = map[string]*regexp.Regexp{
	"God":    regexp.MustCompile(`\bGod\b`),
	"Gode":   regexp.MustCompile(`\bGode\b`),
	"Goddez": regexp.MustCompile(`\bGoddez\b`),
}

var sentenceEnd = regexp.MustCompile(`[.!?]\s*$`)

// Labels is the classification of one word occurrence.
type Labels struct {
	Religious bool `json:"religious"`
	Emotional bool `json:"emotional"`
}

// Classify labels word as used on line. A term matches when it is a substring
// of either the lowercased word or the lowercased line.
func Classify(word, line string) Labels {
	if word == "" || line == "" {
		return Labels{}
	}
	if isDivineName(word, line) {
		return Labels{Religious: true}
	}
	w := strings.ToLower(word)
	l := strings.ToLower(line)
	return Labels{
		Religious: containsAny(w, l, religiousTerms),
		Emotional: containsAny(w, l, emotionTerms),
	}
}

func isDivineName(word, line string) bool {
	pattern, ok := divineNames[word]
	if !ok {
		return false
	}
	for _, loc := range pattern.FindAllStringIndex(line, -1) {
		start := loc[0]
		if start == 0 {
			continue
		}
		if sentenceEnd.MatchString(strings.TrimSpace(line[:start])) {
			continue
		}
		return true
	}
	return false
}

func containsAny(word, line string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(word, term) || strings.Contains(line, term) {
			return true
		}
	}
	return false
}
