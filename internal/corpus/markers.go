package corpus

import (
	"strings"
	"unicode/utf8"
)

// MarkerPosition is a structural marker located in the text.
type MarkerPosition struct {
	Marker string `json:"marker"`
	// Offset is the character (rune) offset of the first match in the
	// lowercased text.
	Offset       int     `json:"offset"`
	TokensBefore int     `json:"tokens_before"`
	Position     float64 `json:"position"`
}

// LocateMarkers finds the first case-insensitive occurrence of each marker and
// converts it to tokensBefore/totalTokens. Markers that do not occur are
// skipped. Results keep marker-list order and are not sorted.
func LocateMarkers(text string, markers []string) ([]MarkerPosition, error) {
	lowered := strings.ToLower(text)
	total := CountTokens(lowered)
	if total == 0 {
		return nil, ErrEmptyCorpus
	}

	positions := make([]MarkerPosition, 0, len(markers))
	for _, marker := range markers {
		needle := strings.ToLower(marker)
		if needle == "" {
			continue
		}
		idx := strings.Index(lowered, needle)
		if idx < 0 {
			continue
		}
		prefix := lowered[:idx]
		before := CountTokens(prefix)
		positions = append(positions, MarkerPosition{
			Marker:       marker,
			Offset:       utf8.RuneCountInString(prefix),
			TokensBefore: before,
			Position:     float64(before) / float64(total),
		})
	}
	return positions, nil
}
