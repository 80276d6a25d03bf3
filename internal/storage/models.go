package storage

// Summary holds the headline statistics of the occurrence table.
type Summary struct {
	UniqueWords      int    `json:"unique_words"`
	TotalOccurrences int    `json:"total_occurrences"`
	MinLine          int    `json:"min_line"`
	MaxLine          int    `json:"max_line"`
	TopWord          string `json:"top_word"`
	TopFrequency     int    `json:"top_frequency"`
}

// WordFrequency is a word with the frequency recorded on its first row.
type WordFrequency struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// FrequencyBucket counts distinct words whose frequency falls in a range.
type FrequencyBucket struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max,omitempty"` // 0 means unbounded
	Words int    `json:"words"`
}

// LineGroup is the mean frequency of rows whose line numbers share a group.
type LineGroup struct {
	Start            int     `json:"start"`
	Label            string  `json:"label"`
	AverageFrequency float64 `json:"average_frequency"`
	Rows             int     `json:"rows"`
}

// SearchQuery selects occurrence rows whose word contains Term.
type SearchQuery struct {
	Term string
	// TargetsOnly restricts results to words of the target list.
	TargetsOnly bool
	// Category further restricts to target words of one category.
	Category string
	Limit    int
	Offset   int
}

// frequencyRanges are the bucket boundaries, inclusive.
var frequencyRanges = []FrequencyBucket{
	{Label: "1-5", Min: 1, Max: 5},
	{Label: "6-20", Min: 6, Max: 20},
	{Label: "21-50", Min: 21, Max: 50},
	{Label: "51-100", Min: 51, Max: 100},
	{Label: "100+", Min: 101},
}
