package chart

// Timeline categories.
const (
	CategoryReligious = "Religious"
	CategoryEmotion   = "Emotion-Related"
)

// Section is a named, inclusive range of line numbers.
type Section struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Series is one category of the line timeline.
type Series struct {
	Category  string   `json:"category"`
	Color     string   `json:"color"`
	Y         int      `json:"y"`
	Lines     []int    `json:"lines"`
	// InSection names the section of each entry in Lines.
	InSection []string `json:"in_section"`
}

// Timeline plots category hits by line number between section dividers.
type Timeline struct {
	Series   []Series  `json:"series"`
	Sections []Section `json:"sections"`
	// Dividers are the start lines of every section after the first.
	Dividers []int `json:"dividers"`
}

// NewTimeline builds the religious and emotion series from per-line hits.
// Lines may repeat; one bar is drawn per hit.
func NewTimeline(religious, emotion []int, sections []Section) Timeline {
	if religious == nil {
		religious = []int{}
	}
	if emotion == nil {
		emotion = []int{}
	}
	dividers := []int{}
	for i, s := range sections {
		if i > 0 {
			dividers = append(dividers, s.Start)
		}
	}
	if sections == nil {
		sections = []Section{}
	}
	return Timeline{
		Series: []Series{
			{Category: CategoryReligious, Color: "lightgreen", Y: 1, Lines: religious, InSection: labelLines(sections, religious)},
			{Category: CategoryEmotion, Color: "darkgreen", Y: 2, Lines: emotion, InSection: labelLines(sections, emotion)},
		},
		Sections: sections,
		Dividers: dividers,
	}
}

// SectionOf returns the name of the section containing line, or "".
func SectionOf(sections []Section, line int) string {
	for _, s := range sections {
		if line >= s.Start && line <= s.End {
			return s.Name
		}
	}
	return ""
}

func labelLines(sections []Section, lines []int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = SectionOf(sections, line)
	}
	return out
}
