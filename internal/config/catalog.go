package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"textlens/internal/chart"
	"textlens/internal/themes"
)

// Source is one annotator's word list for a theme.
type Source struct {
	Label string `toml:"label"`
	Path  string `toml:"path"`
}

// ThemeSources lists the word-list sources per theme, in display order.
type ThemeSources struct {
	Emotion   []Source `toml:"emotion"`
	Religious []Source `toml:"religious"`
}

// Section is a named range of line numbers, inclusive at both ends.
type Section struct {
	Name  string `toml:"name"`
	Start int    `toml:"start"`
	End   int    `toml:"end"`
}

// Catalog locates every data file and the fixed structure of the text.
type Catalog struct {
	Occurrences string       `toml:"occurrences"`
	Text        string       `toml:"text"`
	TargetWords string       `toml:"target_words"`
	Markers     []string     `toml:"markers"`
	Themes      ThemeSources `toml:"themes"`
	Sections    []Section    `toml:"sections"`
}

// Default returns the catalog of the standard data layout.
func Default() Catalog {
	return Catalog{
		Occurrences: "word_occurrences.csv",
		Text:        "full-sggk.txt",
		TargetWords: "target_word_data.csv",
		Markers: []string{
			"Þat þou hatz tan on honde.",
			"Cowþe wel halde layk alofte.",
			"I schal telle yow how þay wroȝt.",
			"HONY SOYT QUI MAL PENCE.",
		},
		Themes: ThemeSources{
			Emotion: []Source{
				{Label: "ChatGPT", Path: "from_full_text/chatgpt/emotion_words.csv"},
				{Label: "Claude", Path: "from_full_text/claude/sggk-emotion-words.csv"},
				{Label: "Grok", Path: "from_full_text/grok/emotion_words_sggk.csv"},
			},
			Religious: []Source{
				{Label: "ChatGPT", Path: "from_full_text/chatgpt/religious_words.csv"},
				{Label: "Claude", Path: "from_full_text/claude/sggk-religious-words.csv"},
				{Label: "Grok", Path: "from_full_text/grok/religious_words_sggk.csv"},
			},
		},
		Sections: []Section{
			{Name: "Fitt 1", Start: 1, End: 532},
			{Name: "Fitt 2", Start: 533, End: 1125},
			{Name: "Fitt 3", Start: 1126, End: 1893},
			{Name: "Fitt 4", Start: 1894, End: 2530},
		},
	}
}

// LoadCatalog decodes the TOML file at path over Default and resolves every
// relative file path against dataDir. An empty path, or a path that does not
// exist, yields the defaults.
func LoadCatalog(path, dataDir string) (*Catalog, error) {
	cat := Default()

	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return nil, err
		}
		file, err := os.Open(expanded)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("open catalog: %w", err)
		default:
			defer file.Close()
			var override Catalog
			if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(&override); err != nil {
				return nil, fmt.Errorf("parse catalog: %w", err)
			}
			cat.merge(override)
		}
	}

	if err := cat.normalize(dataDir); err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// merge replaces every entry the file sets. A list given in the file
// replaces the default list whole.
func (c *Catalog) merge(o Catalog) {
	if o.Occurrences != "" {
		c.Occurrences = o.Occurrences
	}
	if o.Text != "" {
		c.Text = o.Text
	}
	if o.TargetWords != "" {
		c.TargetWords = o.TargetWords
	}
	if o.Markers != nil {
		c.Markers = o.Markers
	}
	if o.Themes.Emotion != nil {
		c.Themes.Emotion = o.Themes.Emotion
	}
	if o.Themes.Religious != nil {
		c.Themes.Religious = o.Themes.Religious
	}
	if o.Sections != nil {
		c.Sections = o.Sections
	}
}

func (c *Catalog) normalize(dataDir string) error {
	root, err := expandPath(dataDir)
	if err != nil {
		return err
	}
	resolve := func(p string) (string, error) {
		p = strings.TrimSpace(p)
		if p == "" {
			return "", nil
		}
		if strings.HasPrefix(p, "~") || filepath.IsAbs(p) {
			return expandPath(p)
		}
		return filepath.Join(root, p), nil
	}

	if c.Occurrences, err = resolve(c.Occurrences); err != nil {
		return err
	}
	if c.Text, err = resolve(c.Text); err != nil {
		return err
	}
	if c.TargetWords, err = resolve(c.TargetWords); err != nil {
		return err
	}
	for _, list := range [][]Source{c.Themes.Emotion, c.Themes.Religious} {
		for i := range list {
			list[i].Label = strings.TrimSpace(list[i].Label)
			if list[i].Path, err = resolve(list[i].Path); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate checks that required entries are present and sections are sane.
func (c *Catalog) Validate() error {
	if c.Occurrences == "" {
		return errors.New("catalog: occurrences path is required")
	}
	if c.Text == "" {
		return errors.New("catalog: text path is required")
	}
	for _, m := range c.Markers {
		if strings.TrimSpace(m) == "" {
			return errors.New("catalog: markers must not be empty")
		}
	}
	for name, list := range map[string][]Source{"emotion": c.Themes.Emotion, "religious": c.Themes.Religious} {
		seen := make(map[string]bool)
		for _, src := range list {
			if src.Label == "" || src.Path == "" {
				return fmt.Errorf("catalog: %s sources need a label and a path", name)
			}
			if seen[src.Label] {
				return fmt.Errorf("catalog: duplicate %s source %q", name, src.Label)
			}
			seen[src.Label] = true
		}
	}
	for _, s := range c.Sections {
		if s.Name == "" {
			return errors.New("catalog: sections need a name")
		}
		if s.Start < 1 || s.End < s.Start {
			return fmt.Errorf("catalog: section %q has invalid range %d-%d", s.Name, s.Start, s.End)
		}
	}
	return nil
}

// Sources returns the word-list sources keyed by theme.
func (c *Catalog) Sources() map[themes.Theme][]themes.Source {
	convert := func(list []Source) []themes.Source {
		out := make([]themes.Source, len(list))
		for i, s := range list {
			out[i] = themes.Source{Label: s.Label, Path: s.Path}
		}
		return out
	}
	return map[themes.Theme][]themes.Source{
		themes.Emotion:   convert(c.Themes.Emotion),
		themes.Religious: convert(c.Themes.Religious),
	}
}

// ChartSections returns the sections in chart form.
func (c *Catalog) ChartSections() []chart.Section {
	out := make([]chart.Section, len(c.Sections))
	for i, s := range c.Sections {
		out[i] = chart.Section{Name: s.Name, Start: s.Start, End: s.End}
	}
	return out
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
