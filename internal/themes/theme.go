// Package themes loads per-source thematic word lists.
package themes

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Theme identifies a thematic word category.
type Theme string

const (
	Emotion   Theme = "emotion"
	Religious Theme = "religious"
)

// ErrUnknownTheme is wrapped by UnknownThemeError.
var ErrUnknownTheme = errors.New("unknown theme")

// UnknownThemeError reports a theme identifier outside the fixed enumeration.
type UnknownThemeError struct {
	Value string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q (want one of %s)", e.Value, strings.Join(Names(), ", "))
}

func (e *UnknownThemeError) Unwrap() error {
	return ErrUnknownTheme
}

// All returns every theme in display order.
func All() []Theme {
	return []Theme{Emotion, Religious}
}

// Names returns the identifiers of All.
func Names() []string {
	names := make([]string, 0, len(All()))
	for _, t := range All() {
		names = append(names, string(t))
	}
	return names
}

// ParseTheme matches s case-insensitively against the enumeration.
func ParseTheme(s string) (Theme, error) {
	candidate := Theme(strings.ToLower(strings.TrimSpace(s)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", &UnknownThemeError{Value: s}
}

// Valid reports whether t belongs to the enumeration.
func (t Theme) Valid() bool {
	for _, known := range All() {
		if t == known {
			return true
		}
	}
	return false
}

// Title returns the display name, e.g. "Emotion".
func (t Theme) Title() string {
	return cases.Title(language.English).String(string(t))
}
