// Package chart shapes computed positions into lanes and reference lines the
// dashboard front ends draw directly.
package chart

import (
	"fmt"

	"textlens/internal/corpus"
)

// Palette holds the lane colours, top lane first.
var Palette = []string{"#1EE196", "#1ECBE1", "#1E6AE1"}

// TargetColor is the colour of the target-word lane.
const TargetColor = "green"

// TargetLabel names the target-word lane.
const TargetLabel = "Target Words"

// Lane is one horizontal strip of tick marks, one tick per matched token.
type Lane struct {
	Label     string        `json:"label"`
	Color     string        `json:"color"`
	Y         int           `json:"y"`
	Positions []float64     `json:"positions"`
	Stats     PositionStats `json:"stats"`
}

// Boundary is a vertical reference line at a section end.
type Boundary struct {
	X      float64 `json:"x"`
	Label  string  `json:"label"`
	Marker string  `json:"marker"`
}

// Lanes assigns one lane per position list. The first list is drawn on top,
// so it gets the highest Y. Colours cycle through Palette.
func Lanes(lists []corpus.PositionList) []Lane {
	lanes := make([]Lane, 0, len(lists))
	for i, list := range lists {
		positions := list.Positions
		if positions == nil {
			positions = []float64{}
		}
		lanes = append(lanes, Lane{
			Label:     list.Label,
			Color:     Palette[i%len(Palette)],
			Y:         len(lists) - i,
			Positions: positions,
			Stats:     ComputePositionStats(positions),
		})
	}
	return lanes
}

// TargetLane builds the single lane for the target-word list.
func TargetLane(list corpus.PositionList) Lane {
	positions := list.Positions
	if positions == nil {
		positions = []float64{}
	}
	return Lane{
		Label:     TargetLabel,
		Color:     TargetColor,
		Y:         1,
		Positions: positions,
		Stats:     ComputePositionStats(positions),
	}
}

// Boundaries labels located markers "<prefix> N end", numbering them by their
// order among the markers that were found.
func Boundaries(markers []corpus.MarkerPosition, prefix string) []Boundary {
	out := make([]Boundary, 0, len(markers))
	for i, m := range markers {
		out = append(out, Boundary{
			X:      m.Position,
			Label:  fmt.Sprintf("%s %d end", prefix, i+1),
			Marker: m.Marker,
		})
	}
	return out
}
