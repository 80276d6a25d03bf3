package chart

import (
	"math"
	"sort"
)

// PositionStats summarises where a lane's ticks fall in the text.
type PositionStats struct {
	// Count is the number of ticks.
	Count int `json:"count"`
	// First is the smallest position.
	First float64 `json:"first"`
	// Last is the largest position.
	Last float64 `json:"last"`
	// Mean is the mean position, rounded to four decimal places.
	Mean float64 `json:"mean"`
	// P95 is the 95th percentile position.
	P95 float64 `json:"p95"`
}

// ComputePositionStats returns zero stats for an empty input.
func ComputePositionStats(positions []float64) PositionStats {
	if len(positions) == 0 {
		return PositionStats{}
	}

	// Sort for percentile calculation
	sorted := make([]float64, len(positions))
	copy(sorted, positions)
	sort.Float64s(sorted)

	sum := 0.0
	for _, p := range positions {
		sum += p
	}
	mean := sum / float64(len(positions))

	p95Index := int(math.Ceil(float64(len(sorted)) * 0.95))
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}

	return PositionStats{
		Count: len(sorted),
		First: sorted[0],
		Last:  sorted[len(sorted)-1],
		Mean:  math.Round(mean*10000) / 10000,
		P95:   sorted[p95Index],
	}
}
