package board

import (
	"math"

	"github.com/10thony/campaignion-engine/internal/grid"
)

// SamplePath returns the straight-line cell sequence between two
// positions, inclusive of both endpoints. Cells are sampled at the
// resolution of the longer axis, which visits every column or row the
// segment crosses exactly once.
func SamplePath(from, to grid.Position) []grid.Position {
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return []grid.Position{from}
	}

	path := make([]grid.Position, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := grid.Position{
			X: from.X + int(math.Round(t*float64(dx))),
			Y: from.Y + int(math.Round(t*float64(dy))),
		}
		if len(path) == 0 || path[len(path)-1] != p {
			path = append(path, p)
		}
	}
	return path
}

// LineOfSight reports whether a straight-line sample between the two
// cells crosses no obstacle. The endpoints themselves never block.
func LineOfSight(from, to grid.Position, snap Snapshot) bool {
	path := SamplePath(from, to)
	for _, cell := range path[1:max(len(path)-1, 1)] {
		if snap.Blocked(cell) {
			return false
		}
	}
	return true
}

// pathCost sums the terrain-weighted cost of walking the path in feet.
// Each step costs its base distance (5 ft straight, 7.5 ft diagonal on
// square layouts, 5 ft on hex) scaled by the multiplier of the cell
// being entered.
func pathCost(path []grid.Position, snap Snapshot, layout grid.Layout) float64 {
	cost := 0.0
	for i := 1; i < len(path); i++ {
		base := grid.Distance(path[i-1], path[i], layout)
		cost += base * snap.MoveMultiplier(path[i])
	}
	return cost
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
