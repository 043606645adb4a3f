// Package board validates movement and attack intents against an
// immutable map snapshot: bounds, obstacles, occupancy, terrain cost,
// and line of sight. Validators return structured results and never
// panic on domain-legal input; validation is advisory until the commit
// path re-runs it against the latest snapshot (see Result).
package board

import "github.com/10thony/campaignion-engine/internal/grid"

// TerrainClass scales movement cost through a cell.
type TerrainClass string

const (
	// TerrainNormal costs base movement.
	TerrainNormal TerrainClass = "normal"
	// TerrainDifficult doubles movement cost.
	TerrainDifficult TerrainClass = "difficult"
)

// Multiplier is the movement-cost factor for the class. Unknown
// classes cost base movement.
func (t TerrainClass) Multiplier() float64 {
	if t == TerrainDifficult {
		return 2
	}
	return 1
}

// TerrainEntry annotates one cell with a terrain class and free-form
// properties owned by the content layer.
type TerrainEntry struct {
	Position   grid.Position     `json:"position" yaml:"position"`
	Class      TerrainClass      `json:"terrain_type" yaml:"terrain_type"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Snapshot is an immutable-for-the-call view of the battle map. It is
// owned and assembled by the caller (the synchronized store) per
// validation call; the engine only reads it.
type Snapshot struct {
	Bounds    grid.Bounds
	Obstacles map[grid.Position]struct{}
	Terrain   map[grid.Position]TerrainEntry
	// Occupants maps occupied cells to the occupying entity ID.
	Occupants map[grid.Position]string
}

// NewSnapshot creates an empty snapshot of the given dimensions with
// all maps initialized.
func NewSnapshot(width, height int) Snapshot {
	return Snapshot{
		Bounds:    grid.Bounds{Width: width, Height: height},
		Obstacles: make(map[grid.Position]struct{}),
		Terrain:   make(map[grid.Position]TerrainEntry),
		Occupants: make(map[grid.Position]string),
	}
}

// Blocked reports whether a static obstacle fills the cell.
func (s Snapshot) Blocked(p grid.Position) bool {
	_, ok := s.Obstacles[p]
	return ok
}

// OccupiedBy returns the entity occupying the cell, if any.
func (s Snapshot) OccupiedBy(p grid.Position) (string, bool) {
	id, ok := s.Occupants[p]
	return id, ok
}

// MoveMultiplier returns the terrain cost factor for entering the cell.
func (s Snapshot) MoveMultiplier(p grid.Position) float64 {
	if entry, ok := s.Terrain[p]; ok {
		return entry.Class.Multiplier()
	}
	return 1
}
